package twofa

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryPendingEntry struct {
	enrollment PendingEnrollment
	expiresAt  time.Time // zero means no expiry
}

// MemoryPendingStore keeps pending enrollments in process memory. It is the
// default store and suits single-instance deployments and tests; expired
// entries are dropped lazily on access, so no background janitor runs.
type MemoryPendingStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID]memoryPendingEntry
	now     func() time.Time
}

// NewMemoryPendingStore creates an empty in-memory pending store.
func NewMemoryPendingStore() *MemoryPendingStore {
	return &MemoryPendingStore{
		entries: make(map[uuid.UUID]memoryPendingEntry),
		now:     time.Now,
	}
}

func (m *MemoryPendingStore) Get(_ context.Context, identityID uuid.UUID) (*PendingEnrollment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[identityID]
	if !ok {
		return nil, ErrPendingNotFound
	}
	if !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt) {
		delete(m.entries, identityID)
		return nil, ErrPendingNotFound
	}

	enrollment := entry.enrollment
	return &enrollment, nil
}

func (m *MemoryPendingStore) Set(_ context.Context, enrollment *PendingEnrollment, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := memoryPendingEntry{enrollment: *enrollment}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.entries[enrollment.IdentityID] = entry
	return nil
}

func (m *MemoryPendingStore) Delete(_ context.Context, identityID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, identityID)
	return nil
}
