package twofa_test

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ledgerview/twofactor/pkg/twofa"
)

// MockStorage is a mock implementation of twofa.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GetConfig(ctx context.Context, identityID uuid.UUID) (*twofa.Config, error) {
	args := m.Called(ctx, identityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*twofa.Config), args.Error(1)
}

func (m *MockStorage) UpsertConfig(ctx context.Context, identityID uuid.UUID, cfg *twofa.Config) error {
	args := m.Called(ctx, identityID, cfg)
	return args.Error(0)
}

// MockNotifier is a mock implementation of twofa.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, identityID uuid.UUID, event twofa.Event) error {
	args := m.Called(ctx, identityID, event)
	return args.Error(0)
}

// fakeStorage is a map-backed Storage for end-to-end flow tests where the
// configuration evolves across calls.
type fakeStorage struct {
	mu      sync.Mutex
	configs map[uuid.UUID]twofa.Config
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{configs: make(map[uuid.UUID]twofa.Config)}
}

func (f *fakeStorage) GetConfig(_ context.Context, identityID uuid.UUID) (*twofa.Config, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cfg, ok := f.configs[identityID]
	if !ok {
		return nil, twofa.ErrConfigNotFound
	}
	copied := cfg
	copied.RecoveryCodes = append([]string(nil), cfg.RecoveryCodes...)
	return &copied, nil
}

func (f *fakeStorage) UpsertConfig(_ context.Context, identityID uuid.UUID, cfg *twofa.Config) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *cfg
	stored.RecoveryCodes = append([]string(nil), cfg.RecoveryCodes...)
	f.configs[identityID] = stored
	return nil
}

func (f *fakeStorage) snapshot(identityID uuid.UUID) (twofa.Config, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cfg, ok := f.configs[identityID]
	return cfg, ok
}
