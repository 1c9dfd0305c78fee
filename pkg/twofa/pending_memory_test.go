package twofa_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerview/twofactor/pkg/twofa"
)

func TestMemoryPendingStore(t *testing.T) {
	t.Parallel()
	store := twofa.NewMemoryPendingStore()
	ctx := context.Background()
	identity := uuid.New()

	_, err := store.Get(ctx, identity)
	assert.ErrorIs(t, err, twofa.ErrPendingNotFound)

	pending := &twofa.PendingEnrollment{
		IdentityID: identity,
		Secret:     "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ",
		CreatedAt:  time.Now(),
	}
	require.NoError(t, store.Set(ctx, pending, 0))

	got, err := store.Get(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, pending.Secret, got.Secret)
	assert.Equal(t, identity, got.IdentityID)

	require.NoError(t, store.Delete(ctx, identity))
	_, err = store.Get(ctx, identity)
	assert.ErrorIs(t, err, twofa.ErrPendingNotFound)
}

func TestMemoryPendingStoreOverwrite(t *testing.T) {
	t.Parallel()
	store := twofa.NewMemoryPendingStore()
	ctx := context.Background()
	identity := uuid.New()

	require.NoError(t, store.Set(ctx, &twofa.PendingEnrollment{IdentityID: identity, Secret: "AAAA"}, 0))
	require.NoError(t, store.Set(ctx, &twofa.PendingEnrollment{IdentityID: identity, Secret: "BBBB"}, 0))

	got, err := store.Get(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, "BBBB", got.Secret, "last writer wins")
}

func TestMemoryPendingStoreTTL(t *testing.T) {
	t.Parallel()
	store := twofa.NewMemoryPendingStore()
	ctx := context.Background()
	identity := uuid.New()

	require.NoError(t, store.Set(ctx, &twofa.PendingEnrollment{IdentityID: identity, Secret: "AAAA"}, 20*time.Millisecond))

	_, err := store.Get(ctx, identity)
	require.NoError(t, err)

	time.Sleep(40 * time.Millisecond)

	// Expiry behaves exactly like cancellation.
	_, err = store.Get(ctx, identity)
	assert.ErrorIs(t, err, twofa.ErrPendingNotFound)
}

func TestMemoryPendingStoreDeleteMissing(t *testing.T) {
	t.Parallel()
	store := twofa.NewMemoryPendingStore()
	assert.NoError(t, store.Delete(context.Background(), uuid.New()))
}
