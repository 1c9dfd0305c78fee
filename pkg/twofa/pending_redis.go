package twofa

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisPendingKeyPrefix = "twofa:pending:"

// RedisPendingStore holds pending enrollments in Redis with native key TTL,
// so a session can confirm an enrollment on any instance behind a load
// balancer. Values are small JSON payloads; expiry is handled entirely by
// Redis.
type RedisPendingStore struct {
	client *redis.Client
}

// NewRedisPendingStore wraps an existing Redis client (see pkg/redis for
// connection helpers).
func NewRedisPendingStore(client *redis.Client) *RedisPendingStore {
	return &RedisPendingStore{client: client}
}

func redisPendingKey(identityID uuid.UUID) string {
	return redisPendingKeyPrefix + identityID.String()
}

func (r *RedisPendingStore) Get(ctx context.Context, identityID uuid.UUID) (*PendingEnrollment, error) {
	payload, err := r.client.Get(ctx, redisPendingKey(identityID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPendingNotFound
		}
		return nil, err
	}

	var enrollment PendingEnrollment
	if err := json.Unmarshal(payload, &enrollment); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *RedisPendingStore) Set(ctx context.Context, enrollment *PendingEnrollment, ttl time.Duration) error {
	payload, err := json.Marshal(enrollment)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, redisPendingKey(enrollment.IdentityID), payload, ttl).Err()
}

func (r *RedisPendingStore) Delete(ctx context.Context, identityID uuid.UUID) error {
	return r.client.Del(ctx, redisPendingKey(identityID)).Err()
}
