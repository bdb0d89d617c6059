package redis

import (
	"context"
	"time"

	redisclient "github.com/muhammadheryan/marketplace/cmd/redis"
)

// Repository tracks issued token sessions keyed by jti. A session's TTL
// matches the token expiry, so a revoked or expired token never resolves.
type Repository interface {
	SetSession(ctx context.Context, sessionID string, sellerID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// SetSession stores a session with sellerID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, sellerID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "session:" + sessionID
	return client.Set(ctx, key, sellerID, ttl).Err()
}

// GetSession retrieves sellerID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	key := "session:" + sessionID
	val, err := client.Get(ctx, key).Uint64()
	if err != nil {
		return 0, err
	}
	return val, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "session:" + sessionID
	return client.Del(ctx, key).Err()
}
