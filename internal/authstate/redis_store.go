package authstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound covers expired, already-consumed, and never-issued
// states alike; callers cannot distinguish them and should not try.
var ErrNotFound = errors.New("authstate: unknown or expired state")

// RedisStore keeps pending handshakes in Redis under a TTL so
// abandoned logins clean themselves up.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "oauth_state:",
	}
}

func (r *RedisStore) key(state string) string {
	return r.prefix + state
}

func (r *RedisStore) Create(ctx context.Context, h Handshake) error {
	if h.State == "" || h.CodeVerifier == "" {
		return errors.New("authstate: missing state or verifier")
	}

	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("authstate: marshal: %w", err)
	}

	return r.client.Set(ctx, r.key(h.State), data, TTL).Err()
}

// Consume atomically fetches and deletes the handshake, which makes
// every state value single-use.
func (r *RedisStore) Consume(ctx context.Context, state string) (*Handshake, error) {
	val, err := r.client.GetDel(ctx, r.key(state)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("authstate: fetch state: %w", err)
	}

	var h Handshake
	if err := json.Unmarshal([]byte(val), &h); err != nil {
		return nil, fmt.Errorf("authstate: unmarshal: %w", err)
	}
	return &h, nil
}
