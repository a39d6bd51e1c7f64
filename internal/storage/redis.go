package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/breadcrumb/pkg/state"
)

const sessionKeyPrefix = "session:"

// RedisStore implements SessionStore using Redis. Sessions are written as
// whole JSON records with no TTL; re-entering the labyrinth is the only
// way a session is replaced.
type RedisStore struct {
	client *redis.Client
	logger *slog.Logger
}

// Ensure RedisStore implements SessionStore interface
var _ SessionStore = (*RedisStore)(nil)

// NewRedisStore creates a new Redis session store.
func NewRedisStore(addr string, logger *slog.Logger) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	return &RedisStore{
		client: rdb,
		logger: logger,
	}
}

func (r *RedisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStore) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

func (r *RedisStore) LoadSession(ctx context.Context, agentID string) (*state.Session, error) {
	key := sessionKeyPrefix + agentID

	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			r.logger.Debug("No session record", "agent_id", agentID)
			return nil, nil
		}
		r.logger.Error("Redis GET failed", "key", key, "error", err)
		return nil, fmt.Errorf("loading session for %s: %w", agentID, err)
	}

	sess, err := state.Decode([]byte(data))
	if err != nil {
		r.logger.Error("Corrupt session record", "key", key, "error", err)
		return nil, fmt.Errorf("corrupt session record for %s: %w", agentID, err)
	}

	r.logger.Debug("Session loaded", "agent_id", agentID, "room", sess.CurrentRoom, "steps", sess.StepCount)
	return sess, nil
}

func (r *RedisStore) SaveSession(ctx context.Context, agentID string, sess *state.Session) error {
	key := sessionKeyPrefix + agentID

	data, err := sess.Encode()
	if err != nil {
		return fmt.Errorf("saving session for %s: %w", agentID, err)
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		r.logger.Error("Redis SET failed", "key", key, "error", err)
		return fmt.Errorf("saving session for %s: %w", agentID, err)
	}

	r.logger.Debug("Session saved", "agent_id", agentID, "room", sess.CurrentRoom, "steps", sess.StepCount)
	return nil
}

func (r *RedisStore) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}

	r.logger.Info("Redis connection closed")
	return nil
}
