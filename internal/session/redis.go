package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"job_portal/internal/model"
)

// RedisStore keeps sessions in Redis, expiry delegated to key TTLs.
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(addr, password string, db int, logger *zap.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("successfully connected to Redis")

	return &RedisStore{client: client, logger: logger}, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// Save stores the identity under the session id with the given TTL
func (s *RedisStore) Save(ctx context.Context, sessionID string, identity model.Identity, ttl time.Duration) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to marshal identity: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(sessionID), data, ttl).Err(); err != nil {
		s.logger.Error("failed to save session",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// Get returns the identity bound to the session id, or (nil, nil) if
// the key is missing or already expired.
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*model.Identity, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("failed to get session",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("get session: %w", err)
	}

	var identity model.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal identity: %w", err)
	}

	return &identity, nil
}

// Delete removes the session; deleting a missing key is not an error
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		s.logger.Error("failed to delete session",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}
