package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-currency-dashboard/internal/logger"
)

// TokenKey is the well-known key the session token is stored under.
const TokenKey = "token"

func sessionTokenKey(sessionID string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, TokenKey)
}

// SessionRedisRepository stores session tokens in Redis.
// A zero TTL keeps tokens until they are deleted.
type SessionRedisRepository struct {
	client redis.Cmdable
	exp    time.Duration
}

func NewSessionRedisRepository(client redis.Cmdable, expiration time.Duration) *SessionRedisRepository {
	return &SessionRedisRepository{client: client, exp: expiration}
}

// GetToken returns the stored token, or "" when the session has none.
func (r *SessionRedisRepository) GetToken(ctx context.Context, sessionID string) (string, error) {
	val, err := r.client.Get(ctx, sessionTokenKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		logger.Log.Errorw("failed to read session token", "session_id", sessionID, "error", err)
		return "", err
	}
	return val, nil
}

func (r *SessionRedisRepository) SetToken(ctx context.Context, sessionID, token string) error {
	err := r.client.Set(ctx, sessionTokenKey(sessionID), token, r.exp).Err()
	if err != nil {
		logger.Log.Errorw("failed to write session token", "session_id", sessionID, "error", err)
	}
	return err
}

func (r *SessionRedisRepository) DeleteToken(ctx context.Context, sessionID string) error {
	err := r.client.Del(ctx, sessionTokenKey(sessionID)).Err()
	if err != nil {
		logger.Log.Errorw("failed to delete session token", "session_id", sessionID, "error", err)
	}
	return err
}

// SessionMemoryRepository keeps session tokens in process memory.
type SessionMemoryRepository struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{tokens: make(map[string]string)}
}

func (r *SessionMemoryRepository) GetToken(ctx context.Context, sessionID string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tokens[sessionTokenKey(sessionID)], nil
}

func (r *SessionMemoryRepository) SetToken(ctx context.Context, sessionID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[sessionTokenKey(sessionID)] = token
	return nil
}

func (r *SessionMemoryRepository) DeleteToken(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, sessionTokenKey(sessionID))
	return nil
}
