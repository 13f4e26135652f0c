package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cienciascontic/textlabx/internal/domain/repository"
)

const sessionKeyPrefix = "textlabx:session:"

type sessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository creates a redis-backed session repository.
// A zero ttl keeps sessions until they are deleted.
func NewSessionRepository(client *redis.Client, ttl time.Duration) repository.SessionRepository {
	return &sessionRepository{client: client, ttl: ttl}
}

// SessionKey returns the redis key holding a session's model id
func SessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func (r *sessionRepository) Create(ctx context.Context, sessionID string) error {
	return r.client.Set(ctx, SessionKey(sessionID), "", r.ttl).Err()
}

func (r *sessionRepository) GetModel(ctx context.Context, sessionID string) (string, bool, error) {
	modelID, err := r.client.Get(ctx, SessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}

	// Reading refreshes the expiry so active sessions survive
	if r.ttl > 0 {
		if err := r.client.Expire(ctx, SessionKey(sessionID), r.ttl).Err(); err != nil {
			return "", false, err
		}
	}

	return modelID, true, nil
}

// SaveModel uses SET XX so an expired or closed session is never recreated
func (r *sessionRepository) SaveModel(ctx context.Context, sessionID, modelID string) (bool, error) {
	return r.client.SetXX(ctx, SessionKey(sessionID), modelID, r.ttl).Result()
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) (bool, error) {
	n, err := r.client.Del(ctx, SessionKey(sessionID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
