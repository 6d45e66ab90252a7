package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/internal/domain"
)

const sessionKeyPrefix = "session:"

// SessionStore keeps one record per issued access token, keyed by the
// token's jti. Records expire with the token's TTL; deleting one revokes
// the token.
type SessionStore struct {
	redis *redis.Client
}

func NewSessionStore(r *redis.Client) domain.SessionStore {
	return &SessionStore{redis: r}
}

func (s *SessionStore) Save(ctx context.Context, session domain.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("session marshal failed: %w", err)
	}

	if err := s.redis.Set(ctx, sessionKeyPrefix+session.ID, data, ttl).Err(); err != nil {
		return fmt.Errorf("session set failed: %w", err)
	}

	return nil
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	data, err := s.redis.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("session get failed: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("session unmarshal failed: %w", err)
	}

	return &session, nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.redis.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("session del failed: %w", err)
	}

	return nil
}
