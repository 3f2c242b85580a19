package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"lotes_backoffice/internal/domain/entities"
	"lotes_backoffice/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const redisSessionPrefix = "backoffice:session:"

// SessionRedisStore shares auth sessions between replicas. Keys expire with
// the session.
type SessionRedisStore struct {
	client *redis.Client
	now    func() time.Time
}

var _ interfaces.ITokenStore = (*SessionRedisStore)(nil)

func NewSessionRedisStore(client *redis.Client) *SessionRedisStore {
	return &SessionRedisStore{client: client, now: time.Now}
}

func (s *SessionRedisStore) Save(ctx context.Context, session entities.AuthSession) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisSessionPrefix+session.ID, b, ttl).Err()
}

func (s *SessionRedisStore) Get(ctx context.Context, id string) (entities.AuthSession, bool, error) {
	raw, err := s.client.Get(ctx, redisSessionPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.AuthSession{}, false, nil
	}
	if err != nil {
		return entities.AuthSession{}, false, err
	}
	var session entities.AuthSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return entities.AuthSession{}, false, err
	}
	return session, true, nil
}

func (s *SessionRedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, redisSessionPrefix+id).Err()
}
