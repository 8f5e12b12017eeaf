package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// DraftStore persists wizard drafts between requests.
type DraftStore interface {
	Load(key string) (Draft, bool, error)
	Save(key string, draft Draft) error
	Delete(key string) error
}

// MemoryStore keeps drafts in process. Good enough for tests and single
// instance deployments without redis.
type MemoryStore struct {
	mu     sync.RWMutex
	drafts map[string]Draft
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{drafts: make(map[string]Draft)}
}

func (s *MemoryStore) Load(key string) (Draft, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[key]
	return draft, ok, nil
}

func (s *MemoryStore) Save(key string, draft Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[key] = draft
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, key)
	return nil
}

// RedisStore shares drafts across instances. Drafts expire after a week of
// inactivity.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, ttl: 7 * 24 * time.Hour}
}

func (s *RedisStore) Load(key string) (Draft, bool, error) {
	raw, err := s.client.Get(context.Background(), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return Draft{}, false, nil
	}
	if err != nil {
		return Draft{}, false, err
	}
	var draft Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return Draft{}, false, err
	}
	return draft, true, nil
}

func (s *RedisStore) Save(key string, draft Draft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.client.Set(context.Background(), key, raw, s.ttl).Err()
}

func (s *RedisStore) Delete(key string) error {
	return s.client.Del(context.Background(), key).Err()
}
