package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"classbook/models"

	"github.com/go-redis/redis/v8"
)

const pendingKeyPrefix = "pending-booking:"

// PendingStore parks overlapping candidates until the user answers the
// confirmation. Take removes the entry so a confirmation is used once.
type PendingStore interface {
	Save(ctx context.Context, p models.PendingBooking, ttl time.Duration) error
	Take(ctx context.Context, id string) (*models.PendingBooking, error)
	Delete(ctx context.Context, id string) error
}

// RedisPendingStore keeps pending bookings in Redis with a TTL.
type RedisPendingStore struct {
	client *redis.Client
}

func NewRedisPendingStore(client *redis.Client) *RedisPendingStore {
	return &RedisPendingStore{client: client}
}

func (s *RedisPendingStore) Save(ctx context.Context, p models.PendingBooking, ttl time.Duration) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal pending booking: %w", err)
	}
	if err := s.client.Set(ctx, pendingKeyPrefix+p.ID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache pending booking: %w", err)
	}
	return nil
}

func (s *RedisPendingStore) Take(ctx context.Context, id string) (*models.PendingBooking, error) {
	data, err := s.client.GetDel(ctx, pendingKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrPendingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load pending booking: %w", err)
	}
	var p models.PendingBooking
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to parse pending booking: %w", err)
	}
	return &p, nil
}

func (s *RedisPendingStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, pendingKeyPrefix+id).Result()
	if err != nil {
		return fmt.Errorf("failed to cancel pending booking: %w", err)
	}
	if n == 0 {
		return ErrPendingNotFound
	}
	return nil
}

// MemoryPendingStore is the in-process PendingStore used when Redis is
// disabled and in tests.
type MemoryPendingStore struct {
	mu      sync.Mutex
	entries map[string]memoryPending
	now     func() time.Time
}

type memoryPending struct {
	pending   models.PendingBooking
	expiresAt time.Time
}

func NewMemoryPendingStore() *MemoryPendingStore {
	return &MemoryPendingStore{
		entries: make(map[string]memoryPending),
		now:     time.Now,
	}
}

func (s *MemoryPendingStore) Save(ctx context.Context, p models.PendingBooking, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	s.entries[p.ID] = memoryPending{pending: p, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryPendingStore) Take(ctx context.Context, id string) (*models.PendingBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	e, ok := s.entries[id]
	if !ok {
		return nil, ErrPendingNotFound
	}
	delete(s.entries, id)
	p := e.pending
	return &p, nil
}

func (s *MemoryPendingStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	if _, ok := s.entries[id]; !ok {
		return ErrPendingNotFound
	}
	delete(s.entries, id)
	return nil
}

func (s *MemoryPendingStore) purgeLocked() {
	now := s.now()
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}
