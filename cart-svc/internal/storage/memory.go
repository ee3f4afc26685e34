package storage

import (
	"context"
	"sync"
)

// MemoryVisitStore keeps last-visited restaurants in process memory; state is lost on
// restart.
type MemoryVisitStore struct {
	mu     sync.RWMutex
	visits map[int64]string
}

func NewMemoryVisitStore() *MemoryVisitStore {
	return &MemoryVisitStore{visits: make(map[int64]string)}
}

func (s *MemoryVisitStore) LastRestaurant(_ context.Context, userID int64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visits[userID], nil
}

func (s *MemoryVisitStore) SetLastRestaurant(_ context.Context, userID int64, restaurantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visits[userID] = restaurantID
	return nil
}
