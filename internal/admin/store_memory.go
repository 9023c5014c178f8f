package admin

import (
	"context"
	"fmt"
	"sync"

	"petitionpay/pkg/platform/sentinel"
)

// MemoryStore keeps the admin roster in memory. Used by unit tests and local runs.
type MemoryStore struct {
	mu     sync.RWMutex
	byCode map[string]Admin
}

// NewMemory constructs an empty in-memory admin store.
func NewMemory() *MemoryStore {
	return &MemoryStore{byCode: make(map[string]Admin)}
}

// Seed adds roster entries; later entries with the same code overwrite earlier ones.
func (s *MemoryStore) Seed(admins ...Admin) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range admins {
		s.byCode[a.Code] = a
	}
}

func (s *MemoryStore) FindByCode(_ context.Context, code string) (*Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byCode[code]
	if !ok {
		return nil, fmt.Errorf("admin not found: %w", sentinel.ErrNotFound)
	}
	return &a, nil
}
