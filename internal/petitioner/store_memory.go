package petitioner

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"petitionpay/pkg/platform/sentinel"
)

// MemoryStore keeps petitioners in memory with the same conditional-update
// semantics as the PostgreSQL store. Used by unit tests and local runs.
type MemoryStore struct {
	mu   sync.Mutex
	byID map[string]Petitioner
}

// NewMemory constructs an empty in-memory petitioner store.
func NewMemory() *MemoryStore {
	return &MemoryStore{byID: make(map[string]Petitioner)}
}

func (s *MemoryStore) Search(_ context.Context, q string) ([]Petitioner, error) {
	number, numeric := 0, false
	if n, err := strconv.Atoi(q); err == nil {
		number, numeric = n, true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]Petitioner, 0)
	for _, p := range s.byID {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(q)) ||
			(numeric && p.PetitionerNumber == number) {
			results = append(results, p)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })
	return results, nil
}

// ConfirmPayment checks the precondition and applies the write under one lock
// acquisition, mirroring the atomic conditional UPDATE of the postgres store.
func (s *MemoryStore) ConfirmPayment(_ context.Context, id, paymentID, confirmedBy string, confirmedAt time.Time) (*Petitioner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok || p.PaymentConfirmed {
		return nil, fmt.Errorf("payment already confirmed or petitioner not found: %w", sentinel.ErrConflict)
	}

	p.PaymentConfirmed = true
	p.PaymentID = &paymentID
	p.ConfirmedBy = &confirmedBy
	p.ConfirmedAt = &confirmedAt
	s.byID[id] = p

	return &p, nil
}

func (s *MemoryStore) Insert(_ context.Context, p Petitioner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[p.ID]; exists {
		return fmt.Errorf("petitioner already exists: %w", sentinel.ErrConflict)
	}
	s.byID[p.ID] = p
	return nil
}

// Get returns a snapshot of one record. Test helper, not part of Store.
func (s *MemoryStore) Get(id string) (Petitioner, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byID[id]
	return p, ok
}
