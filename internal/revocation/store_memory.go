package revocation

import (
	"context"
	"sync"
	"time"
)

// MemoryTRL keeps revoked token ids in process memory. Suitable for a single
// instance and for tests; entries expire lazily on read.
type MemoryTRL struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

func NewMemoryTRL() *MemoryTRL {
	return &MemoryTRL{
		expires: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (t *MemoryTRL) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if jti == "" {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.expires[jti] = t.now().Add(ttl)
	return nil
}

func (t *MemoryTRL) IsRevoked(_ context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	exp, ok := t.expires[jti]
	if !ok {
		return false, nil
	}
	if t.now().After(exp) {
		delete(t.expires, jti)
		return false, nil
	}
	return true, nil
}
