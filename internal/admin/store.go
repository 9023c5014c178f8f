package admin

import "context"

// Store is interface-driven to keep the login service testable and to allow
// swapping in-memory and PostgreSQL persistence without rewiring business code.
type Store interface {
	// FindByCode returns the roster entry matching the login code, or
	// sentinel.ErrNotFound (wrapped) when no entry matches.
	FindByCode(ctx context.Context, code string) (*Admin, error)
}
