package petitioner

import (
	"context"
	"time"
)

// Store is interface-driven so the confirmation service stays testable and
// in-memory and PostgreSQL persistence can be swapped without rewiring
// business code.
type Store interface {
	// Search returns petitioners whose name contains q (case-insensitive) or,
	// when q is numeric, whose petitioner number equals it. Ordered by name
	// ascending. An empty result is a valid outcome, not an error.
	Search(ctx context.Context, q string) ([]Petitioner, error)

	// ConfirmPayment applies the one-shot payment confirmation as a single
	// atomic conditional update: the write only happens if the row exists and
	// payment_confirmed is still false. Returns the fully updated record on
	// success, or sentinel.ErrConflict (wrapped) when the condition matched
	// zero rows. "Does not exist" and "already confirmed" are deliberately
	// indistinguishable.
	ConfirmPayment(ctx context.Context, id, paymentID, confirmedBy string, confirmedAt time.Time) (*Petitioner, error)

	// Insert adds a roster entry. Used by provisioning and tests.
	Insert(ctx context.Context, p Petitioner) error
}
