package revocation

import (
	"context"
	"time"
)

// TokenRevocationList records token IDs that must be rejected before their
// natural expiry. Entries only need to live as long as the token itself, so
// every Revoke carries a TTL.
type TokenRevocationList interface {
	// Revoke marks the token id as revoked for the given TTL. Revoking an
	// empty jti is a no-op.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error

	// IsRevoked reports whether the token id is on the list. An expired or
	// missing entry reads as not revoked.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
