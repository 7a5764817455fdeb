package revoke

import (
	"context"
	"time"
)

// Store persists revoked token identifiers until their expiry. Identifiers
// are typically jti claim values; once a token's expiry has passed the
// entry is no longer needed because the token fails expiry checks anyway.
type Store interface {
	// Add marks a token identifier as revoked until expiresAt.
	// Adding an identifier whose expiry already passed is a no-op.
	Add(ctx context.Context, tokenID string, expiresAt time.Time) error

	// Contains reports whether a token identifier is currently revoked.
	Contains(ctx context.Context, tokenID string) (bool, error)

	// Close releases resources held by the store.
	Close() error
}
