package ports

import "context"

// Whitelist is the process-wide set of tokens opted into the elevated-access
// tier. Entries are never removed; a fresh process starts empty (the redis
// backend relaxes this for multi-replica deployments that opt in).
// Implementations must be safe for concurrent Add/Contains.
type Whitelist interface {
	// Add inserts the raw token. Idempotent.
	Add(ctx context.Context, token string) error
	// Contains reports membership of the raw token.
	Contains(ctx context.Context, token string) (bool, error)
}
