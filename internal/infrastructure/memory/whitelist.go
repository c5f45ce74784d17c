package memory

import (
	"context"
	"sync"

	"github.com/gatekeep/auth-service/internal/api/metrics"
)

// Whitelist is the default in-memory token whitelist: a mutex-guarded set
// scoped to the process lifetime. A fresh process always starts empty.
// Entries are never removed, so the set grows for the life of the process.
type Whitelist struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewWhitelist() *Whitelist {
	return &Whitelist{tokens: make(map[string]struct{})}
}

// Add inserts the token. Idempotent and safe under concurrent use.
func (w *Whitelist) Add(_ context.Context, token string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.tokens[token]; !ok {
		w.tokens[token] = struct{}{}
		metrics.WhitelistSize.Set(float64(len(w.tokens)))
	}
	return nil
}

// Contains reports whether the token is whitelisted.
func (w *Whitelist) Contains(_ context.Context, token string) (bool, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	_, ok := w.tokens[token]
	return ok, nil
}
