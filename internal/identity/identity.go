// Package identity provides the anonymous per-session identifier used for
// coordination bookkeeping. There is no authentication; the id only needs
// enough entropy to avoid collision among concurrently running sessions.
package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harini/sciquiz/internal/store"
)

const cacheKey = "userSessionId"

// Provider lazily generates and caches a session id in a session-scoped
// store. The cache lives and dies with the process, so the id is stable
// for one session's lifetime and abandoned on exit.
type Provider struct {
	cache store.KV
}

// NewProvider creates a Provider backed by the given session-scoped store.
func NewProvider(cache store.KV) *Provider {
	return &Provider{cache: cache}
}

// SessionID returns the cached session id, generating and storing it on
// first call.
func (p *Provider) SessionID(ctx context.Context) (string, error) {
	var id string
	ok, err := p.cache.Get(ctx, cacheKey, &id)
	if err != nil {
		return "", fmt.Errorf("read session id: %w", err)
	}
	if ok && id != "" {
		return id, nil
	}

	id = newSessionID()
	if err := p.cache.Put(ctx, cacheKey, id); err != nil {
		return "", fmt.Errorf("cache session id: %w", err)
	}
	return id, nil
}

// newSessionID builds an id from the current time and a random suffix.
func newSessionID() string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("user_%d_%s", time.Now().UnixMilli(), suffix)
}
