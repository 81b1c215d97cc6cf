package allocate

import (
	"context"
	"fmt"
	"strings"

	"github.com/harini/sciquiz/internal/question"
	"github.com/harini/sciquiz/internal/store"
)

// KeyLister enumerates store keys by prefix. Both store implementations
// provide it; only maintenance paths need it.
type KeyLister interface {
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// WipeScope removes a scope's active-use registry and every session's
// completion ledger for it, across all sessions. Returns the number of
// completion records removed. This is a maintenance operation; normal
// allocation never touches other sessions' ledgers.
func WipeScope(ctx context.Context, kv store.KV, lister KeyLister, scope question.Scope) (int, error) {
	if err := kv.Delete(ctx, activeKey(scope)); err != nil {
		return 0, fmt.Errorf("wipe active registry: %w", err)
	}

	keys, err := lister.Keys(ctx, "completedSets_")
	if err != nil {
		return 0, err
	}

	suffix := "_" + scope.Grade + "_" + scope.Subject
	removed := 0
	for _, k := range keys {
		if !strings.HasSuffix(k, suffix) {
			continue
		}
		if err := kv.Delete(ctx, k); err != nil {
			return removed, fmt.Errorf("wipe %q: %w", k, err)
		}
		removed++
	}
	return removed, nil
}
