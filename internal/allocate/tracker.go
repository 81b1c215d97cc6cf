// Package allocate decides which question set a session may use within a
// (grade, subject) scope. Sessions coordinate only through the shared KV
// store using read-prune-write updates: the mechanism is best-effort and
// eventually consistent, bounded by the claim TTL. A lost race means two
// sessions briefly share a set, which is tolerated, never corruption.
package allocate

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/harini/sciquiz/internal/question"
	"github.com/harini/sciquiz/internal/store"
)

// DefaultTotalSets is the number of question sets per scope.
const DefaultTotalSets = 3

// ClaimTTL bounds how long a crashed session's claim can shadow a set.
const ClaimTTL = 30 * time.Minute

// ErrNoSets means the allocator could not produce a candidate even after
// its fallbacks. The liveness fallback makes this unreachable in practice;
// callers treat it as "try again later".
var ErrNoSets = errors.New("no question sets available")

// Claim is one session's reservation of a set within a scope.
type Claim struct {
	SetNumber int       `json:"setNumber"`
	Timestamp time.Time `json:"timestamp"`
}

// Tracker implements the set allocator, completion ledger, and active-use
// registry for a single session.
type Tracker struct {
	kv      store.KV
	session string
	now     func() time.Time
	pick    func(n int) int
}

// NewTracker creates a Tracker for the given session id on the shared store.
func NewTracker(kv store.KV, sessionID string) *Tracker {
	return &Tracker{
		kv:      kv,
		session: sessionID,
		now:     time.Now,
		pick:    rand.IntN,
	}
}

// Completed returns the set numbers this session has finished in the scope.
func (t *Tracker) Completed(ctx context.Context, scope question.Scope) (map[int]bool, error) {
	var list []int
	if _, err := t.kv.Get(ctx, completedKey(t.session, scope), &list); err != nil {
		return nil, fmt.Errorf("read completed sets: %w", err)
	}
	completed := make(map[int]bool, len(list))
	for _, n := range list {
		completed[n] = true
	}
	return completed, nil
}

// MarkCompleted records a finished set and releases the session's claim.
// Completion always implies release.
func (t *Tracker) MarkCompleted(ctx context.Context, scope question.Scope, set int) error {
	completed, err := t.Completed(ctx, scope)
	if err != nil {
		return err
	}
	completed[set] = true

	list := make([]int, 0, len(completed))
	for n := range completed {
		list = append(list, n)
	}
	sort.Ints(list)

	if err := t.kv.Put(ctx, completedKey(t.session, scope), list); err != nil {
		return fmt.Errorf("write completed sets: %w", err)
	}
	return t.Release(ctx, scope)
}

// ResetCompleted wipes the session's completion record for the scope.
func (t *Tracker) ResetCompleted(ctx context.Context, scope question.Scope) error {
	if err := t.kv.Delete(ctx, completedKey(t.session, scope)); err != nil {
		return fmt.Errorf("reset completed sets: %w", err)
	}
	return nil
}

// Active returns the scope's live claims by session. Entries older than
// ClaimTTL are dropped and the pruned mapping is written back, so expiry
// self-heals across whichever session reads next.
func (t *Tracker) Active(ctx context.Context, scope question.Scope) (map[string]Claim, error) {
	claims := make(map[string]Claim)
	if _, err := t.kv.Get(ctx, activeKey(scope), &claims); err != nil {
		return nil, fmt.Errorf("read active sets: %w", err)
	}

	now := t.now()
	pruned := make(map[string]Claim, len(claims))
	for sid, c := range claims {
		if now.Sub(c.Timestamp) < ClaimTTL {
			pruned[sid] = c
		}
	}

	if err := t.kv.Put(ctx, activeKey(scope), pruned); err != nil {
		return nil, fmt.Errorf("write pruned active sets: %w", err)
	}
	return pruned, nil
}

// MarkActive claims a set for this session. A session holds at most one
// claim per scope, so any prior claim is overwritten.
func (t *Tracker) MarkActive(ctx context.Context, scope question.Scope, set int) error {
	claims, err := t.Active(ctx, scope)
	if err != nil {
		return err
	}
	claims[t.session] = Claim{SetNumber: set, Timestamp: t.now()}
	if err := t.kv.Put(ctx, activeKey(scope), claims); err != nil {
		return fmt.Errorf("write active sets: %w", err)
	}
	return nil
}

// Release drops this session's claim for the scope. No-op if absent.
func (t *Tracker) Release(ctx context.Context, scope question.Scope) error {
	claims, err := t.Active(ctx, scope)
	if err != nil {
		return err
	}
	if _, held := claims[t.session]; !held {
		return nil
	}
	delete(claims, t.session)
	if err := t.kv.Put(ctx, activeKey(scope), claims); err != nil {
		return fmt.Errorf("write active sets: %w", err)
	}
	return nil
}

// AvailableSets returns the non-empty ordered candidate sets for this
// session: sets it has not completed and no other live session holds.
// When that intersection is empty it degrades in two stages. If the
// session has completed every set, the completion record is reset so it
// can cycle again, and only other sessions' claims are excluded. If it is
// blocked purely by contention, other sessions' claims alone are excluded.
// The final fallback of set 1 guarantees a caller can always start.
func (t *Tracker) AvailableSets(ctx context.Context, scope question.Scope, totalSets int) ([]int, error) {
	completed, err := t.Completed(ctx, scope)
	if err != nil {
		return nil, err
	}
	usedByOthers, err := t.usedByOthers(ctx, scope)
	if err != nil {
		return nil, err
	}

	var available []int
	for i := 1; i <= totalSets; i++ {
		if !completed[i] && !usedByOthers[i] {
			available = append(available, i)
		}
	}
	if len(available) > 0 {
		return available, nil
	}

	if len(completed) >= totalSets {
		// Full cycle: wipe the ledger and go around again.
		if err := t.ResetCompleted(ctx, scope); err != nil {
			return nil, err
		}
		for i := 1; i <= totalSets; i++ {
			if !usedByOthers[i] {
				available = append(available, i)
			}
		}
		if len(available) == 0 {
			available = []int{1}
		}
		return available, nil
	}

	// Blocked by contention only: ignore own completion state.
	for i := 1; i <= totalSets; i++ {
		if !usedByOthers[i] {
			available = append(available, i)
		}
	}
	if len(available) == 0 {
		return nil, ErrNoSets
	}
	return available, nil
}

// ClaimSet picks one candidate uniformly at random, records the claim in
// the active-use registry, and returns the chosen set number.
func (t *Tracker) ClaimSet(ctx context.Context, scope question.Scope, totalSets int) (int, error) {
	available, err := t.AvailableSets(ctx, scope, totalSets)
	if err != nil {
		return 0, err
	}
	chosen := available[t.pick(len(available))]
	if err := t.MarkActive(ctx, scope, chosen); err != nil {
		return 0, err
	}
	return chosen, nil
}

// Status is a read-only view of the allocator inputs for a scope.
type Status struct {
	Completed    []int
	UsedByOthers []int
	Available    []int
}

// ScopeStatus reports how a scope's sets are partitioned from this
// session's point of view. It does not claim anything, but reading the
// registry still prunes expired claims.
func (t *Tracker) ScopeStatus(ctx context.Context, scope question.Scope, totalSets int) (Status, error) {
	completed, err := t.Completed(ctx, scope)
	if err != nil {
		return Status{}, err
	}
	usedByOthers, err := t.usedByOthers(ctx, scope)
	if err != nil {
		return Status{}, err
	}

	var st Status
	for i := 1; i <= totalSets; i++ {
		switch {
		case completed[i]:
			st.Completed = append(st.Completed, i)
		case usedByOthers[i]:
			st.UsedByOthers = append(st.UsedByOthers, i)
		default:
			st.Available = append(st.Available, i)
		}
	}
	return st, nil
}

// usedByOthers derives the exclusion set from other sessions' live claims.
// Re-derived on every call, never cached.
func (t *Tracker) usedByOthers(ctx context.Context, scope question.Scope) (map[int]bool, error) {
	claims, err := t.Active(ctx, scope)
	if err != nil {
		return nil, err
	}
	used := make(map[int]bool, len(claims))
	for sid, c := range claims {
		if sid != t.session {
			used[c.SetNumber] = true
		}
	}
	return used, nil
}
