package allocate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harini/sciquiz/internal/question"
	"github.com/harini/sciquiz/internal/store"
)

var testScope = question.Scope{Grade: "Grade 9", Subject: "physics"}

// newTestTracker pins the tracker's clock so TTL behavior is deterministic.
func newTestTracker(kv store.KV, session string, now time.Time) *Tracker {
	tr := NewTracker(kv, session)
	tr.now = func() time.Time { return now }
	return tr
}

func TestAvailableSets_FreshScope(t *testing.T) {
	kv := store.NewMemStore()
	tr := newTestTracker(kv, "user_a", time.Now())

	got, err := tr.AvailableSets(context.Background(), testScope, DefaultTotalSets)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestAvailableSets_ExcludesCompletedAndClaimed(t *testing.T) {
	// Session A completed {1}; session B holds a live claim on 2.
	ctx := context.Background()
	kv := store.NewMemStore()
	now := time.Now()

	a := newTestTracker(kv, "user_a", now)
	b := newTestTracker(kv, "user_b", now)

	require.NoError(t, a.MarkCompleted(ctx, testScope, 1))
	require.NoError(t, b.MarkActive(ctx, testScope, 2))

	got, err := a.AvailableSets(ctx, testScope, DefaultTotalSets)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, got)
}

func TestAvailableSets_OwnClaimIsNotExcluded(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemStore()
	tr := newTestTracker(kv, "user_a", time.Now())

	require.NoError(t, tr.MarkActive(ctx, testScope, 2))

	got, err := tr.AvailableSets(ctx, testScope, DefaultTotalSets)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestActive_PrunesExpiredClaims(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemStore()
	start := time.Now()

	b := newTestTracker(kv, "user_b", start)
	require.NoError(t, b.MarkActive(ctx, testScope, 2))

	// 31 minutes later the claim is expired: excluded from allocation and
	// swept from storage by the read.
	a := newTestTracker(kv, "user_a", start.Add(31*time.Minute))
	got, err := a.AvailableSets(ctx, testScope, DefaultTotalSets)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	var stored map[string]Claim
	_, err = kv.Get(ctx, "activeSets_Grade 9_physics", &stored)
	require.NoError(t, err)
	assert.Empty(t, stored, "expired claim should be pruned from storage")
}

func TestActive_KeepsLiveClaims(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemStore()
	start := time.Now()

	b := newTestTracker(kv, "user_b", start)
	require.NoError(t, b.MarkActive(ctx, testScope, 2))

	// 29 minutes: still live.
	a := newTestTracker(kv, "user_a", start.Add(29*time.Minute))
	got, err := a.AvailableSets(ctx, testScope, DefaultTotalSets)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, got)
}

func TestMarkCompleted_ImpliesRelease(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemStore()
	now := time.Now()
	tr := newTestTracker(kv, "user_a", now)

	require.NoError(t, tr.MarkActive(ctx, testScope, 2))
	require.NoError(t, tr.MarkCompleted(ctx, testScope, 2))

	completed, err := tr.Completed(ctx, testScope)
	require.NoError(t, err)
	assert.True(t, completed[2])

	active, err := tr.Active(ctx, testScope)
	require.NoError(t, err)
	assert.NotContains(t, active, "user_a")
}

func TestMarkCompleted_Monotonic(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker(store.NewMemStore(), "user_a", time.Now())

	require.NoError(t, tr.MarkCompleted(ctx, testScope, 2))
	require.NoError(t, tr.MarkCompleted(ctx, testScope, 1))
	require.NoError(t, tr.MarkCompleted(ctx, testScope, 2))

	completed, err := tr.Completed(ctx, testScope)
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 2: true}, completed)
}

func TestRelease_NoOpWhenAbsent(t *testing.T) {
	tr := newTestTracker(store.NewMemStore(), "user_a", time.Now())
	require.NoError(t, tr.Release(context.Background(), testScope))
}

func TestAvailableSets_FullCycleResets(t *testing.T) {
	// Session A has completed every set; the allocator wipes its ledger
	// and offers the full universe again.
	ctx := context.Background()
	tr := newTestTracker(store.NewMemStore(), "user_a", time.Now())

	for set := 1; set <= 3; set++ {
		require.NoError(t, tr.MarkCompleted(ctx, testScope, set))
	}

	got, err := tr.AvailableSets(ctx, testScope, DefaultTotalSets)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	completed, err := tr.Completed(ctx, testScope)
	require.NoError(t, err)
	assert.Empty(t, completed, "completion record should be wiped")
}

func TestAvailableSets_FullCycleExcludesOthersClaims(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemStore()
	now := time.Now()

	a := newTestTracker(kv, "user_a", now)
	b := newTestTracker(kv, "user_b", now)

	for set := 1; set <= 3; set++ {
		require.NoError(t, a.MarkCompleted(ctx, testScope, set))
	}
	require.NoError(t, b.MarkActive(ctx, testScope, 2))

	got, err := a.AvailableSets(ctx, testScope, DefaultTotalSets)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, got)
}

func TestAvailableSets_FullCycleEverythingClaimed_FallsBackToSetOne(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemStore()
	now := time.Now()

	a := newTestTracker(kv, "user_a", now)
	for set := 1; set <= 3; set++ {
		require.NoError(t, a.MarkCompleted(ctx, testScope, set))
	}
	for i, other := range []string{"user_b", "user_c", "user_d"} {
		require.NoError(t, newTestTracker(kv, other, now).MarkActive(ctx, testScope, i+1))
	}

	got, err := a.AvailableSets(ctx, testScope, DefaultTotalSets)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got, "liveness fallback")
}

func TestAvailableSets_ContentionOnly(t *testing.T) {
	// A completed {1} and others hold {2}; blocked candidates reopen
	// everything except others' claims.
	ctx := context.Background()
	kv := store.NewMemStore()
	now := time.Now()

	a := newTestTracker(kv, "user_a", now)
	require.NoError(t, a.MarkCompleted(ctx, testScope, 1))
	require.NoError(t, newTestTracker(kv, "user_b", now).MarkActive(ctx, testScope, 2))
	require.NoError(t, newTestTracker(kv, "user_c", now).MarkActive(ctx, testScope, 3))

	got, err := a.AvailableSets(ctx, testScope, DefaultTotalSets)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)

	// The completion record survives: this was contention, not exhaustion.
	completed, err := a.Completed(ctx, testScope)
	require.NoError(t, err)
	assert.True(t, completed[1])
}

func TestAvailableSets_AllClaimedByOthers(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemStore()
	now := time.Now()

	a := newTestTracker(kv, "user_a", now)
	for i, other := range []string{"user_b", "user_c", "user_d"} {
		require.NoError(t, newTestTracker(kv, other, now).MarkActive(ctx, testScope, i+1))
	}

	_, err := a.AvailableSets(ctx, testScope, DefaultTotalSets)
	assert.ErrorIs(t, err, ErrNoSets)
}

func TestAvailableSets_GeneralizesBeyondThreeSets(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemStore()
	now := time.Now()

	a := newTestTracker(kv, "user_a", now)
	require.NoError(t, a.MarkCompleted(ctx, testScope, 5))
	require.NoError(t, newTestTracker(kv, "user_b", now).MarkActive(ctx, testScope, 4))

	got, err := a.AvailableSets(ctx, testScope, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestClaimSet_RecordsClaim(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemStore()
	now := time.Now()

	tr := newTestTracker(kv, "user_a", now)
	tr.pick = func(n int) int { return n - 1 } // deterministic: last candidate

	set, err := tr.ClaimSet(ctx, testScope, DefaultTotalSets)
	require.NoError(t, err)
	assert.Equal(t, 3, set)

	active, err := tr.Active(ctx, testScope)
	require.NoError(t, err)
	require.Contains(t, active, "user_a")
	assert.Equal(t, 3, active["user_a"].SetNumber)
}

func TestMarkActive_ReplacesPriorClaim(t *testing.T) {
	ctx := context.Background()
	tr := newTestTracker(store.NewMemStore(), "user_a", time.Now())

	require.NoError(t, tr.MarkActive(ctx, testScope, 1))
	require.NoError(t, tr.MarkActive(ctx, testScope, 3))

	active, err := tr.Active(ctx, testScope)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 3, active["user_a"].SetNumber)
}

func TestScopeStatus_Partition(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemStore()
	now := time.Now()

	a := newTestTracker(kv, "user_a", now)
	require.NoError(t, a.MarkCompleted(ctx, testScope, 1))
	require.NoError(t, newTestTracker(kv, "user_b", now).MarkActive(ctx, testScope, 2))

	st, err := a.ScopeStatus(ctx, testScope, DefaultTotalSets)
	require.NoError(t, err)
	assert.Equal(t, Status{
		Completed:    []int{1},
		UsedByOthers: []int{2},
		Available:    []int{3},
	}, st)
}

func TestScopesAreIndependent(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemStore()
	now := time.Now()
	tr := newTestTracker(kv, "user_a", now)

	chemistry := question.Scope{Grade: "Grade 9", Subject: "chemistry"}
	require.NoError(t, tr.MarkCompleted(ctx, testScope, 1))

	got, err := tr.AvailableSets(ctx, chemistry, DefaultTotalSets)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}
