package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SharedStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSharedStore_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	type claim struct {
		SetNumber int    `json:"setNumber"`
		Session   string `json:"session"`
	}

	require.NoError(t, s.Put(ctx, "activeSets_Grade 9_physics", map[string]claim{
		"user_1": {SetNumber: 2, Session: "user_1"},
	}))

	var got map[string]claim
	ok, err := s.Get(ctx, "activeSets_Grade 9_physics", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2, got["user_1"].SetNumber)
}

func TestSharedStore_GetMissing(t *testing.T) {
	s := openTestStore(t)

	var out []int
	ok, err := s.Get(context.Background(), "completedSets_nobody_g_s", &out)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, out)
}

func TestSharedStore_OverwriteAndDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "streak", 3))
	require.NoError(t, s.Put(ctx, "streak", 7))

	var streak int
	ok, err := s.Get(ctx, "streak", &streak)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 7, streak)

	require.NoError(t, s.Delete(ctx, "streak"))
	ok, err = s.Get(ctx, "streak", &streak)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing key is a no-op.
	require.NoError(t, s.Delete(ctx, "streak"))
}

func TestSharedStore_TwoHandlesShareState(t *testing.T) {
	// Two opens of the same file model two concurrent sessions sharing
	// the coordination substrate.
	path := filepath.Join(t.TempDir(), "shared.db")
	a, err := Open(path)
	require.NoError(t, err)
	defer a.Close()
	b, err := Open(path)
	require.NoError(t, err)
	defer b.Close()

	ctx := context.Background()
	require.NoError(t, a.Put(ctx, "lang", "ta"))

	var lang string
	ok, err := b.Get(ctx, "lang", &lang)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ta", lang)
}

func TestSharedStore_Keys(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "completedSets_user_a_Grade 9_physics", []int{1}))
	require.NoError(t, s.Put(ctx, "completedSets_user_b_Grade 9_physics", []int{2}))
	require.NoError(t, s.Put(ctx, "activeSets_Grade 9_physics", map[string]int{}))

	keys, err := s.Keys(ctx, "completedSets_")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"completedSets_user_a_Grade 9_physics",
		"completedSets_user_b_Grade 9_physics",
	}, keys)

	keys, err = s.Keys(ctx, "nope_")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestMemStore_Keys(t *testing.T) {
	m := NewMemStore()
	ctx := context.Background()

	require.NoError(t, m.Put(ctx, "b_key", 1))
	require.NoError(t, m.Put(ctx, "a_key", 2))
	require.NoError(t, m.Put(ctx, "other", 3))

	keys, err := m.Keys(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a_key", "b_key", "other"}, keys)
}

func TestMemStore_RoundTrip(t *testing.T) {
	m := NewMemStore()
	ctx := context.Background()

	require.NoError(t, m.Put(ctx, "userSessionId", "user_123_abc"))

	var id string
	ok, err := m.Get(ctx, "userSessionId", &id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "user_123_abc", id)

	require.NoError(t, m.Delete(ctx, "userSessionId"))
	ok, _ = m.Get(ctx, "userSessionId", &id)
	assert.False(t, ok)
}
