package welcomelog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLog(t *testing.T) *Log {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "welcomes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestShouldWelcomeUnknownMember(t *testing.T) {
	l := newTestLog(t)

	ok, err := l.ShouldWelcome("guild-1", "user-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMarkSuppressesRepeatWelcome(t *testing.T) {
	l := newTestLog(t)

	require.NoError(t, l.Mark("guild-1", "user-1"))

	ok, err := l.ShouldWelcome("guild-1", "user-1")
	require.NoError(t, err)
	assert.False(t, ok)

	// A different guild or member is unaffected.
	ok, err = l.ShouldWelcome("guild-2", "user-1")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = l.ShouldWelcome("guild-1", "user-2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestShouldWelcomeAfterDedupWindow(t *testing.T) {
	l := newTestLog(t)

	base := time.Now()
	l.now = func() time.Time { return base }
	require.NoError(t, l.Mark("guild-1", "user-1"))

	l.now = func() time.Time { return base.Add(dedupWindow - time.Minute) }
	ok, err := l.ShouldWelcome("guild-1", "user-1")
	require.NoError(t, err)
	assert.False(t, ok)

	l.now = func() time.Time { return base.Add(dedupWindow + time.Minute) }
	ok, err = l.ShouldWelcome("guild-1", "user-1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPruneRemovesOnlyStaleEntries(t *testing.T) {
	l := newTestLog(t)

	base := time.Now()
	l.now = func() time.Time { return base.Add(-retention - time.Hour) }
	require.NoError(t, l.Mark("guild-1", "stale-user"))

	l.now = func() time.Time { return base }
	require.NoError(t, l.Mark("guild-1", "fresh-user"))

	removed, err := l.Prune()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	ok, err := l.ShouldWelcome("guild-1", "stale-user")
	require.NoError(t, err)
	assert.True(t, ok, "pruned member should be welcomeable again")

	ok, err = l.ShouldWelcome("guild-1", "fresh-user")
	require.NoError(t, err)
	assert.False(t, ok)
}
