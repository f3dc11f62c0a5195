package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"server-warden/datastore"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	ds, err := datastore.New(filepath.Join(t.TempDir(), "warden.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = ds.Close() })
	return New(ds)
}

func TestGuildConfigDefaultsEmpty(t *testing.T) {
	s := newTestStorage(t)

	cfg, err := s.GuildConfig("guild-1")
	require.NoError(t, err)
	assert.Empty(t, cfg.WelcomeChannelID)
	assert.Empty(t, cfg.VerifyChannelID)
}

func TestSetChannelsPersistIndependently(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.SetWelcomeChannel("guild-1", "chan-w"))
	require.NoError(t, s.SetVerifyChannel("guild-1", "chan-v"))

	cfg, err := s.GuildConfig("guild-1")
	require.NoError(t, err)
	assert.Equal(t, "chan-w", cfg.WelcomeChannelID)
	assert.Equal(t, "chan-v", cfg.VerifyChannelID)

	// A second guild is untouched.
	other, err := s.GuildConfig("guild-2")
	require.NoError(t, err)
	assert.Empty(t, other.WelcomeChannelID)
}

func TestContextPromptFallbackAndOverride(t *testing.T) {
	s := newTestStorage(t)

	got, err := s.ContextPrompt("guild-1", "default prompt")
	require.NoError(t, err)
	assert.Equal(t, "default prompt", got)

	require.NoError(t, s.SetContextPrompt("guild-1", "custom prompt"))
	got, err = s.ContextPrompt("guild-1", "default prompt")
	require.NoError(t, err)
	assert.Equal(t, "custom prompt", got)

	// Clearing reverts to the fallback.
	require.NoError(t, s.SetContextPrompt("guild-1", ""))
	got, err = s.ContextPrompt("guild-1", "default prompt")
	require.NoError(t, err)
	assert.Equal(t, "default prompt", got)
}

func TestCommandHistoryAppendsInOrder(t *testing.T) {
	s := newTestStorage(t)

	require.NoError(t, s.AppendCommandToHistory("guild-1", "ban", "user-1"))
	require.NoError(t, s.AppendCommandToHistory("guild-1", "kick", "user-2"))

	hist, err := s.FetchCommandHistory("guild-1")
	require.NoError(t, err)
	require.Len(t, hist, 2)
	assert.Equal(t, "ban", hist[0].Name)
	assert.Equal(t, "user-1", hist[0].UserID)
	assert.Equal(t, "kick", hist[1].Name)
}

func TestCommandHistoryCapped(t *testing.T) {
	s := newTestStorage(t)

	for i := 0; i < historyLimit+10; i++ {
		require.NoError(t, s.AppendCommandToHistory("guild-1", "ping", "user-1"))
	}
	hist, err := s.FetchCommandHistory("guild-1")
	require.NoError(t, err)
	assert.Len(t, hist, historyLimit)
}

func TestRecordSurvivesReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "warden.json")

	ds, err := datastore.New(path)
	require.NoError(t, err)
	s := New(ds)
	require.NoError(t, s.SetWelcomeChannel("guild-1", "chan-w"))
	require.NoError(t, s.SetContextPrompt("guild-1", "custom"))
	require.NoError(t, ds.Close())

	ds2, err := datastore.New(path)
	require.NoError(t, err)
	defer ds2.Close()
	s2 := New(ds2)

	cfg, err := s2.GuildConfig("guild-1")
	require.NoError(t, err)
	assert.Equal(t, "chan-w", cfg.WelcomeChannelID)

	prompt, err := s2.ContextPrompt("guild-1", "default")
	require.NoError(t, err)
	assert.Equal(t, "custom", prompt)
}
