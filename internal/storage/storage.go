// Package storage persists per-guild settings and command history on top of
// the flat-file datastore.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"server-warden/datastore"
)

// historyLimit caps how many command invocations are kept per guild.
const historyLimit = 200

// Storage provides typed access to per-guild records.
type Storage struct {
	store *datastore.DataStore
}

// GuildConfig holds channel bindings configured by guild admins.
type GuildConfig struct {
	WelcomeChannelID string `json:"welcome_channel_id,omitempty"`
	VerifyChannelID  string `json:"verify_channel_id,omitempty"`
}

// HistoryEntry is one recorded command invocation.
type HistoryEntry struct {
	Name     string    `json:"name"`
	UserID   string    `json:"user_id"`
	Datetime time.Time `json:"datetime"`
}

// Record is everything stored for one guild.
type Record struct {
	GuildID             string         `json:"guild_id"`
	Config              GuildConfig    `json:"config"`
	ContextPrompt       string         `json:"context_prompt,omitempty"`
	CommandsHistoryList []HistoryEntry `json:"commands_history_list,omitempty"`
}

// New wraps an opened datastore.
func New(store *datastore.DataStore) *Storage {
	return &Storage{store: store}
}

// GuildConfig returns the guild's channel bindings, zero-valued if unset.
func (s *Storage) GuildConfig(guildID string) (GuildConfig, error) {
	rec, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return GuildConfig{}, err
	}
	return rec.Config, nil
}

// SetWelcomeChannel binds the guild's welcome announcements to a channel.
func (s *Storage) SetWelcomeChannel(guildID, channelID string) error {
	return s.update(guildID, func(rec *Record) {
		rec.Config.WelcomeChannelID = channelID
	})
}

// SetVerifyChannel binds the guild's verification flow to a channel.
func (s *Storage) SetVerifyChannel(guildID, channelID string) error {
	return s.update(guildID, func(rec *Record) {
		rec.Config.VerifyChannelID = channelID
	})
}

// ContextPrompt returns the guild's AI context prompt, or fallback when none
// has been set.
func (s *Storage) ContextPrompt(guildID, fallback string) (string, error) {
	rec, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return "", err
	}
	if rec.ContextPrompt == "" {
		return fallback, nil
	}
	return rec.ContextPrompt, nil
}

// SetContextPrompt replaces the guild's AI context prompt. An empty prompt
// reverts the guild to the default.
func (s *Storage) SetContextPrompt(guildID, prompt string) error {
	return s.update(guildID, func(rec *Record) {
		rec.ContextPrompt = prompt
	})
}

// AppendCommandToHistory records a command invocation, evicting the oldest
// entries beyond the history cap.
func (s *Storage) AppendCommandToHistory(guildID, name, userID string) error {
	return s.update(guildID, func(rec *Record) {
		rec.CommandsHistoryList = append(rec.CommandsHistoryList, HistoryEntry{
			Name:     name,
			UserID:   userID,
			Datetime: time.Now(),
		})
		if n := len(rec.CommandsHistoryList); n > historyLimit {
			rec.CommandsHistoryList = rec.CommandsHistoryList[n-historyLimit:]
		}
	})
}

// FetchCommandHistory returns the guild's recorded invocations, oldest first.
func (s *Storage) FetchCommandHistory(guildID string) ([]HistoryEntry, error) {
	rec, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return rec.CommandsHistoryList, nil
}

func (s *Storage) update(guildID string, mutate func(*Record)) error {
	rec, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	mutate(rec)
	s.store.Add(guildID, rec)
	return nil
}

// getOrCreateGuildRecord reads the guild record, creating an empty one on
// first access. Stored values round-trip through JSON because the datastore
// holds decoded map[string]any after a reload.
func (s *Storage) getOrCreateGuildRecord(guildID string) (*Record, error) {
	raw, ok := s.store.Get(guildID)
	if !ok {
		rec := &Record{GuildID: guildID}
		s.store.Add(guildID, rec)
		return rec, nil
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal guild record: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal guild record: %w", err)
	}
	if rec.GuildID == "" {
		rec.GuildID = guildID
	}
	return &rec, nil
}
