package discord

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/command"
)

// commandHashDir caches a fingerprint of the registered command set per guild
// so unchanged definitions skip the registration round-trip.
const commandHashDir = "data/commands"

// registerCommands bulk-overwrites the guild's slash commands, skipping the
// call when the definition set hasn't changed since the last run.
func (b *Bot) registerCommands(guildID string) error {
	defs := command.Definitions()
	apps := make([]*discordgo.ApplicationCommand, 0, len(defs))
	for _, d := range defs {
		apps = append(apps, d.ApplicationCommand())
	}

	hash, err := commandSetHash(apps)
	if err != nil {
		return fmt.Errorf("failed to hash command set: %w", err)
	}

	hashPath := filepath.Join(commandHashDir, guildID+".json")
	if prev, err := os.ReadFile(hashPath); err == nil && string(prev) == hash {
		log.Printf("[INFO] Slash commands unchanged for guild %s, skipping registration", guildID)
		return nil
	}

	if err := b.regLimiter.Wait(b.ctx); err != nil {
		return err
	}
	if _, err := b.dg.ApplicationCommandBulkOverwrite(b.dg.State.User.ID, guildID, apps); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	if err := os.MkdirAll(commandHashDir, 0755); err == nil {
		if err := os.WriteFile(hashPath, []byte(hash), 0644); err != nil {
			log.Printf("[WARN] Failed to cache command hash for guild %s: %v", guildID, err)
		}
	}
	log.Printf("[DONE] Registered %d slash commands in guild %s", len(apps), guildID)
	return nil
}

// commandSetHash fingerprints the stable registration fields of the command
// set.
func commandSetHash(apps []*discordgo.ApplicationCommand) (string, error) {
	data, err := json.Marshal(apps)
	if err != nil {
		return "", err
	}
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:]), nil
}
