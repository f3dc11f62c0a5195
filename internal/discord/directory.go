package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/command"
)

// sessionDirectory answers entity queries from the gateway state cache,
// falling back to REST when the cache misses.
type sessionDirectory struct {
	s *discordgo.Session
}

// NewDirectory builds a directory backed by the session.
func NewDirectory(s *discordgo.Session) command.Directory {
	return &sessionDirectory{s: s}
}

func (d *sessionDirectory) Guild(guildID string) (*discordgo.Guild, error) {
	if g, err := d.s.State.Guild(guildID); err == nil && len(g.Roles) > 0 {
		return g, nil
	}
	g, err := d.s.Guild(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild %s: %w", guildID, err)
	}
	return g, nil
}

func (d *sessionDirectory) Member(guildID, userID string) (*discordgo.Member, error) {
	if m, err := d.s.State.Member(guildID, userID); err == nil {
		return m, nil
	}
	m, err := d.s.GuildMember(guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch member %s: %w", userID, err)
	}
	return m, nil
}

func (d *sessionDirectory) Role(guildID, roleID string) (*discordgo.Role, error) {
	if r, err := d.s.State.Role(guildID, roleID); err == nil {
		return r, nil
	}
	roles, err := d.s.GuildRoles(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roles for guild %s: %w", guildID, err)
	}
	for _, r := range roles {
		if r.ID == roleID {
			return r, nil
		}
	}
	return nil, fmt.Errorf("role %s not found in guild %s", roleID, guildID)
}

func (d *sessionDirectory) Channel(channelID string) (*discordgo.Channel, error) {
	if c, err := d.s.State.Channel(channelID); err == nil {
		return c, nil
	}
	c, err := d.s.Channel(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel %s: %w", channelID, err)
	}
	return c, nil
}
