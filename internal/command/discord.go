// Package command is the dispatch core: declarative command definitions,
// permission classes, argument validation, and the adapter binding Discord
// interactions to the universal command registry.
package command

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/ai"
	"server-warden/internal/config"
	"server-warden/internal/storage"
	"server-warden/pkg/cmd"
)

// Directory answers queries about guild entities. Implementations may consult
// a cache first, but the gateway is always the authority behind them.
type Directory interface {
	Guild(guildID string) (*discordgo.Guild, error)
	Member(guildID, userID string) (*discordgo.Member, error)
	Role(guildID, roleID string) (*discordgo.Role, error)
	Channel(channelID string) (*discordgo.Channel, error)
}

// SlashContext carries everything a slash command handler needs.
type SlashContext struct {
	Ctx     context.Context
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Args    Args
	Actor   *Actor
	Store   *storage.Storage
	AI      ai.Provider
	Dir     Directory
	Cfg     *config.Config
}

// GuildID returns the invoking guild's ID, empty for DM invocations.
func (sc *SlashContext) GuildID() string {
	return sc.Event.GuildID
}

// TargetRank returns the highest role position of a member in the invoking
// guild, for hierarchy checks.
func (sc *SlashContext) TargetRank(m *discordgo.Member) (int, error) {
	guild, err := sc.Dir.Guild(sc.GuildID())
	if err != nil {
		return 0, ErrReferenceNotFound
	}
	return MemberRank(m, guild.Roles), nil
}

// ActorFor resolves any guild member into an Actor, e.g. to check a target's
// privileges.
func (sc *SlashContext) ActorFor(m *discordgo.Member) (*Actor, error) {
	guild, err := sc.Dir.Guild(sc.GuildID())
	if err != nil {
		return nil, ErrReferenceNotFound
	}
	return ActorFromMember(m, guild.Roles), nil
}

// DiscordCommand is implemented by every slash command.
type DiscordCommand interface {
	Definition() Definition
	Run(sc *SlashContext) error
}

// DefinitionProvider lets registration code reach a command's definition
// through middleware wraps.
type DefinitionProvider interface {
	Definition() Definition
}

// discordAdapter binds a DiscordCommand to the universal registry.
type discordAdapter struct {
	inner DiscordCommand
}

func (d *discordAdapter) Name() string           { return d.inner.Definition().Name }
func (d *discordAdapter) Description() string    { return d.inner.Definition().Description }
func (d *discordAdapter) Definition() Definition { return d.inner.Definition() }

func (d *discordAdapter) Run(ctx context.Context, inv *cmd.Invocation) error {
	sc, ok := inv.Data.(*SlashContext)
	if !ok {
		return fmt.Errorf("expected *SlashContext, got %T", inv.Data)
	}
	sc.Ctx = ctx
	return d.inner.Run(sc)
}

// ResolveActor builds the Actor for an interaction's invoking member.
func ResolveActor(dir Directory, guildID string, m *discordgo.Member) (*Actor, error) {
	guild, err := dir.Guild(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve guild %s: %w", guildID, err)
	}
	return ActorFromMember(m, guild.Roles), nil
}

// Definitions returns the definition of every registered command, sorted by
// name. Used for help text, gateway registration, and the status API.
func Definitions() []Definition {
	cmds := cmd.DefaultRegistry.GetAll()
	defs := make([]Definition, 0, len(cmds))
	for _, c := range cmds {
		defs = append(defs, definitionOf(c))
	}
	return defs
}

// Register wires a slash command into the default registry with the standard
// middleware chain: guild gate, then permission class gate, then argument
// resolution, then any extras, then the handler.
func Register(c DiscordCommand, extra ...cmd.Middleware) {
	mws := make([]cmd.Middleware, 0, len(extra)+3)
	mws = append(mws, extra...)
	mws = append(mws, withArgResolution, withClassGate, withGuildGate)
	cmd.DefaultRegistry.Register(cmd.Apply(&discordAdapter{inner: c}, mws...))
}
