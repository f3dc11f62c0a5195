package cleanup

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&deleteallCommand{}, command.WithHistory)
}

type deleteallCommand struct{}

func (c *deleteallCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "deleteall",
		Description: "Delete all messages in this channel (handles 14-day limit; may nuke channel)",
		Category:    "cleanup",
		Class:       command.Admin,
	}
}

func (c *deleteallCommand) Run(sc *command.SlashContext) error {
	channelID := sc.Event.ChannelID

	// The purge loop can take a while; acknowledge first.
	if err := bot.RespondDeferredEphemeral(sc.Session, sc.Event); err != nil {
		return command.External("deleteall ack", err)
	}

	res, err := NewPurger(sc.Session).Run(sc.Ctx, channelID)
	if err != nil {
		return command.External("deleteall purge", err)
	}

	if !res.Leftover {
		return bot.EditResponse(sc.Session, sc.Event,
			fmt.Sprintf("✅ Purged **%d** recent message(s). Channel is now empty.", res.Deleted))
	}

	if !c.canRecreate(sc) {
		return bot.EditResponse(sc.Session, sc.Event,
			fmt.Sprintf("✅ Purged **%d** recent message(s).\n"+
				"⚠️ Messages older than 14 days remain. You need **Manage Channels** for me to recreate the channel.", res.Deleted))
	}

	replacement, err := c.recreate(sc, channelID)
	if err != nil {
		return command.External("deleteall recreate", err)
	}
	return bot.EditResponse(sc.Session, sc.Event,
		fmt.Sprintf("✅ Purged **%d** recent message(s).\n"+
			"🧨 Older messages couldn't be bulk-deleted, so the channel was **recreated**.\n"+
			"➡️ New channel: <#%s>", res.Deleted, replacement.ID))
}

// canRecreate reports whether the invoker may trigger the destructive
// recreation step.
func (c *deleteallCommand) canRecreate(sc *command.SlashContext) bool {
	if sc.Actor.IsAdministrator {
		return true
	}
	return sc.Event.Member != nil &&
		sc.Event.Member.Permissions&discordgo.PermissionManageChannels != 0
}

// recreate clones the channel (name, topic, parent, position, overwrites) and
// deletes the original.
func (c *deleteallCommand) recreate(sc *command.SlashContext, channelID string) (*discordgo.Channel, error) {
	old, err := sc.Dir.Channel(channelID)
	if err != nil {
		return nil, err
	}

	replacement, err := sc.Session.GuildChannelCreateComplex(sc.GuildID(), discordgo.GuildChannelCreateData{
		Name:                 old.Name,
		Type:                 old.Type,
		Topic:                old.Topic,
		ParentID:             old.ParentID,
		Position:             old.Position,
		PermissionOverwrites: old.PermissionOverwrites,
	})
	if err != nil {
		return nil, err
	}
	if _, err := sc.Session.ChannelDelete(channelID); err != nil {
		return nil, err
	}
	return replacement, nil
}
