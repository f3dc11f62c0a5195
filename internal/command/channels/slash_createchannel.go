// Package channels implements channel management commands: creation, deletion,
// private channels, slowmode, and lock/unlock.
package channels

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&createchannelCommand{}, command.WithHistory)
	command.Register(&deletechannelCommand{}, command.WithHistory)
}

type createchannelCommand struct{}

func (c *createchannelCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "createchannel",
		Description: "Creates a new text channel.",
		Category:    "channels",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "name", Description: "The name for the new channel.", Type: command.ParamString, Required: true},
		},
	}
}

func (c *createchannelCommand) Run(sc *command.SlashContext) error {
	name := sc.Args.String("name")
	ch, err := sc.Session.GuildChannelCreate(sc.GuildID(), name, discordgo.ChannelTypeGuildText)
	if err != nil {
		return command.External("createchannel", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event, fmt.Sprintf("✅ Channel created: <#%s>", ch.ID))
}

type deletechannelCommand struct{}

func (c *deletechannelCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "deletechannel",
		Description: "Deletes a text channel.",
		Category:    "channels",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "channel", Description: "The channel to delete.", Type: command.ParamChannel, Required: true},
		},
	}
}

func (c *deletechannelCommand) Run(sc *command.SlashContext) error {
	ch := sc.Args.Channel("channel")
	if _, err := sc.Session.ChannelDelete(ch.ID); err != nil {
		return command.External("deletechannel", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event, fmt.Sprintf("✅ Channel deleted: %s", ch.Name))
}
