package welcome

import (
	"fmt"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&sendwelcomemessageCommand{}, command.WithHistory)
}

type sendwelcomemessageCommand struct{}

func (c *sendwelcomemessageCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "sendwelcomemessage",
		Description: "Posts the welcome message to a channel.",
		Category:    "welcome",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "channel", Description: "The channel to post the welcome message in.", Type: command.ParamChannel, Required: true},
		},
	}
}

func (c *sendwelcomemessageCommand) Run(sc *command.SlashContext) error {
	ch := sc.Args.Channel("channel")

	guild, err := sc.Dir.Guild(sc.GuildID())
	if err != nil {
		return command.ErrReferenceNotFound
	}
	if err := bot.Message(sc.Session, ch.ID, DirectMessage(guild.Name)); err != nil {
		return command.External("sendwelcomemessage", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event,
		fmt.Sprintf("✅ Welcome message posted in <#%s>.", ch.ID))
}
