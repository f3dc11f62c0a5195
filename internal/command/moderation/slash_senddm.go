package moderation

import (
	"fmt"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&senddmCommand{}, command.WithHistory)
}

type senddmCommand struct{}

func (c *senddmCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "senddm",
		Description: "Sends a direct message to a user.",
		Category:    "moderation",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "user", Description: "The user to send the DM to.", Type: command.ParamUser, Required: true},
			{Name: "message", Description: "The message to send.", Type: command.ParamString, Required: true},
		},
	}
}

func (c *senddmCommand) Run(sc *command.SlashContext) error {
	target := sc.Args.Member("user")
	message := sc.Args.String("message")

	dm, err := sc.Session.UserChannelCreate(target.User.ID)
	if err != nil {
		return command.External("senddm open", err)
	}
	if err := bot.Message(sc.Session, dm.ID, message); err != nil {
		return command.External("senddm send", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event,
		fmt.Sprintf("✅ Sent DM to %s.", target.User.Username))
}
