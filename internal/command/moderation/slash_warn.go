package moderation

import (
	"fmt"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&warnCommand{}, command.WithHistory)
}

type warnCommand struct{}

func (c *warnCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "warn",
		Description: "Issues a warning to a user.",
		Category:    "moderation",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "user", Description: "The user to warn.", Type: command.ParamUser, Required: true},
			{Name: "reason", Description: "The reason for the warning.", Type: command.ParamString, Required: true},
		},
	}
}

func (c *warnCommand) Run(sc *command.SlashContext) error {
	target := sc.Args.Member("user")
	reason := sc.Args.String("reason")

	guild, err := sc.Dir.Guild(sc.GuildID())
	if err != nil {
		return command.ErrReferenceNotFound
	}

	dm, err := sc.Session.UserChannelCreate(target.User.ID)
	if err != nil {
		return command.External("warn dm open", err)
	}
	warning := fmt.Sprintf("⚠️ You have been warned in %s. Reason: %s", guild.Name, reason)
	if err := bot.Message(sc.Session, dm.ID, warning); err != nil {
		return command.External("warn dm send", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event,
		fmt.Sprintf("✅ Warned %s. Reason: %s", target.User.Username, reason))
}
