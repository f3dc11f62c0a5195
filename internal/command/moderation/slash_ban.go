package moderation

import (
	"fmt"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&banCommand{}, command.WithHistory)
}

type banCommand struct{}

func (c *banCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "ban",
		Description: "Bans a user from the server.",
		Category:    "moderation",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "user", Description: "The user to ban.", Type: command.ParamUser, Required: true},
			{Name: "reason", Description: "The reason for the ban.", Type: command.ParamString},
		},
	}
}

func (c *banCommand) Run(sc *command.SlashContext) error {
	target := sc.Args.Member("user")
	reason := sc.Args.StringOr("reason", "No reason provided.")

	rank, err := sc.TargetRank(target)
	if err != nil {
		return err
	}
	if err := command.CanModerate(sc.Actor, target.User.ID, rank); err != nil {
		return err
	}

	if err := sc.Session.GuildBanCreateWithReason(sc.GuildID(), target.User.ID, reason, 0); err != nil {
		return command.External("ban", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event,
		fmt.Sprintf("✅ Banned %s. Reason: %s", target.User.Username, reason))
}
