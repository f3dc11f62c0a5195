// Package moderation implements the member moderation commands: kick, ban,
// timeout, warnings, nicknames, direct messages, and verification.
package moderation

import (
	"fmt"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&kickCommand{}, command.WithHistory)
}

type kickCommand struct{}

func (c *kickCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "kick",
		Description: "Kicks a user from the server.",
		Category:    "moderation",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "user", Description: "The user to kick.", Type: command.ParamUser, Required: true},
			{Name: "reason", Description: "The reason for the kick.", Type: command.ParamString},
		},
	}
}

func (c *kickCommand) Run(sc *command.SlashContext) error {
	target := sc.Args.Member("user")
	reason := sc.Args.StringOr("reason", "No reason provided.")

	rank, err := sc.TargetRank(target)
	if err != nil {
		return err
	}
	if err := command.CanModerate(sc.Actor, target.User.ID, rank); err != nil {
		return err
	}

	if err := sc.Session.GuildMemberDeleteWithReason(sc.GuildID(), target.User.ID, reason); err != nil {
		return command.External("kick", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event,
		fmt.Sprintf("✅ Kicked %s. Reason: %s", target.User.Username, reason))
}
