package moderation

import (
	"fmt"
	"time"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

// maxTimeoutMinutes is the directory's 28-day communication timeout ceiling.
const maxTimeoutMinutes = 28 * 24 * 60

func init() {
	command.Register(&timeoutCommand{}, command.WithHistory)
	command.Register(&untimeoutCommand{}, command.WithHistory)
}

type timeoutCommand struct{}

func (c *timeoutCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "timeout",
		Description: "Times out a user for a specified duration.",
		Category:    "moderation",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "user", Description: "The user to time out.", Type: command.ParamUser, Required: true},
			{Name: "duration", Description: "Duration in minutes (e.g., 60 for 1 hour).", Type: command.ParamInt, Required: true,
				Bounds: &command.IntBounds{Min: 1, Max: maxTimeoutMinutes}},
			{Name: "reason", Description: "The reason for the timeout.", Type: command.ParamString},
		},
	}
}

func (c *timeoutCommand) Run(sc *command.SlashContext) error {
	target := sc.Args.Member("user")
	duration := sc.Args.Int("duration")
	reason := sc.Args.StringOr("reason", "No reason provided.")

	rank, err := sc.TargetRank(target)
	if err != nil {
		return err
	}
	if err := command.CanModerate(sc.Actor, target.User.ID, rank); err != nil {
		return err
	}

	until := time.Now().Add(time.Duration(duration) * time.Minute)
	if err := sc.Session.GuildMemberTimeout(sc.GuildID(), target.User.ID, &until); err != nil {
		return command.External("timeout", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event,
		fmt.Sprintf("✅ Timed out %s for %d minutes. Reason: %s", target.User.Username, duration, reason))
}

type untimeoutCommand struct{}

func (c *untimeoutCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "untimeout",
		Description: "Removes a timeout from a user.",
		Category:    "moderation",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "user", Description: "The user to remove the timeout from.", Type: command.ParamUser, Required: true},
		},
	}
}

func (c *untimeoutCommand) Run(sc *command.SlashContext) error {
	target := sc.Args.Member("user")
	if err := sc.Session.GuildMemberTimeout(sc.GuildID(), target.User.ID, nil); err != nil {
		return command.External("untimeout", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event,
		fmt.Sprintf("✅ Removed timeout from %s.", target.User.Username))
}
