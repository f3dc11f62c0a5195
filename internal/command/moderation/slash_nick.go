package moderation

import (
	"fmt"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&nickCommand{}, command.WithHistory)
}

type nickCommand struct{}

func (c *nickCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "nick",
		Description: "Changes a user's nickname.",
		Category:    "moderation",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "user", Description: "The user to change the nickname of.", Type: command.ParamUser, Required: true},
			{Name: "nickname", Description: "The new nickname.", Type: command.ParamString, Required: true},
		},
	}
}

func (c *nickCommand) Run(sc *command.SlashContext) error {
	target := sc.Args.Member("user")
	nickname := sc.Args.String("nickname")

	rank, err := sc.TargetRank(target)
	if err != nil {
		return err
	}
	if rank >= sc.Actor.HighestRank() && target.User.ID != sc.Actor.ID {
		return command.ErrInsufficientHierarchy
	}

	if err := sc.Session.GuildMemberNickname(sc.GuildID(), target.User.ID, nickname); err != nil {
		return command.External("nick", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event,
		fmt.Sprintf("✅ Changed %s's nickname to %q.", target.User.Username, nickname))
}
