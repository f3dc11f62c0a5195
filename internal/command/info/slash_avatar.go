package info

import (
	"github.com/bwmarrin/discordgo"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&avatarCommand{})
}

type avatarCommand struct{}

func (c *avatarCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "avatar",
		Description: "Gets the avatar of a user.",
		Category:    "info",
		Class:       command.BotAccess,
		Params: []command.Param{
			{Name: "user", Description: "The user to get the avatar of.", Type: command.ParamUser},
		},
	}
}

func (c *avatarCommand) Run(sc *command.SlashContext) error {
	member := sc.Args.Member("user")
	if member == nil {
		member = sc.Event.Member
	}

	embed := &discordgo.MessageEmbed{
		Color: bot.EmbedColor,
		Title: member.User.Username + "'s Avatar",
		Image: &discordgo.MessageEmbedImage{URL: member.User.AvatarURL("1024")},
		Footer: &discordgo.MessageEmbedFooter{
			Text:    "Requested by " + sc.Actor.Username,
			IconURL: sc.Event.Member.User.AvatarURL(""),
		},
	}
	return bot.RespondEmbed(sc.Session, sc.Event, embed)
}
