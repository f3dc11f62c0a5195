package info

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&userinfoCommand{})
}

type userinfoCommand struct{}

func (c *userinfoCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "userinfo",
		Description: "Displays information about a user.",
		Category:    "info",
		Class:       command.BotAccess,
		Params: []command.Param{
			{Name: "user", Description: "The user to get info about.", Type: command.ParamUser},
		},
	}
}

func (c *userinfoCommand) Run(sc *command.SlashContext) error {
	member := sc.Args.Member("user")
	if member == nil {
		member = sc.Event.Member
	}

	created, err := discordgo.SnowflakeTimestamp(member.User.ID)
	if err != nil {
		return command.ErrReferenceNotFound
	}

	roles := make([]string, 0, len(member.Roles))
	for _, id := range member.Roles {
		roles = append(roles, "<@&"+id+">")
	}
	roleList := strings.Join(roles, " ")
	if roleList == "" {
		roleList = "None"
	}

	embed := &discordgo.MessageEmbed{
		Color:     bot.EmbedColor,
		Title:     fmt.Sprintf("%s's Info", member.User.Username),
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: member.User.AvatarURL("")},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👤 User", Value: member.User.Username, Inline: true},
			{Name: "🆔 ID", Value: member.User.ID, Inline: true},
			{Name: "🗓️ Joined Discord", Value: fmt.Sprintf("<t:%d:f>", created.Unix()), Inline: true},
			{Name: "🗓️ Joined Server", Value: fmt.Sprintf("<t:%d:f>", member.JoinedAt.Unix()), Inline: true},
			{Name: "📝 Roles", Value: roleList, Inline: false},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text:    "Requested by " + sc.Actor.Username,
			IconURL: sc.Event.Member.User.AvatarURL(""),
		},
	}
	return bot.RespondEmbed(sc.Session, sc.Event, embed)
}
