package info

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&serverinfoCommand{})
}

type serverinfoCommand struct{}

func (c *serverinfoCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "serverinfo",
		Description: "Displays information about the server.",
		Category:    "info",
		Class:       command.BotAccess,
	}
}

func (c *serverinfoCommand) Run(sc *command.SlashContext) error {
	guild, err := sc.Dir.Guild(sc.GuildID())
	if err != nil {
		return command.ErrReferenceNotFound
	}

	ownerName := "Unknown"
	if owner, err := sc.Dir.Member(sc.GuildID(), guild.OwnerID); err == nil {
		ownerName = owner.User.Username
	}

	created, err := discordgo.SnowflakeTimestamp(guild.ID)
	if err != nil {
		return command.ErrReferenceNotFound
	}

	embed := &discordgo.MessageEmbed{
		Color:     bot.EmbedColor,
		Title:     guild.Name + " Info",
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: guild.IconURL("")},
		Fields: []*discordgo.MessageEmbedField{
			{Name: "👑 Owner", Value: ownerName, Inline: true},
			{Name: "🆔 ID", Value: guild.ID, Inline: true},
			{Name: "🗓️ Created On", Value: fmt.Sprintf("<t:%d:f>", created.Unix()), Inline: true},
			{Name: "👥 Members", Value: fmt.Sprintf("%d", guild.MemberCount), Inline: true},
			{Name: "💬 Channels", Value: fmt.Sprintf("%d", len(guild.Channels)), Inline: true},
			{Name: "🎭 Roles", Value: fmt.Sprintf("%d", len(guild.Roles)), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text:    "Requested by " + sc.Actor.Username,
			IconURL: sc.Event.Member.User.AvatarURL(""),
		},
	}
	return bot.RespondEmbed(sc.Session, sc.Event, embed)
}
