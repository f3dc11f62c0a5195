// Package fun implements the lightweight community commands: custom embeds,
// polls, the 8-ball, and random facts.
package fun

import (
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&embedCommand{})
}

type embedCommand struct{}

func (c *embedCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "embed",
		Description: "Sends a custom embed message.",
		Category:    "fun",
		Class:       command.BotAccess,
		Params: []command.Param{
			{Name: "title", Description: "The title of the embed.", Type: command.ParamString, Required: true},
			{Name: "description", Description: "The description of the embed.", Type: command.ParamString, Required: true},
			{Name: "color", Description: "The color of the embed (hex code, e.g., #0099ff).", Type: command.ParamString},
		},
	}
}

func (c *embedCommand) Run(sc *command.SlashContext) error {
	color := bot.EmbedColor
	if raw := sc.Args.String("color"); raw != "" {
		parsed, err := strconv.ParseInt(strings.TrimPrefix(raw, "#"), 16, 32)
		if err != nil {
			return command.InvalidArgumentf("color must be a hex code like #0099ff")
		}
		color = int(parsed)
	}

	embed := &discordgo.MessageEmbed{
		Color:       color,
		Title:       sc.Args.String("title"),
		Description: sc.Args.String("description"),
		Footer: &discordgo.MessageEmbedFooter{
			Text:    "Sent by " + sc.Actor.Username,
			IconURL: sc.Event.Member.User.AvatarURL(""),
		},
	}
	return bot.RespondEmbed(sc.Session, sc.Event, embed)
}
