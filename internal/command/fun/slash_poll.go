package fun

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&pollCommand{})
}

type pollCommand struct{}

func (c *pollCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "poll",
		Description: "Creates a simple yes/no poll.",
		Category:    "fun",
		Class:       command.BotAccess,
		Params: []command.Param{
			{Name: "question", Description: "The question for the poll.", Type: command.ParamString, Required: true},
		},
	}
}

func (c *pollCommand) Run(sc *command.SlashContext) error {
	embed := &discordgo.MessageEmbed{
		Color:       bot.EmbedColor,
		Title:       "📊 Poll",
		Description: fmt.Sprintf("**%s**\n\n👍 Yes\n👎 No", sc.Args.String("question")),
		Footer: &discordgo.MessageEmbedFooter{
			Text:    "Poll by " + sc.Actor.Username,
			IconURL: sc.Event.Member.User.AvatarURL(""),
		},
	}
	if err := bot.RespondEmbed(sc.Session, sc.Event, embed); err != nil {
		return command.External("poll respond", err)
	}

	// Seed the vote reactions on the reply. Reaction failures don't undo the
	// poll itself.
	msg, err := sc.Session.InteractionResponse(sc.Event.Interaction)
	if err != nil {
		return command.External("poll fetch reply", err)
	}
	for _, emoji := range []string{"👍", "👎"} {
		if err := sc.Session.MessageReactionAdd(msg.ChannelID, msg.ID, emoji); err != nil {
			log.Printf("[WARN] Failed to add poll reaction %s: %v", emoji, err)
		}
	}
	return nil
}
