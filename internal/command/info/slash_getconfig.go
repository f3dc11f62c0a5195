package info

import (
	"fmt"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&getconfigCommand{})
}

type getconfigCommand struct{}

func (c *getconfigCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "getconfig",
		Description: "Shows this server's bot configuration.",
		Category:    "info",
		Class:       command.Admin,
	}
}

func (c *getconfigCommand) Run(sc *command.SlashContext) error {
	cfg, err := sc.Store.GuildConfig(sc.GuildID())
	if err != nil {
		return command.Persistence("getconfig", err)
	}

	welcome := "not set"
	if cfg.WelcomeChannelID != "" {
		welcome = "<#" + cfg.WelcomeChannelID + ">"
	}
	verify := "not set"
	if cfg.VerifyChannelID != "" {
		verify = "<#" + cfg.VerifyChannelID + ">"
	}

	contextState := "default"
	if prompt, err := sc.Store.ContextPrompt(sc.GuildID(), ""); err == nil && prompt != "" {
		contextState = "custom"
	}

	return bot.RespondEphemeral(sc.Session, sc.Event, fmt.Sprintf(
		"⚙️ **Server configuration**\nWelcome channel: %s\nVerify channel: %s\nAI context: %s",
		welcome, verify, contextState))
}
