// Package aichat implements the AI-assisted commands: context management,
// question answering, and conversation summarization.
package aichat

import (
	"fmt"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&setcontextCommand{}, command.WithHistory)
	command.Register(&getcontextCommand{})
}

type setcontextCommand struct{}

func (c *setcontextCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "setcontext",
		Description: "Updates the AI's response behavior/context for this server.",
		Category:    "ai",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "text", Description: "The new context for the AI.", Type: command.ParamString, Required: true},
		},
	}
}

func (c *setcontextCommand) Run(sc *command.SlashContext) error {
	if err := sc.Store.SetContextPrompt(sc.GuildID(), sc.Args.String("text")); err != nil {
		return command.Persistence("setcontext", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event, "✅ AI context updated successfully!")
}

type getcontextCommand struct{}

func (c *getcontextCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "getcontext",
		Description: "Displays the AI's current context for this server.",
		Category:    "ai",
		Class:       command.Admin,
	}
}

func (c *getcontextCommand) Run(sc *command.SlashContext) error {
	prompt, err := sc.Store.ContextPrompt(sc.GuildID(), sc.Cfg.DefaultContext)
	if err != nil {
		return command.Persistence("getcontext", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event,
		fmt.Sprintf("✅ The current AI context is:\n```%s```", prompt))
}
