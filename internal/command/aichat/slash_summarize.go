package aichat

import (
	"strings"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&summarizeCommand{})
}

type summarizeCommand struct{}

func (c *summarizeCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "summarize",
		Description: "Summarizes a specified number of recent messages.",
		Category:    "ai",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "amount", Description: "The number of messages to summarize (1-50).", Type: command.ParamInt, Required: true,
				Bounds: &command.IntBounds{Min: 1, Max: 50}},
		},
	}
}

func (c *summarizeCommand) Run(sc *command.SlashContext) error {
	amount := int(sc.Args.Int("amount"))

	if err := bot.RespondDeferred(sc.Session, sc.Event); err != nil {
		return command.External("summarize ack", err)
	}

	batch, err := sc.Session.ChannelMessages(sc.Event.ChannelID, amount, "", "", "")
	if err != nil {
		return command.External("summarize fetch", err)
	}

	// Fetches arrive newest-first; the transcript reads oldest-first.
	lines := make([]string, 0, len(batch))
	for i := len(batch) - 1; i >= 0; i-- {
		m := batch[i]
		lines = append(lines, m.Author.Username+": "+m.Content)
	}

	prompt := "Summarize the following conversation concisely:\n\n" + strings.Join(lines, "\n")
	summary, err := sc.AI.Generate(sc.Ctx, prompt)
	if err != nil {
		return command.External("summarize generate", err)
	}
	return replyChunked(sc, summary)
}
