package aichat

import (
	"server-warden/internal/bot"
	"server-warden/internal/command"
	"server-warden/pkg/textsplit"
)

// replyChunkSize leaves headroom under the protocol limit for decorations.
const replyChunkSize = 1575

func init() {
	command.Register(&askquestionCommand{})
}

type askquestionCommand struct{}

func (c *askquestionCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "askquestion",
		Description: "Ask AI a question with context.",
		Category:    "ai",
		Class:       command.BotAccess,
		Params: []command.Param{
			{Name: "question", Description: "The question to ask AI.", Type: command.ParamString, Required: true},
		},
	}
}

func (c *askquestionCommand) Run(sc *command.SlashContext) error {
	question := sc.Args.String("question")

	if err := bot.RespondDeferred(sc.Session, sc.Event); err != nil {
		return command.External("askquestion ack", err)
	}

	prompt, err := sc.Store.ContextPrompt(sc.GuildID(), sc.Cfg.DefaultContext)
	if err != nil {
		return command.Persistence("askquestion context", err)
	}

	answer, err := sc.AI.Generate(sc.Ctx, prompt+"\n\nQuestion: "+question)
	if err != nil {
		return command.External("askquestion generate", err)
	}
	return replyChunked(sc, answer)
}

// replyChunked edits the deferred response with the first segment and follows
// up with the rest.
func replyChunked(sc *command.SlashContext, text string) error {
	chunks := textsplit.Split(text, replyChunkSize)
	if len(chunks) == 0 {
		return bot.EditResponse(sc.Session, sc.Event, "✅ Done.")
	}
	if err := bot.EditResponse(sc.Session, sc.Event, chunks[0]); err != nil {
		return command.External("reply edit", err)
	}
	for _, chunk := range chunks[1:] {
		if err := bot.Followup(sc.Session, sc.Event, chunk); err != nil {
			return command.External("reply followup", err)
		}
	}
	return nil
}
