package fun

import (
	"fmt"
	"math/rand"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

var eightballResponses = []string{
	"It is certain.", "It is decidedly so.", "Without a doubt.", "Yes, definitely.", "You may rely on it.",
	"As I see it, yes.", "Most likely.", "Outlook good.", "Yes.", "Signs point to yes.",
	"Reply hazy, try again.", "Ask again later.", "Better not tell you now.", "Cannot predict now.", "Concentrate and ask again.",
	"Don't count on it.", "My reply is no.", "My sources say no.", "Outlook not so good.", "Very doubtful.",
}

func init() {
	command.Register(&eightballCommand{})
}

type eightballCommand struct{}

func (c *eightballCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "8ball",
		Description: "Answers a yes/no question with a magical 8-ball response.",
		Category:    "fun",
		Class:       command.BotAccess,
		Params: []command.Param{
			{Name: "question", Description: "The question for the 8-ball.", Type: command.ParamString, Required: true},
		},
	}
}

func (c *eightballCommand) Run(sc *command.SlashContext) error {
	answer := eightballResponses[rand.Intn(len(eightballResponses))]
	return bot.Respond(sc.Session, sc.Event,
		fmt.Sprintf("🎱 **%s**\n%s", sc.Args.String("question"), answer))
}
