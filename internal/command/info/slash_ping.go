package info

import (
	"fmt"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&pingCommand{})
}

type pingCommand struct{}

func (c *pingCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "ping",
		Description: "Checks the bot's latency.",
		Category:    "info",
		Class:       command.BotAccess,
	}
}

func (c *pingCommand) Run(sc *command.SlashContext) error {
	latency := sc.Session.HeartbeatLatency().Milliseconds()
	return bot.Respond(sc.Session, sc.Event, fmt.Sprintf("🏓 Pong! Latency is %dms.", latency))
}
