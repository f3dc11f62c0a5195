// Package info implements informational commands: help, ping, user and server
// details, avatars, and the guild configuration readout.
package info

import (
	"fmt"
	"strings"

	"server-warden/internal/bot"
	"server-warden/internal/command"
	"server-warden/pkg/textsplit"
)

const replyChunkSize = 1575

func init() {
	command.Register(&helpCommand{})
}

type helpCommand struct{}

func (c *helpCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "help",
		Description: "Shows a list of all available commands.",
		Category:    "info",
		Class:       command.Public,
	}
}

func (c *helpCommand) Run(sc *command.SlashContext) error {
	if err := bot.RespondDeferredEphemeral(sc.Session, sc.Event); err != nil {
		return command.External("help ack", err)
	}

	byCategory := make(map[string][]command.Definition)
	var order []string
	for _, def := range command.Definitions() {
		if _, seen := byCategory[def.Category]; !seen {
			order = append(order, def.Category)
		}
		byCategory[def.Category] = append(byCategory[def.Category], def)
	}

	var sb strings.Builder
	sb.WriteString("📘 **Available Commands**\n")
	for _, category := range order {
		sb.WriteString(fmt.Sprintf("\n**%s**\n", strings.ToUpper(category[:1])+category[1:]))
		for _, def := range byCategory[category] {
			sb.WriteString("/" + def.Name)
			for _, p := range def.Params {
				if p.Required {
					sb.WriteString(" <" + p.Name + ">")
				} else {
					sb.WriteString(" [" + p.Name + "]")
				}
			}
			sb.WriteString(" - " + def.Description + "\n")
		}
	}

	chunks := textsplit.Split(sb.String(), replyChunkSize)
	if err := bot.EditResponse(sc.Session, sc.Event, chunks[0]); err != nil {
		return command.External("help edit", err)
	}
	for _, chunk := range chunks[1:] {
		if err := bot.FollowupEphemeral(sc.Session, sc.Event, chunk); err != nil {
			return command.External("help followup", err)
		}
	}
	return nil
}
