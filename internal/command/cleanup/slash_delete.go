package cleanup

import (
	"fmt"
	"time"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&deleteCommand{}, command.WithHistory)
}

type deleteCommand struct{}

func (c *deleteCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "delete",
		Description: "Delete a number of recent messages in this channel (1-100, <14 days)",
		Category:    "cleanup",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "amount", Description: "Number of messages to delete (1-100)", Type: command.ParamInt, Required: true,
				Bounds: &command.IntBounds{Min: 1, Max: 100}},
		},
	}
}

func (c *deleteCommand) Run(sc *command.SlashContext) error {
	amount := int(sc.Args.Int("amount"))
	channelID := sc.Event.ChannelID

	batch, err := sc.Session.ChannelMessages(channelID, amount, "", "", "")
	if err != nil {
		return command.External("delete fetch", err)
	}

	now := time.Now()
	deletable := make([]string, 0, len(batch))
	for _, m := range batch {
		if now.Sub(m.Timestamp) < bulkDeleteMaxAge {
			deletable = append(deletable, m.ID)
		}
	}
	if len(deletable) > 0 {
		if err := sc.Session.ChannelMessagesBulkDelete(channelID, deletable); err != nil {
			return command.External("delete", err)
		}
	}
	return bot.RespondEphemeral(sc.Session, sc.Event,
		fmt.Sprintf("✅ Deleted **%d** message(s) in <#%s>.", len(deletable), channelID))
}
