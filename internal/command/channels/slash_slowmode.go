package channels

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

// maxSlowmodeSeconds is the directory's per-channel rate limit ceiling.
const maxSlowmodeSeconds = 21600

func init() {
	command.Register(&slowmodeCommand{}, command.WithHistory)
}

type slowmodeCommand struct{}

func (c *slowmodeCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "slowmode",
		Description: "Sets the slowmode for the current channel.",
		Category:    "channels",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "duration", Description: "Slowmode duration in seconds (0 to disable).", Type: command.ParamInt, Required: true,
				Bounds: &command.IntBounds{Min: 0, Max: maxSlowmodeSeconds}},
		},
	}
}

func (c *slowmodeCommand) Run(sc *command.SlashContext) error {
	seconds := int(sc.Args.Int("duration"))
	if _, err := sc.Session.ChannelEdit(sc.Event.ChannelID, &discordgo.ChannelEdit{
		RateLimitPerUser: &seconds,
	}); err != nil {
		return command.External("slowmode", err)
	}
	if seconds > 0 {
		return bot.RespondEphemeral(sc.Session, sc.Event, fmt.Sprintf("✅ Slowmode set to %d seconds.", seconds))
	}
	return bot.RespondEphemeral(sc.Session, sc.Event, "✅ Slowmode disabled.")
}
