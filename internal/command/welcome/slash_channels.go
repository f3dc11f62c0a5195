package welcome

import (
	"fmt"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&setwelcomechannelCommand{}, command.WithHistory)
	command.Register(&setverifychannelCommand{}, command.WithHistory)
}

type setwelcomechannelCommand struct{}

func (c *setwelcomechannelCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "setwelcomechannel",
		Description: "Sets the channel for welcome announcements.",
		Category:    "welcome",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "channel", Description: "The channel to announce new members in.", Type: command.ParamChannel, Required: true},
		},
	}
}

func (c *setwelcomechannelCommand) Run(sc *command.SlashContext) error {
	ch := sc.Args.Channel("channel")
	if err := sc.Store.SetWelcomeChannel(sc.GuildID(), ch.ID); err != nil {
		return command.Persistence("setwelcomechannel", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event,
		fmt.Sprintf("✅ Welcome announcements will go to <#%s>.", ch.ID))
}

type setverifychannelCommand struct{}

func (c *setverifychannelCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "setverifychannel",
		Description: "Sets the channel for the verification flow.",
		Category:    "welcome",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "channel", Description: "The channel to use for verification.", Type: command.ParamChannel, Required: true},
		},
	}
}

func (c *setverifychannelCommand) Run(sc *command.SlashContext) error {
	ch := sc.Args.Channel("channel")
	if err := sc.Store.SetVerifyChannel(sc.GuildID(), ch.ID); err != nil {
		return command.Persistence("setverifychannel", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event,
		fmt.Sprintf("✅ Verification channel set to <#%s>.", ch.ID))
}
