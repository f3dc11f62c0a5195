package channels

import (
	"github.com/bwmarrin/discordgo"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&lockCommand{}, command.WithHistory)
	command.Register(&unlockCommand{}, command.WithHistory)
}

type lockCommand struct{}

func (c *lockCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "lock",
		Description: "Locks a channel, preventing non-admin users from sending messages.",
		Category:    "channels",
		Class:       command.Admin,
	}
}

func (c *lockCommand) Run(sc *command.SlashContext) error {
	// Deny SendMessages on the @everyone overwrite (role ID == guild ID).
	err := sc.Session.ChannelPermissionSet(sc.Event.ChannelID, sc.GuildID(),
		discordgo.PermissionOverwriteTypeRole, 0, discordgo.PermissionSendMessages)
	if err != nil {
		return command.External("lock", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event, "✅ Channel locked.")
}

type unlockCommand struct{}

func (c *unlockCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "unlock",
		Description: "Unlocks a channel, allowing non-admin users to send messages.",
		Category:    "channels",
		Class:       command.Admin,
	}
}

func (c *unlockCommand) Run(sc *command.SlashContext) error {
	err := sc.Session.ChannelPermissionSet(sc.Event.ChannelID, sc.GuildID(),
		discordgo.PermissionOverwriteTypeRole, discordgo.PermissionSendMessages, 0)
	if err != nil {
		return command.External("unlock", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event, "✅ Channel unlocked.")
}
