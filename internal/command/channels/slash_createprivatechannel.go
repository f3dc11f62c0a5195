package channels

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

// adminRoleName is the role granted access to private channels alongside the
// requesting user.
const adminRoleName = "Admin"

func init() {
	command.Register(&createprivatechannelCommand{}, command.WithHistory)
}

type createprivatechannelCommand struct{}

func (c *createprivatechannelCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "createprivatechannel",
		Description: "Creates a private text channel for a user and admins.",
		Category:    "channels",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "user", Description: "The user to create the private channel for.", Type: command.ParamUser, Required: true},
		},
	}
}

func (c *createprivatechannelCommand) Run(sc *command.SlashContext) error {
	target := sc.Args.Member("user")

	guild, err := sc.Dir.Guild(sc.GuildID())
	if err != nil {
		return command.ErrReferenceNotFound
	}

	memberAllow := int64(discordgo.PermissionViewChannel |
		discordgo.PermissionSendMessages |
		discordgo.PermissionReadMessageHistory)

	// The @everyone role shares the guild's ID.
	overwrites := []*discordgo.PermissionOverwrite{
		{
			ID:   sc.GuildID(),
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: int64(discordgo.PermissionViewChannel),
		},
		{
			ID:    target.User.ID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: memberAllow,
		},
	}
	for _, r := range guild.Roles {
		if strings.EqualFold(r.Name, adminRoleName) {
			overwrites = append(overwrites, &discordgo.PermissionOverwrite{
				ID:    r.ID,
				Type:  discordgo.PermissionOverwriteTypeRole,
				Allow: memberAllow | int64(discordgo.PermissionManageChannels),
			})
			break
		}
	}

	ch, err := sc.Session.GuildChannelCreateComplex(sc.GuildID(), discordgo.GuildChannelCreateData{
		Name:                 target.User.Username + "-private",
		Type:                 discordgo.ChannelTypeGuildText,
		PermissionOverwrites: overwrites,
	})
	if err != nil {
		return command.External("createprivatechannel", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event,
		fmt.Sprintf("✅ Private channel created: <#%s>", ch.ID))
}
