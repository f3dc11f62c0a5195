package moderation

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&verifyCommand{}, command.WithHistory)
}

type verifyCommand struct{}

func (c *verifyCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "verify",
		Description: "Grants a user the verification role.",
		Category:    "moderation",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "user", Description: "The user to verify.", Type: command.ParamUser, Required: true},
			{Name: "role", Description: "Role to grant instead of the configured verification role.", Type: command.ParamRole},
		},
	}
}

func (c *verifyCommand) Run(sc *command.SlashContext) error {
	target := sc.Args.Member("user")

	role := sc.Args.Role("role")
	if role == nil {
		var err error
		role, err = c.findVerifyRole(sc)
		if err != nil {
			return err
		}
	}

	if err := sc.Session.GuildMemberRoleAdd(sc.GuildID(), target.User.ID, role.ID); err != nil {
		return command.External("verify", err)
	}
	return bot.Respond(sc.Session, sc.Event,
		fmt.Sprintf("✅ Added the **%s** role to %s.", role.Name, target.User.Username))
}

// findVerifyRole locates the configured verification role by name, compared
// case-insensitively.
func (c *verifyCommand) findVerifyRole(sc *command.SlashContext) (*discordgo.Role, error) {
	guild, err := sc.Dir.Guild(sc.GuildID())
	if err != nil {
		return nil, command.ErrReferenceNotFound
	}
	for _, r := range guild.Roles {
		if strings.EqualFold(r.Name, sc.Cfg.VerifyRoleName) {
			return r, nil
		}
	}
	return nil, command.ErrReferenceNotFound
}
