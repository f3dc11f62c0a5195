// Package roles implements role management commands: assignment, creation,
// renaming, and deletion, all guarded by the invoker's role hierarchy.
package roles

import (
	"fmt"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&addroleCommand{}, command.WithHistory)
	command.Register(&removeroleCommand{}, command.WithHistory)
}

type addroleCommand struct{}

func (c *addroleCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "addrole",
		Description: "Assigns a role to a user.",
		Category:    "roles",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "role", Description: "The role to add.", Type: command.ParamRole, Required: true},
			{Name: "user", Description: "The user to give the role to.", Type: command.ParamUser, Required: true},
		},
	}
}

func (c *addroleCommand) Run(sc *command.SlashContext) error {
	role := sc.Args.Role("role")
	target := sc.Args.Member("user")

	if err := command.CanTargetRole(sc.Actor, role.Position); err != nil {
		return err
	}
	if err := sc.Session.GuildMemberRoleAdd(sc.GuildID(), target.User.ID, role.ID); err != nil {
		return command.External("addrole", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event,
		fmt.Sprintf("✅ Added %s to %s.", role.Name, target.User.Username))
}

type removeroleCommand struct{}

func (c *removeroleCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "removerole",
		Description: "Removes a role from a user.",
		Category:    "roles",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "role", Description: "The role to remove.", Type: command.ParamRole, Required: true},
			{Name: "user", Description: "The user to remove the role from.", Type: command.ParamUser, Required: true},
		},
	}
}

func (c *removeroleCommand) Run(sc *command.SlashContext) error {
	role := sc.Args.Role("role")
	target := sc.Args.Member("user")

	if err := command.CanTargetRole(sc.Actor, role.Position); err != nil {
		return err
	}
	if err := sc.Session.GuildMemberRoleRemove(sc.GuildID(), target.User.ID, role.ID); err != nil {
		return command.External("removerole", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event,
		fmt.Sprintf("✅ Removed %s from %s.", role.Name, target.User.Username))
}
