package roles

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"server-warden/internal/bot"
	"server-warden/internal/command"
)

func init() {
	command.Register(&createroleCommand{}, command.WithHistory)
	command.Register(&deleteroleCommand{}, command.WithHistory)
	command.Register(&renameroleCommand{}, command.WithHistory)
}

type createroleCommand struct{}

func (c *createroleCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "createrole",
		Description: "Creates a new role.",
		Category:    "roles",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "name", Description: "The name for the new role.", Type: command.ParamString, Required: true},
		},
	}
}

func (c *createroleCommand) Run(sc *command.SlashContext) error {
	name := sc.Args.String("name")
	if _, err := sc.Session.GuildRoleCreate(sc.GuildID(), &discordgo.RoleParams{Name: name}); err != nil {
		return command.External("createrole", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event, fmt.Sprintf("✅ Role %q created.", name))
}

type deleteroleCommand struct{}

func (c *deleteroleCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "deleterole",
		Description: "Deletes a role.",
		Category:    "roles",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "role", Description: "The role to delete.", Type: command.ParamRole, Required: true},
		},
	}
}

func (c *deleteroleCommand) Run(sc *command.SlashContext) error {
	role := sc.Args.Role("role")
	if err := command.CanTargetRole(sc.Actor, role.Position); err != nil {
		return err
	}
	if err := sc.Session.GuildRoleDelete(sc.GuildID(), role.ID); err != nil {
		return command.External("deleterole", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event, fmt.Sprintf("✅ Role %q deleted.", role.Name))
}

type renameroleCommand struct{}

func (c *renameroleCommand) Definition() command.Definition {
	return command.Definition{
		Name:        "renamerole",
		Description: "Renames an existing role.",
		Category:    "roles",
		Class:       command.Admin,
		Params: []command.Param{
			{Name: "role", Description: "The role to rename.", Type: command.ParamRole, Required: true},
			{Name: "new_name", Description: "The new name for the role.", Type: command.ParamString, Required: true},
		},
	}
}

func (c *renameroleCommand) Run(sc *command.SlashContext) error {
	role := sc.Args.Role("role")
	newName := sc.Args.String("new_name")

	if err := command.CanTargetRole(sc.Actor, role.Position); err != nil {
		return err
	}
	if _, err := sc.Session.GuildRoleEdit(sc.GuildID(), role.ID, &discordgo.RoleParams{Name: newName}); err != nil {
		return command.External("renamerole", err)
	}
	return bot.RespondEphemeral(sc.Session, sc.Event,
		fmt.Sprintf("✅ Renamed %q to %q.", role.Name, newName))
}
