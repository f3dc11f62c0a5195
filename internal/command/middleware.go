package command

import (
	"context"
	"fmt"
	"log"

	"server-warden/pkg/cmd"
)

// definitionOf reaches through middleware wraps to the command's definition.
func definitionOf(c cmd.Command) Definition {
	if p, ok := cmd.Root(c).(DefinitionProvider); ok {
		return p.Definition()
	}
	return Definition{Name: c.Name(), Description: c.Description()}
}

// slashContext extracts the typed invocation payload.
func slashContext(inv *cmd.Invocation) (*SlashContext, error) {
	sc, ok := inv.Data.(*SlashContext)
	if !ok {
		return nil, fmt.Errorf("expected *SlashContext, got %T", inv.Data)
	}
	return sc, nil
}

// withGuildGate rejects guild-only commands invoked outside a guild.
func withGuildGate(c cmd.Command) cmd.Command {
	def := definitionOf(c)
	return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
		sc, err := slashContext(inv)
		if err != nil {
			return err
		}
		if sc.GuildID() == "" && !def.DMAllowed {
			return ErrContextRequired
		}
		return c.Run(ctx, inv)
	})
}

// withClassGate enforces the command's permission class before anything else
// touches the arguments. Configuration can override the declared class per
// command name.
func withClassGate(c cmd.Command) cmd.Command {
	def := definitionOf(c)
	return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
		sc, err := slashContext(inv)
		if err != nil {
			return err
		}

		class := EffectiveClass(def, sc.Cfg.CommandClasses)

		if sc.Actor == nil {
			// DM invocation: no member to evaluate against.
			if class != Public {
				return ErrPermissionDenied
			}
		} else if !Evaluate(sc.Actor, class, sc.Cfg.BotAccessRole) {
			return fmt.Errorf("%w (requires %s access)", ErrPermissionDenied, class)
		}
		return c.Run(ctx, inv)
	})
}

// withArgResolution validates and resolves the declared parameters so the
// handler only runs with well-formed arguments.
func withArgResolution(c cmd.Command) cmd.Command {
	def := definitionOf(c)
	return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
		sc, err := slashContext(inv)
		if err != nil {
			return err
		}
		if sc.Event == nil || sc.Event.Interaction == nil {
			return fmt.Errorf("missing interaction data")
		}
		args, err := ResolveArgs(def, sc.Event.ApplicationCommandData().Options, sc.GuildID(), sc.Dir)
		if err != nil {
			return err
		}
		sc.Args = args
		return c.Run(ctx, inv)
	})
}

// WithHistory records successful invocations in the guild's command history.
// Applied to mutating commands only.
func WithHistory(c cmd.Command) cmd.Command {
	def := definitionOf(c)
	return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
		sc, err := slashContext(inv)
		if err != nil {
			return err
		}
		if err := c.Run(ctx, inv); err != nil {
			return err
		}
		if sc.GuildID() != "" && sc.Actor != nil {
			if err := sc.Store.AppendCommandToHistory(sc.GuildID(), def.Name, sc.Actor.ID); err != nil {
				log.Printf("[WARN] Failed to record %s in history: %v", def.Name, err)
			}
		}
		return nil
	})
}
