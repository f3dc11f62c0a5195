package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Permission is the access class gating a command.
type Permission int

const (
	// Public commands are open to every member.
	Public Permission = iota
	// BotAccess commands require the configured access role or administrator.
	BotAccess
	// Admin commands require the Administrator permission.
	Admin
)

func (p Permission) String() string {
	switch p {
	case Public:
		return "public"
	case BotAccess:
		return "botaccess"
	case Admin:
		return "admin"
	default:
		return fmt.Sprintf("permission(%d)", int(p))
	}
}

// ParsePermission parses a class name as used in configuration overrides.
func ParsePermission(s string) (Permission, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "public":
		return Public, nil
	case "botaccess", "bot_access", "bot-access":
		return BotAccess, nil
	case "admin", "administrator":
		return Admin, nil
	default:
		return Public, fmt.Errorf("unknown permission class %q", s)
	}
}

// EffectiveClass applies a configured per-command override to the declared
// permission class. Unparseable overrides are ignored.
func EffectiveClass(def Definition, overrides map[string]string) Permission {
	if raw, ok := overrides[def.Name]; ok {
		if p, err := ParsePermission(raw); err == nil {
			return p
		}
	}
	return def.Class
}

// RoleRank is the subset of a guild role relevant to permission decisions.
type RoleRank struct {
	ID       string
	Name     string
	Position int
}

// Actor is the resolved invoker of a command.
type Actor struct {
	ID              string
	Username        string
	IsAdministrator bool
	Roles           []RoleRank
}

// HasRole reports whether the actor carries a role with the given name,
// compared case-insensitively.
func (a *Actor) HasRole(name string) bool {
	for _, r := range a.Roles {
		if strings.EqualFold(r.Name, name) {
			return true
		}
	}
	return false
}

// HighestRank returns the actor's highest role position. An actor with no
// roles ranks at -1, below the @everyone position of 0.
func (a *Actor) HighestRank() int {
	highest := -1
	for _, r := range a.Roles {
		if r.Position > highest {
			highest = r.Position
		}
	}
	return highest
}

// Evaluate reports whether the actor satisfies the permission class.
// Administrators satisfy every class; accessRole is the configured role name
// for the BotAccess class.
func Evaluate(a *Actor, class Permission, accessRole string) bool {
	if a.IsAdministrator {
		return true
	}
	switch class {
	case Public:
		return true
	case BotAccess:
		return a.HasRole(accessRole)
	default:
		return false
	}
}

// CanModerate enforces targeting rules for destructive moderation commands:
// an actor can never act on themselves, and can only act on members ranked
// strictly below their own highest role. The hierarchy rule applies to
// administrators too, matching how the directory itself orders roles.
func CanModerate(a *Actor, targetID string, targetRank int) error {
	if a.ID == targetID {
		return ErrInvalidTarget
	}
	if targetRank >= a.HighestRank() {
		return ErrInsufficientHierarchy
	}
	return nil
}

// CanTargetRole reports whether the actor outranks a role, for role
// add/remove/edit/delete operations.
func CanTargetRole(a *Actor, rolePosition int) error {
	if rolePosition >= a.HighestRank() {
		return ErrInsufficientHierarchy
	}
	return nil
}

// ActorFromMember resolves an interaction member into an Actor using the
// guild's role list.
func ActorFromMember(m *discordgo.Member, guildRoles []*discordgo.Role) *Actor {
	a := &Actor{
		ID:              m.User.ID,
		Username:        m.User.Username,
		IsAdministrator: m.Permissions&discordgo.PermissionAdministrator != 0,
	}
	byID := make(map[string]*discordgo.Role, len(guildRoles))
	for _, r := range guildRoles {
		byID[r.ID] = r
	}
	for _, roleID := range m.Roles {
		r, ok := byID[roleID]
		if !ok {
			continue
		}
		a.Roles = append(a.Roles, RoleRank{ID: r.ID, Name: r.Name, Position: r.Position})
		if r.Permissions&discordgo.PermissionAdministrator != 0 {
			a.IsAdministrator = true
		}
	}
	return a
}

// MemberRank returns the highest role position held by a member, resolved
// against the guild's role list.
func MemberRank(m *discordgo.Member, guildRoles []*discordgo.Role) int {
	byID := make(map[string]int, len(guildRoles))
	for _, r := range guildRoles {
		byID[r.ID] = r.Position
	}
	highest := -1
	for _, roleID := range m.Roles {
		if pos, ok := byID[roleID]; ok && pos > highest {
			highest = pos
		}
	}
	return highest
}
