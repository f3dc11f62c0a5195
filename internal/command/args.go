package command

import "github.com/bwmarrin/discordgo"

// Args holds resolved command arguments keyed by parameter name. Values are
// already validated and reference-resolved when the handler sees them.
type Args map[string]any

// Has reports whether an optional argument was provided.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns a string argument, empty when absent.
func (a Args) String(name string) string {
	v, _ := a[name].(string)
	return v
}

// StringOr returns a string argument or fallback when absent.
func (a Args) StringOr(name, fallback string) string {
	if v, ok := a[name].(string); ok {
		return v
	}
	return fallback
}

// Int returns an integer argument, zero when absent.
func (a Args) Int(name string) int64 {
	v, _ := a[name].(int64)
	return v
}

// Member returns a resolved member argument, nil when absent.
func (a Args) Member(name string) *discordgo.Member {
	v, _ := a[name].(*discordgo.Member)
	return v
}

// Role returns a resolved role argument, nil when absent.
func (a Args) Role(name string) *discordgo.Role {
	v, _ := a[name].(*discordgo.Role)
	return v
}

// Channel returns a resolved channel argument, nil when absent.
func (a Args) Channel(name string) *discordgo.Channel {
	v, _ := a[name].(*discordgo.Channel)
	return v
}
