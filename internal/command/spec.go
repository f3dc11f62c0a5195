package command

import "github.com/bwmarrin/discordgo"

// ParamType enumerates the argument kinds a command can declare.
type ParamType int

const (
	ParamString ParamType = iota
	ParamInt
	ParamUser
	ParamRole
	ParamChannel
)

// IntBounds limits an integer parameter to an inclusive range.
type IntBounds struct {
	Min int64
	Max int64
}

// Param declares one command argument. Declared parameters are validated and
// resolved centrally before the handler runs.
type Param struct {
	Name        string
	Description string
	Type        ParamType
	Required    bool
	Bounds      *IntBounds
}

// Definition is the declarative description of a slash command: its identity,
// permission class, and parameter schema.
type Definition struct {
	Name        string
	Description string
	Category    string
	Class       Permission
	// DMAllowed marks commands usable outside a guild.
	DMAllowed bool
	Params    []Param
}

// ApplicationCommand derives the Discord registration payload from the
// definition.
func (d Definition) ApplicationCommand() *discordgo.ApplicationCommand {
	app := &discordgo.ApplicationCommand{
		Name:        d.Name,
		Description: d.Description,
	}
	for _, p := range d.Params {
		opt := &discordgo.ApplicationCommandOption{
			Name:        p.Name,
			Description: p.Description,
			Required:    p.Required,
		}
		switch p.Type {
		case ParamInt:
			opt.Type = discordgo.ApplicationCommandOptionInteger
			if p.Bounds != nil {
				minValue := float64(p.Bounds.Min)
				opt.MinValue = &minValue
				opt.MaxValue = float64(p.Bounds.Max)
			}
		case ParamUser:
			opt.Type = discordgo.ApplicationCommandOptionUser
		case ParamRole:
			opt.Type = discordgo.ApplicationCommandOptionRole
		case ParamChannel:
			opt.Type = discordgo.ApplicationCommandOptionChannel
		default:
			opt.Type = discordgo.ApplicationCommandOptionString
		}
		app.Options = append(app.Options, opt)
	}
	return app
}
