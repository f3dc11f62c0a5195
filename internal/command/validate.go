package command

import (
	"github.com/bwmarrin/discordgo"
)

// ResolveArgs validates interaction options against the command's parameter
// schema and resolves entity references through the directory. Handlers only
// ever see arguments that passed this step.
func ResolveArgs(def Definition, opts []*discordgo.ApplicationCommandInteractionDataOption, guildID string, dir Directory) (Args, error) {
	byName := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		byName[o.Name] = o
	}

	args := make(Args, len(def.Params))
	for _, p := range def.Params {
		opt, ok := byName[p.Name]
		if !ok {
			if p.Required {
				return nil, InvalidArgumentf("%s is required", p.Name)
			}
			continue
		}

		switch p.Type {
		case ParamString:
			args[p.Name] = opt.StringValue()

		case ParamInt:
			v := opt.IntValue()
			if p.Bounds != nil && (v < p.Bounds.Min || v > p.Bounds.Max) {
				return nil, InvalidArgumentf("%s must be between %d and %d", p.Name, p.Bounds.Min, p.Bounds.Max)
			}
			args[p.Name] = v

		case ParamUser:
			// The nil-session accessor yields an ID-only user; the
			// directory resolves it to a full member.
			user := opt.UserValue(nil)
			member, err := dir.Member(guildID, user.ID)
			if err != nil {
				return nil, ErrReferenceNotFound
			}
			args[p.Name] = member

		case ParamRole:
			ref := opt.RoleValue(nil, "")
			role, err := dir.Role(guildID, ref.ID)
			if err != nil {
				return nil, ErrReferenceNotFound
			}
			args[p.Name] = role

		case ParamChannel:
			ref := opt.ChannelValue(nil)
			channel, err := dir.Channel(ref.ID)
			if err != nil {
				return nil, ErrReferenceNotFound
			}
			args[p.Name] = channel
		}
	}
	return args, nil
}
