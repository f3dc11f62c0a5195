package command

import (
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirectory struct {
	members  map[string]*discordgo.Member
	roles    map[string]*discordgo.Role
	channels map[string]*discordgo.Channel
	guild    *discordgo.Guild
}

func (f *fakeDirectory) Guild(guildID string) (*discordgo.Guild, error) {
	if f.guild == nil {
		return nil, fmt.Errorf("guild %s not found", guildID)
	}
	return f.guild, nil
}

func (f *fakeDirectory) Member(guildID, userID string) (*discordgo.Member, error) {
	if m, ok := f.members[userID]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("member %s not found", userID)
}

func (f *fakeDirectory) Role(guildID, roleID string) (*discordgo.Role, error) {
	if r, ok := f.roles[roleID]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("role %s not found", roleID)
}

func (f *fakeDirectory) Channel(channelID string) (*discordgo.Channel, error) {
	if c, ok := f.channels[channelID]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("channel %s not found", channelID)
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value,
	}
}

func intOpt(name string, value int64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(value),
	}
}

func userOpt(name, id string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name: name, Type: discordgo.ApplicationCommandOptionUser, Value: id,
	}
}

func roleOpt(name, id string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name: name, Type: discordgo.ApplicationCommandOptionRole, Value: id,
	}
}

func channelOpt(name, id string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name: name, Type: discordgo.ApplicationCommandOptionChannel, Value: id,
	}
}

func TestResolveArgsRequiredMissing(t *testing.T) {
	def := Definition{Name: "say", Params: []Param{
		{Name: "message", Type: ParamString, Required: true},
	}}

	_, err := ResolveArgs(def, nil, "g1", &fakeDirectory{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestResolveArgsOptionalMissing(t *testing.T) {
	def := Definition{Name: "ban", Params: []Param{
		{Name: "reason", Type: ParamString},
	}}

	args, err := ResolveArgs(def, nil, "g1", &fakeDirectory{})
	require.NoError(t, err)
	assert.False(t, args.Has("reason"))
	assert.Equal(t, "no reason given", args.StringOr("reason", "no reason given"))
}

func TestResolveArgsIntBounds(t *testing.T) {
	def := Definition{Name: "delete", Params: []Param{
		{Name: "amount", Type: ParamInt, Required: true, Bounds: &IntBounds{Min: 1, Max: 100}},
	}}
	dir := &fakeDirectory{}

	args, err := ResolveArgs(def, []*discordgo.ApplicationCommandInteractionDataOption{intOpt("amount", 50)}, "g1", dir)
	require.NoError(t, err)
	assert.Equal(t, int64(50), args.Int("amount"))

	_, err = ResolveArgs(def, []*discordgo.ApplicationCommandInteractionDataOption{intOpt("amount", 0)}, "g1", dir)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ResolveArgs(def, []*discordgo.ApplicationCommandInteractionDataOption{intOpt("amount", 101)}, "g1", dir)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestResolveArgsReferences(t *testing.T) {
	member := &discordgo.Member{User: &discordgo.User{ID: "u2", Username: "target"}}
	role := &discordgo.Role{ID: "r1", Name: "Students"}
	channel := &discordgo.Channel{ID: "c1", Name: "general"}
	dir := &fakeDirectory{
		members:  map[string]*discordgo.Member{"u2": member},
		roles:    map[string]*discordgo.Role{"r1": role},
		channels: map[string]*discordgo.Channel{"c1": channel},
	}
	def := Definition{Name: "addrole", Params: []Param{
		{Name: "user", Type: ParamUser, Required: true},
		{Name: "role", Type: ParamRole, Required: true},
		{Name: "channel", Type: ParamChannel},
	}}

	args, err := ResolveArgs(def, []*discordgo.ApplicationCommandInteractionDataOption{
		userOpt("user", "u2"),
		roleOpt("role", "r1"),
		channelOpt("channel", "c1"),
	}, "g1", dir)
	require.NoError(t, err)
	assert.Equal(t, member, args.Member("user"))
	assert.Equal(t, role, args.Role("role"))
	assert.Equal(t, channel, args.Channel("channel"))
}

func TestResolveArgsUnknownReference(t *testing.T) {
	dir := &fakeDirectory{}
	def := Definition{Name: "kick", Params: []Param{
		{Name: "user", Type: ParamUser, Required: true},
	}}

	_, err := ResolveArgs(def, []*discordgo.ApplicationCommandInteractionDataOption{userOpt("user", "ghost")}, "g1", dir)
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}

func TestResolveArgsString(t *testing.T) {
	def := Definition{Name: "say", Params: []Param{
		{Name: "message", Type: ParamString, Required: true},
	}}

	args, err := ResolveArgs(def, []*discordgo.ApplicationCommandInteractionDataOption{stringOpt("message", "hello")}, "g1", &fakeDirectory{})
	require.NoError(t, err)
	assert.Equal(t, "hello", args.String("message"))
}
