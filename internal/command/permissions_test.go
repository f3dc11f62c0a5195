package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePermission(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Permission
	}{
		{"public", Public},
		{"Public", Public},
		{"botaccess", BotAccess},
		{"bot_access", BotAccess},
		{" admin ", Admin},
		{"administrator", Admin},
	} {
		got, err := ParsePermission(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParsePermission("owner")
	assert.Error(t, err)
}

func TestEffectiveClass(t *testing.T) {
	def := Definition{Name: "verify", Class: Admin}

	assert.Equal(t, Admin, EffectiveClass(def, nil))
	assert.Equal(t, BotAccess, EffectiveClass(def, map[string]string{"verify": "botaccess"}))
	assert.Equal(t, Public, EffectiveClass(def, map[string]string{"verify": "public"}))
	assert.Equal(t, Admin, EffectiveClass(def, map[string]string{"verify": "bogus"}), "bad override keeps the declared class")
	assert.Equal(t, Admin, EffectiveClass(def, map[string]string{"other": "public"}))
}

func TestEvaluatePublic(t *testing.T) {
	a := &Actor{ID: "u1"}
	assert.True(t, Evaluate(a, Public, "botAccess"))
	assert.False(t, Evaluate(a, BotAccess, "botAccess"))
	assert.False(t, Evaluate(a, Admin, "botAccess"))
}

func TestEvaluateBotAccessRole(t *testing.T) {
	a := &Actor{ID: "u1", Roles: []RoleRank{{ID: "r1", Name: "BotAccess", Position: 2}}}
	assert.True(t, Evaluate(a, BotAccess, "botAccess"), "role name match is case-insensitive")
	assert.False(t, Evaluate(a, Admin, "botAccess"))
}

func TestEvaluateAdministratorSatisfiesEverything(t *testing.T) {
	a := &Actor{ID: "u1", IsAdministrator: true}
	assert.True(t, Evaluate(a, Public, "botAccess"))
	assert.True(t, Evaluate(a, BotAccess, "botAccess"))
	assert.True(t, Evaluate(a, Admin, "botAccess"))
}

func TestCanModerateRejectsSelf(t *testing.T) {
	a := &Actor{ID: "u1", IsAdministrator: true}
	assert.ErrorIs(t, CanModerate(a, "u1", -1), ErrInvalidTarget)
}

func TestCanModerateHierarchy(t *testing.T) {
	a := &Actor{ID: "u1", Roles: []RoleRank{{ID: "r1", Name: "Mod", Position: 5}}}

	assert.NoError(t, CanModerate(a, "u2", 4))
	assert.ErrorIs(t, CanModerate(a, "u2", 5), ErrInsufficientHierarchy)
	assert.ErrorIs(t, CanModerate(a, "u2", 9), ErrInsufficientHierarchy)
}

func TestCanModerateHierarchyAppliesToAdministrators(t *testing.T) {
	a := &Actor{ID: "u1", IsAdministrator: true, Roles: []RoleRank{{ID: "r1", Name: "Admin", Position: 5}}}
	assert.NoError(t, CanModerate(a, "u2", 4))
	assert.ErrorIs(t, CanModerate(a, "u2", 5), ErrInsufficientHierarchy)
}

func TestCanTargetRole(t *testing.T) {
	a := &Actor{ID: "u1", Roles: []RoleRank{{ID: "r1", Name: "Mod", Position: 5}}}
	assert.NoError(t, CanTargetRole(a, 4))
	assert.ErrorIs(t, CanTargetRole(a, 5), ErrInsufficientHierarchy)
	assert.ErrorIs(t, CanTargetRole(a, 6), ErrInsufficientHierarchy)
}

func TestHighestRankWithoutRoles(t *testing.T) {
	a := &Actor{ID: "u1"}
	assert.Equal(t, -1, a.HighestRank())
}
