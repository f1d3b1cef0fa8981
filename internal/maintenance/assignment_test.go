package maintenance

import (
	"encoding/json"
	"testing"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUsers = []entities.User{
	{ID: "u1", Name: "Admin User", Email: "admin@gearguard.com", Role: "admin"},
	{ID: "u2", Name: "John Technician", Email: "john@gearguard.com", Role: "technician"},
	{ID: "u3", Name: "Sarah Manager", Email: "sarah@gearguard.com", Role: "manager"},
}

func TestResolveName(t *testing.T) {
	assert.Equal(t, "John Technician", ResolveName("u2", testUsers))
	assert.Equal(t, constants.Unassigned, ResolveName("", testUsers))
	assert.Equal(t, constants.Unassigned, ResolveName("u9", testUsers), "удалённый пользователь")
	assert.Equal(t, constants.Unassigned, ResolveName("u1", nil))
}

func TestPlanAssignment(t *testing.T) {
	patch := PlanAssignment("u2")
	assert.False(t, patch.IsUnassign())
	raw, err := json.Marshal(patch)
	require.NoError(t, err)
	assert.JSONEq(t, `{"assigned_to":"u2"}`, string(raw))

	for _, in := range []string{"", "  ", constants.Unassigned} {
		patch := PlanAssignment(in)
		assert.True(t, patch.IsUnassign(), "вход %q", in)
		raw, err := json.Marshal(patch)
		require.NoError(t, err)
		assert.JSONEq(t, `{"assigned_to":null}`, string(raw))
	}
}

func TestResolveMembers(t *testing.T) {
	members := ResolveMembers([]string{"u3", "u9", "u1"}, testUsers)
	require.Len(t, members, 2)
	// порядок списка пользователей, висячий u9 отброшен
	assert.Equal(t, "u1", members[0].ID)
	assert.Equal(t, "u3", members[1].ID)

	assert.Empty(t, ResolveMembers(nil, testUsers))
	assert.NotNil(t, ResolveMembers(nil, testUsers))
	assert.Empty(t, ResolveMembers([]string{"u9"}, testUsers))
}
