package seeders

import (
	"context"
	"net/http"
	"testing"
	"time"

	"gearguard/internal/integrations/gearguard"
	"gearguard/internal/integrations/gearguard/gearguardtest"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSeeder(t *testing.T) (*Seeder, *gearguardtest.Server) {
	srv := gearguardtest.New(t)
	tokens := repositories.NewMemoryTokenRepository()
	api := gearguard.NewClient(srv.BaseURL(), 5*time.Second, tokens, zap.NewNop())
	return New(api, tokens, zap.NewNop()), srv
}

func TestSeedAll_CreatesEverythingInOrder(t *testing.T) {
	s, srv := newSeeder(t)

	stats, err := s.SeedAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Users: 4, Teams: 3, Equipment: 5, Requests: 5}, stats)

	calls := srv.Calls()
	require.Len(t, calls, 4+3+5+5)
	assert.Equal(t, "POST /auth/register", calls[0].String())
	assert.Equal(t, "POST /teams", calls[4].String())
	assert.Equal(t, "POST /equipment", calls[7].String())
	assert.Equal(t, "POST /requests", calls[12].String())
	assert.NotEmpty(t, calls[4].Auth, "бригады создаются с токеном администратора")

	require.Len(t, srv.Teams, 3)
	assert.Len(t, srv.Teams[0].MemberIDs, 2)

	// у корректирующей заявки даты нет, у профилактической есть
	assert.False(t, srv.Requests[0].ScheduledDate.Valid)
	assert.Equal(t, "2025-01-15", srv.Requests[1].ScheduledDate.String)
	assert.Equal(t, constants.RequestTypePreventive, srv.Requests[1].RequestType)
	assert.Equal(t, srv.Equipment[1].ID, srv.Requests[1].EquipmentID)
	assert.Equal(t, srv.Teams[2].ID, srv.Equipment[4].TeamID.String)
	assert.False(t, srv.Equipment[4].AssignedEmployee.Valid)
}

func TestSeedUsers_ExistingEmailFallsBackToLogin(t *testing.T) {
	s, srv := newSeeder(t)
	ctx := context.Background()
	_, err := s.SeedUsers(ctx)
	require.NoError(t, err)

	srv.ResetCalls()
	again := New(s.api, s.tokens, zap.NewNop())

	created, err := again.SeedUsers(ctx)
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Equal(t, 4, srv.CallCount(http.MethodPost, "/auth/register"))
	assert.Equal(t, 4, srv.CallCount(http.MethodPost, "/auth/login"))
	assert.Len(t, again.userIDs, 4)
}

func TestSeedRequests_StandaloneLooksUpEquipment(t *testing.T) {
	s, srv := newSeeder(t)
	ctx := context.Background()

	_, err := s.SeedUsers(ctx)
	require.NoError(t, err)
	_, err = s.SeedEquipment(ctx)
	require.NoError(t, err)

	fresh := New(s.api, s.tokens, zap.NewNop())
	created, err := fresh.SeedRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, created)
	assert.Equal(t, 1, srv.CallCount(http.MethodGet, "/equipment"))
}

func TestSeedTeams_FailedItemIsSkipped(t *testing.T) {
	s, srv := newSeeder(t)
	ctx := context.Background()
	_, err := s.SeedUsers(ctx)
	require.NoError(t, err)

	srv.FailWith(http.MethodPost, "/teams", http.StatusInternalServerError, "")
	created, err := s.SeedTeams(ctx)
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Equal(t, 3, srv.CallCount(http.MethodPost, "/teams"))
}
