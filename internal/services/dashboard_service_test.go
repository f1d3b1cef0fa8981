package services

import (
	"context"
	"net/http"
	"testing"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Stats(t *testing.T) {
	h := newHarness(t)
	h.srv.Stats = entities.DashboardStats{TotalEquipment: 5, TotalTeams: 2, TotalRequests: 3, NewRequests: 2}
	h.srv.Requests = []entities.MaintenanceRequest{
		request("1", constants.StageNew, constants.RequestTypePreventive, "2025-01-01"),
		request("2", constants.StageInProgress, constants.RequestTypePreventive, "2025-01-19"),
		request("3", constants.StageRepaired, constants.RequestTypePreventive, "2024-11-01"),
		request("4", constants.StageNew, constants.RequestTypePreventive, "2025-03-01"),
	}
	svc := NewDashboardService(h.base, h.clock)

	out, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, out.TotalEquipment)
	assert.Equal(t, 2, out.NewRequests)
	assert.Equal(t, 2, out.OverdueRequests)
}

func TestDashboardService_StatsFailure(t *testing.T) {
	h := newHarness(t)
	h.srv.Requests = []entities.MaintenanceRequest{
		request("1", constants.StageNew, constants.RequestTypePreventive, "2025-01-01"),
	}
	h.srv.FailWith(http.MethodGet, "/dashboard/stats", http.StatusInternalServerError, "")
	svc := NewDashboardService(h.base, h.clock)

	out, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, out.TotalEquipment)
	assert.Equal(t, 1, out.OverdueRequests)
	assert.Equal(t, []string{"Failed to load dashboard stats"}, h.toastMessages())

	h.srv.FailWith(http.MethodGet, "/dashboard/stats", http.StatusUnauthorized, "Invalid token")
	_, err = svc.Stats(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
