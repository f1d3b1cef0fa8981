package services

import (
	"context"
	"errors"

	"gearguard/internal/dto"
	"gearguard/internal/maintenance"
	apperrors "gearguard/pkg/errors"
)

type DashboardServiceInterface interface {
	Stats(ctx context.Context) (*dto.DashboardDTO, error)
}

type dashboardService struct {
	*BaseService
	clock Clock
}

func NewDashboardService(base *BaseService, clock Clock) DashboardServiceInterface {
	return &dashboardService{BaseService: base, clock: clock}
}

// Stats отдаёт счётчики бэкенда как есть и добавляет число просроченных заявок,
// посчитанное локально по снимку заявок.
func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardDTO, error) {
	out := &dto.DashboardDTO{}

	stats, err := s.api.DashboardStats(ctx)
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		return nil, err
	case err != nil:
		s.notifyFailure(ctx, "Failed to load dashboard stats", err)
	default:
		out.DashboardStats = *stats
	}

	requests, err := load(ctx, s.BaseService, s.api.ListRequests, s.store.ReplaceRequests, "Failed to load requests")
	if err != nil {
		return nil, err
	}
	out.OverdueRequests = maintenance.CountOverdue(requests, s.clock.Today())
	return out, nil
}
