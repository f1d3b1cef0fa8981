package dto

import "gearguard/internal/entities"

type DashboardDTO struct {
	entities.DashboardStats
	OverdueRequests int `json:"overdue_requests"`
}
