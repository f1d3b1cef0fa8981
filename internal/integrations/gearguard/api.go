package gearguard

import (
	"context"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/maintenance"
)

// API - всё, что консоль делает с бэкендом. Реализуется *Client.
type API interface {
	Login(ctx context.Context, in dto.LoginDTO) (*dto.AuthResponseDTO, error)
	Register(ctx context.Context, in dto.RegisterDTO) (*dto.AuthResponseDTO, error)
	Me(ctx context.Context) (*entities.User, error)

	ListEquipment(ctx context.Context) ([]entities.Equipment, error)
	CreateEquipment(ctx context.Context, in dto.EquipmentFormDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id string, in dto.EquipmentFormDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error
	EquipmentRequests(ctx context.Context, id string) ([]entities.MaintenanceRequest, error)

	ListTeams(ctx context.Context) ([]entities.Team, error)
	CreateTeam(ctx context.Context, in dto.TeamFormDTO) (*entities.Team, error)
	UpdateTeam(ctx context.Context, id string, in dto.TeamFormDTO) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id string) error

	ListUsers(ctx context.Context) ([]entities.User, error)

	ListRequests(ctx context.Context) ([]entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, in dto.RequestFormDTO) (*entities.MaintenanceRequest, error)
	UpdateRequestStage(ctx context.Context, patch maintenance.StagePatch) (*entities.MaintenanceRequest, error)
	UpdateRequestAssignee(ctx context.Context, id string, patch maintenance.AssignmentPatch) (*entities.MaintenanceRequest, error)

	DashboardStats(ctx context.Context) (*entities.DashboardStats, error)

	ListNotifications(ctx context.Context) ([]entities.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

var _ API = (*Client)(nil)
