package entities

import (
	"gearguard/pkg/constants"

	"github.com/aarondl/null/v8"
)

// MaintenanceRequest - заявка на обслуживание в том виде, в каком её отдаёт бэкенд.
// ScheduledDate хранится строкой: кривую дату отбрасываем при проекции, а не при разборе.
type MaintenanceRequest struct {
	ID                string                `json:"id"`
	Subject           string                `json:"subject"`
	Description       null.String           `json:"description"`
	EquipmentID       string                `json:"equipment_id"`
	EquipmentName     null.String           `json:"equipment_name"`
	EquipmentCategory null.String           `json:"equipment_category"`
	TeamID            null.String           `json:"team_id"`
	TeamName          null.String           `json:"team_name"`
	AssignedTo        null.String           `json:"assigned_to"`
	RequestType       constants.RequestType `json:"request_type"`
	Stage             constants.Stage       `json:"stage"`
	ScheduledDate     null.String           `json:"scheduled_date"`
	Duration          null.Float64          `json:"duration"`
	CreatedBy         string                `json:"created_by"`
	CreatedAt         null.String           `json:"created_at"`
	UpdatedAt         null.String           `json:"updated_at"`
}

func (r MaintenanceRequest) IsPreventive() bool {
	return r.RequestType == constants.RequestTypePreventive
}
