package dto

import (
	"strings"

	"gearguard/internal/entities"
	"gearguard/internal/uistate"
	"gearguard/pkg/constants"
	"gearguard/pkg/utils"

	"github.com/aarondl/null/v8"
)

// RequestFormDTO - форма новой заявки. Она же тело POST /requests.
type RequestFormDTO struct {
	Subject       string                `json:"subject" validate:"required"`
	Description   null.String           `json:"description"`
	EquipmentID   string                `json:"equipment_id" validate:"required"`
	RequestType   constants.RequestType `json:"request_type" validate:"required,oneof=corrective preventive"`
	ScheduledDate null.String           `json:"scheduled_date" validate:"omitempty,iso_date"`
}

// Normalize чистит форму. Дата планирования имеет смысл только у
// профилактической заявки, у корректирующей она не отправляется.
func (f *RequestFormDTO) Normalize() {
	f.Subject = strings.TrimSpace(f.Subject)
	f.EquipmentID = strings.TrimSpace(f.EquipmentID)
	f.Description = utils.NullString(strings.TrimSpace(utils.StringOrEmpty(f.Description)))
	f.ScheduledDate = utils.NullString(strings.TrimSpace(utils.StringOrEmpty(f.ScheduledDate)))
	if f.RequestType != constants.RequestTypePreventive {
		f.ScheduledDate = null.String{}
	}
}

func NewRequestForm() RequestFormDTO {
	return RequestFormDTO{RequestType: constants.RequestTypeCorrective}
}

type StageChangeDTO struct {
	Stage constants.Stage `json:"stage" validate:"required,oneof=new in_progress repaired scrap"`
}

// AssigneeDTO - пустой user_id или "Unassigned" снимает исполнителя.
type AssigneeDTO struct {
	UserID string `json:"user_id"`
}

type DragBeginDTO struct {
	RequestID string `json:"request_id" validate:"required"`
}

type DragTargetDTO struct {
	Stage constants.Stage `json:"stage" validate:"required,oneof=new in_progress repaired scrap"`
}

// RequestCardDTO - карточка заявки на доске.
type RequestCardDTO struct {
	entities.MaintenanceRequest
	AssigneeName string `json:"assignee_name"`
	Overdue      bool   `json:"overdue"`
	Dragging     bool   `json:"dragging"`
}

type BoardColumnDTO struct {
	Stage constants.Stage  `json:"stage"`
	Title string           `json:"title"`
	Cards []RequestCardDTO `json:"cards"`
}

type BoardDTO struct {
	Columns   []BoardColumnDTO               `json:"columns"`
	Equipment []entities.Equipment           `json:"equipment"`
	Users     []entities.User                `json:"users"`
	Dialog    uistate.Dialog[RequestFormDTO] `json:"dialog"`
	Drag      *DragStateDTO                  `json:"drag,omitempty"`
}

type DragStateDTO struct {
	RequestID string          `json:"request_id"`
	FromStage constants.Stage `json:"from_stage"`
	OverStage constants.Stage `json:"over_stage,omitempty"`
}
