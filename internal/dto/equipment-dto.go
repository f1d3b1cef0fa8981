package dto

import (
	"strings"

	"gearguard/internal/entities"
	"gearguard/internal/uistate"
	"gearguard/pkg/utils"

	"github.com/aarondl/null/v8"
)

// EquipmentFormDTO - форма оборудования. Она же тело POST/PUT /equipment.
type EquipmentFormDTO struct {
	Name             string      `json:"name" validate:"required"`
	SerialNumber     string      `json:"serial_number" validate:"required,serial_number"`
	Category         string      `json:"category" validate:"required"`
	Department       null.String `json:"department"`
	AssignedEmployee null.String `json:"assigned_employee"`
	TeamID           null.String `json:"team_id"`
	Location         null.String `json:"location"`
	PurchaseDate     null.String `json:"purchase_date" validate:"omitempty,iso_date"`
	WarrantyExpiry   null.String `json:"warranty_expiry" validate:"omitempty,iso_date"`
}

// Normalize обрезает пробелы и превращает пустые необязательные поля в null.
func (f *EquipmentFormDTO) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.SerialNumber = strings.TrimSpace(f.SerialNumber)
	f.Category = strings.TrimSpace(f.Category)
	for _, field := range []*null.String{
		&f.Department, &f.AssignedEmployee, &f.TeamID,
		&f.Location, &f.PurchaseDate, &f.WarrantyExpiry,
	} {
		*field = utils.NullString(strings.TrimSpace(utils.StringOrEmpty(*field)))
	}
}

func EquipmentFormFrom(e entities.Equipment) EquipmentFormDTO {
	return EquipmentFormDTO{
		Name:             e.Name,
		SerialNumber:     e.SerialNumber,
		Category:         e.Category,
		Department:       e.Department,
		AssignedEmployee: e.AssignedEmployee,
		TeamID:           e.TeamID,
		Location:         e.Location,
		PurchaseDate:     e.PurchaseDate,
		WarrantyExpiry:   e.WarrantyExpiry,
	}
}

// EquipmentRowDTO - строка таблицы оборудования с именем бригады.
type EquipmentRowDTO struct {
	entities.Equipment
	TeamName string `json:"team_name"`
}

type EquipmentPageDTO struct {
	Items  []EquipmentRowDTO                `json:"items"`
	Teams  []entities.Team                  `json:"teams"`
	Dialog uistate.Dialog[EquipmentFormDTO] `json:"dialog"`
}

// EquipmentHistoryDTO - заявки по одной единице оборудования.
type EquipmentHistoryDTO struct {
	Equipment entities.Equipment `json:"equipment"`
	Requests  []RequestCardDTO   `json:"requests"`
}
