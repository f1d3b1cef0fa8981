package dto

import (
	"gearguard/internal/entities"
	"gearguard/internal/maintenance"
)

// CalendarQueryDTO - явный выбор месяца. Год и месяц передаются только вместе.
type CalendarQueryDTO struct {
	Year  int `query:"year" json:"year" validate:"required_with=Month,omitempty,min=1970,max=9999"`
	Month int `query:"month" json:"month" validate:"required_with=Year,omitempty,min=1,max=12"`
}

type CalendarDTO struct {
	Grid     maintenance.MonthGrid         `json:"grid"`
	Today    maintenance.Date              `json:"today"`
	Upcoming []entities.MaintenanceRequest `json:"upcoming"`
	Weekdays []string                      `json:"weekdays"`
}
