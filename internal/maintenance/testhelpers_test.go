package maintenance

import (
	"gearguard/internal/entities"
	"gearguard/pkg/constants"

	"github.com/aarondl/null/v8"
)

func preventive(id, date string, stage constants.Stage) entities.MaintenanceRequest {
	r := entities.MaintenanceRequest{
		ID:          id,
		Subject:     "Routine checkup " + id,
		RequestType: constants.RequestTypePreventive,
		Stage:       stage,
	}
	if date != "" {
		r.ScheduledDate = null.StringFrom(date)
	}
	return r
}

func corrective(id, date string, stage constants.Stage) entities.MaintenanceRequest {
	r := preventive(id, date, stage)
	r.RequestType = constants.RequestTypeCorrective
	return r
}

func mustDate(s string) Date {
	d, ok := ParseDate(s)
	if !ok {
		panic("bad test date " + s)
	}
	return d
}
