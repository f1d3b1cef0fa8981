package maintenance

import (
	"gearguard/internal/entities"
	"gearguard/pkg/constants"
)

// IsOverdue - чистая функция от заявки и текущей даты.
// Без даты, с кривой датой или в финальной стадии заявка не просрочена;
// заявка, назначенная на сегодня, тоже ещё не просрочена.
func IsOverdue(req entities.MaintenanceRequest, today Date) bool {
	if !req.ScheduledDate.Valid || constants.IsFinalStage(req.Stage) {
		return false
	}
	scheduled, ok := ParseDate(req.ScheduledDate.String)
	if !ok {
		return false
	}
	return scheduled.Before(today)
}

// CountOverdue - сколько заявок просрочено на дату today.
func CountOverdue(requests []entities.MaintenanceRequest, today Date) int {
	n := 0
	for _, r := range requests {
		if IsOverdue(r, today) {
			n++
		}
	}
	return n
}
