package maintenance

import (
	"sort"

	"gearguard/internal/entities"
)

// DefaultUpcomingLimit - длина списка ближайших работ.
const DefaultUpcomingLimit = 10

// CalendarCell - клетка месячной сетки. Пустые клетки выравнивают первый
// день месяца по дню недели (воскресенье = 0).
type CalendarCell struct {
	Blank    bool                          `json:"blank"`
	Date     *Date                         `json:"date,omitempty"`
	Day      int                           `json:"day,omitempty"`
	IsToday  bool                          `json:"is_today"`
	Requests []entities.MaintenanceRequest `json:"requests,omitempty"`
}

type MonthGrid struct {
	Month         YearMonth      `json:"month"`
	Title         string         `json:"title"`
	LeadingBlanks int            `json:"leading_blanks"`
	Cells         []CalendarCell `json:"cells"`
}

// ScheduledOn возвращает дату плановой заявки. ok=false для корректирующих
// заявок и заявок без даты или с кривой датой: в календарь они не попадают.
func ScheduledOn(req entities.MaintenanceRequest) (Date, bool) {
	if !req.IsPreventive() || !req.ScheduledDate.Valid {
		return Date{}, false
	}
	return ParseDate(req.ScheduledDate.String)
}

// IndexByDate группирует плановые заявки по дате, сохраняя исходный порядок.
func IndexByDate(requests []entities.MaintenanceRequest) map[Date][]entities.MaintenanceRequest {
	index := make(map[Date][]entities.MaintenanceRequest)
	for _, r := range requests {
		if d, ok := ScheduledOn(r); ok {
			index[d] = append(index[d], r)
		}
	}
	return index
}

// BuildMonth строит сетку месяца: len(Cells) = LeadingBlanks + DaysIn().
// Хвостовых пустых клеток нет.
func BuildMonth(ym YearMonth, requests []entities.MaintenanceRequest, today Date) MonthGrid {
	leading := int(ym.First().Weekday())
	days := ym.DaysIn()
	index := IndexByDate(requests)

	cells := make([]CalendarCell, 0, leading+days)
	for i := 0; i < leading; i++ {
		cells = append(cells, CalendarCell{Blank: true})
	}
	for day := 1; day <= days; day++ {
		d := Date{Year: ym.Year, Month: ym.Month, Day: day}
		cells = append(cells, CalendarCell{
			Date:     &d,
			Day:      day,
			IsToday:  d == today,
			Requests: index[d],
		})
	}

	return MonthGrid{
		Month:         ym,
		Title:         ym.Title(),
		LeadingBlanks: leading,
		Cells:         cells,
	}
}

// InMonth - плановые заявки, попадающие в месяц ym (для выгрузки в календарь).
func InMonth(ym YearMonth, requests []entities.MaintenanceRequest) []entities.MaintenanceRequest {
	out := make([]entities.MaintenanceRequest, 0)
	for _, r := range requests {
		if d, ok := ScheduledOn(r); ok && ym.Contains(d) {
			out = append(out, r)
		}
	}
	return out
}

// Upcoming - все плановые заявки с датой по возрастанию даты, не более limit.
// Прошедшие даты не отбрасываются. Порядок равных дат сохраняется.
func Upcoming(requests []entities.MaintenanceRequest, limit int) []entities.MaintenanceRequest {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	type dated struct {
		date Date
		req  entities.MaintenanceRequest
	}
	items := make([]dated, 0, len(requests))
	for _, r := range requests {
		if d, ok := ScheduledOn(r); ok {
			items = append(items, dated{date: d, req: r})
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].date.Before(items[j].date)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	out := make([]entities.MaintenanceRequest, len(items))
	for i, it := range items {
		out[i] = it.req
	}
	return out
}
