package services

import (
	"context"
	"sync"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/maintenance"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"
)

var weekdayHeaders = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type CalendarServiceInterface interface {
	// Month загружает заявки и показывает месяц; нулевые year/month - текущий показанный месяц.
	Month(ctx context.Context, year, month int) (*dto.CalendarDTO, error)
	Prev(ctx context.Context) (*dto.CalendarDTO, error)
	Next(ctx context.Context) (*dto.CalendarDTO, error)
	Today(ctx context.Context) (*dto.CalendarDTO, error)
	// ExportICS выгружает профилактические заявки показанного месяца в iCalendar.
	ExportICS(ctx context.Context) ([]byte, maintenance.YearMonth, error)
}

type calendarService struct {
	*BaseService
	clock         Clock
	upcomingLimit int

	mu        sync.Mutex
	displayed maintenance.YearMonth
}

func NewCalendarService(base *BaseService, clock Clock, upcomingLimit int) CalendarServiceInterface {
	if upcomingLimit <= 0 {
		upcomingLimit = maintenance.DefaultUpcomingLimit
	}
	return &calendarService{
		BaseService:   base,
		clock:         clock,
		upcomingLimit: upcomingLimit,
		displayed:     maintenance.MonthOf(clock.Today()),
	}
}

func (s *calendarService) Month(ctx context.Context, year, month int) (*dto.CalendarDTO, error) {
	if _, err := load(ctx, s.BaseService, s.api.ListRequests, s.store.ReplaceRequests, "Failed to load calendar"); err != nil {
		return nil, err
	}
	if year != 0 && month != 0 {
		s.navigate(func(maintenance.YearMonth) maintenance.YearMonth {
			return maintenance.NewYearMonth(year, time.Month(month))
		})
	}
	return s.view(), nil
}

// Навигация по месяцам работает по уже загруженному снимку, без сети.
func (s *calendarService) Prev(ctx context.Context) (*dto.CalendarDTO, error) {
	s.navigate(maintenance.YearMonth.Prev)
	return s.view(), nil
}

func (s *calendarService) Next(ctx context.Context) (*dto.CalendarDTO, error) {
	s.navigate(maintenance.YearMonth.Next)
	return s.view(), nil
}

func (s *calendarService) Today(ctx context.Context) (*dto.CalendarDTO, error) {
	today := s.clock.Today()
	s.navigate(func(maintenance.YearMonth) maintenance.YearMonth { return maintenance.MonthOf(today) })
	return s.view(), nil
}

func (s *calendarService) navigate(step func(maintenance.YearMonth) maintenance.YearMonth) {
	s.mu.Lock()
	s.displayed = step(s.displayed)
	s.mu.Unlock()
}

func (s *calendarService) current() maintenance.YearMonth {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.displayed
}

func (s *calendarService) view() *dto.CalendarDTO {
	today := s.clock.Today()
	requests := s.store.Requests()
	return &dto.CalendarDTO{
		Grid:     maintenance.BuildMonth(s.current(), requests, today),
		Today:    today,
		Upcoming: maintenance.Upcoming(requests, s.upcomingLimit),
		Weekdays: weekdayHeaders,
	}
}

func (s *calendarService) ExportICS(ctx context.Context) ([]byte, maintenance.YearMonth, error) {
	ym := s.current()
	requests := maintenance.InMonth(ym, s.store.Requests())

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//GearGuard//Maintenance Calendar//EN")
	cal.SetName("GearGuard " + ym.Title())

	stamp := s.clock.Now().UTC()
	for _, r := range requests {
		date, _ := maintenance.ScheduledOn(r)
		event := cal.AddEvent(r.ID + "@gearguard")
		event.SetDtStampTime(stamp)
		event.SetSummary(r.Subject)
		if r.EquipmentName.Valid {
			event.SetLocation(r.EquipmentName.String)
		}
		if r.Description.Valid {
			event.SetDescription(r.Description.String)
		}
		start := date.Time(time.UTC)
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(start.AddDate(0, 0, 1))
	}

	s.logger.Info("Календарь выгружен в iCalendar",
		zap.String("month", ym.Title()),
		zap.Int("events", len(requests)),
	)
	return []byte(cal.Serialize()), ym, nil
}
