package services

import (
	"testing"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/integrations/gearguard"
	"gearguard/internal/integrations/gearguard/gearguardtest"
	"gearguard/internal/listeners"
	"gearguard/internal/repositories"
	"gearguard/pkg/constants"
	"gearguard/pkg/eventbus"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

// testToday - "сегодня" во всех тестах сервисов.
var testToday = time.Date(2025, time.January, 20, 10, 0, 0, 0, time.UTC)

type harness struct {
	srv    *gearguardtest.Server
	tokens *repositories.MemoryTokenRepository
	store  *repositories.RecordStore
	bus    *eventbus.Bus
	base   *BaseService
	toasts *NotificationService
	clock  Clock
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	srv := gearguardtest.New(t)
	tokens := repositories.NewMemoryTokenRepository()
	client := gearguard.NewClient(srv.BaseURL(), 5*time.Second, tokens, zap.NewNop())
	store := repositories.NewRecordStore()
	bus := eventbus.New(zap.NewNop())
	base := NewBaseService(client, store, bus, zap.NewNop())
	toasts := NewNotificationService(base, nil, 0)
	listeners.NewNotificationListener(toasts, zap.NewNop()).Register(bus)

	return &harness{
		srv:    srv,
		tokens: tokens,
		store:  store,
		bus:    bus,
		base:   base,
		toasts: toasts,
		clock:  Clock{Now: func() time.Time { return testToday }, Location: time.UTC},
	}
}

// toastMessages дожидается обработчиков событий и забирает тексты уведомлений.
func (h *harness) toastMessages() []string {
	h.bus.Wait()
	out := []string{}
	for _, t := range h.toasts.Drain() {
		out = append(out, t.Message)
	}
	return out
}

func (h *harness) callNames() []string {
	out := []string{}
	for _, c := range h.srv.Calls() {
		out = append(out, c.String())
	}
	return out
}

func seedUsers(h *harness) {
	h.srv.AddUser(entities.User{ID: "u1", Name: "Admin User", Email: "admin@gearguard.com", Role: "admin"}, "admin123")
	h.srv.AddUser(entities.User{ID: "u2", Name: "John Technician", Email: "john@gearguard.com", Role: "technician"}, "tech123")
}

func request(id string, stage constants.Stage, requestType constants.RequestType, scheduled string) entities.MaintenanceRequest {
	r := entities.MaintenanceRequest{
		ID:          id,
		Subject:     "Request " + id,
		EquipmentID: "eq-1",
		RequestType: requestType,
		Stage:       stage,
		CreatedBy:   "u1",
	}
	if scheduled != "" {
		r.ScheduledDate = null.StringFrom(scheduled)
	}
	return r
}

func column(board *dto.BoardDTO, stage constants.Stage) dto.BoardColumnDTO {
	for _, c := range board.Columns {
		if c.Stage == stage {
			return c
		}
	}
	return dto.BoardColumnDTO{}
}
