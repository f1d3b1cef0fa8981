package services

import (
	"context"
	"errors"
	"time"

	"gearguard/internal/events"
	"gearguard/internal/integrations/gearguard"
	"gearguard/internal/maintenance"
	"gearguard/internal/repositories"
	"gearguard/pkg/eventbus"
	apperrors "gearguard/pkg/errors"

	"go.uber.org/zap"
)

// Clock - источник "сегодня" в часовом поясе консоли.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return Clock{Now: time.Now, Location: loc}
}

func (c Clock) Today() maintenance.Date {
	return maintenance.DateOf(c.Now().In(c.Location))
}

// BaseService - общие зависимости контроллеров страниц.
// Состояние страниц меняется только под своим мьютексом и никогда во время сетевого вызова.
type BaseService struct {
	api    gearguard.API
	store  *repositories.RecordStore
	bus    *eventbus.Bus
	logger *zap.Logger
}

func NewBaseService(api gearguard.API, store *repositories.RecordStore, bus *eventbus.Bus, logger *zap.Logger) *BaseService {
	return &BaseService{api: api, store: store, bus: bus, logger: logger}
}

func (s *BaseService) notifySuccess(ctx context.Context, message string) {
	s.bus.Publish(ctx, events.OperationSucceededEvent{Message: message})
}

func (s *BaseService) notifyFailure(ctx context.Context, message string, err error) {
	s.bus.Publish(ctx, events.OperationFailedEvent{Message: message, Err: err})
}

// writeFailed оформляет неудачную запись: уведомление и ошибка для ответа.
// Потеря сессии пробрасывается как есть, чтобы охранник увёл на вход.
func (s *BaseService) writeFailed(ctx context.Context, message string, err error) error {
	if errors.Is(err, apperrors.ErrUnauthorized) {
		return err
	}
	s.notifyFailure(ctx, message, err)
	return apperrors.NewHttpError(apperrors.StatusCode(err), message, err, nil)
}

// load читает коллекцию и целиком заменяет снимок в хранилище. При ошибке
// чтения показывается уведомление, а снимок становится пустым.
func load[T any](ctx context.Context, s *BaseService, fetch func(context.Context) ([]T, error), replace func([]T), failMessage string) ([]T, error) {
	items, err := fetch(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			return nil, err
		}
		s.logger.Warn("Не удалось загрузить коллекцию", zap.String("message", failMessage), zap.Error(err))
		s.notifyFailure(ctx, failMessage, err)
		items = []T{}
		replace(items)
		return items, nil
	}
	if items == nil {
		items = []T{}
	}
	replace(items)
	return items, nil
}
