package listeners

import (
	"context"
	"strings"

	"gearguard/internal/dto"
	"gearguard/internal/events"
	"gearguard/pkg/eventbus"

	"go.uber.org/zap"
)

// ToastPusher - кто показывает уведомления пользователю.
type ToastPusher interface {
	Push(level dto.ToastLevel, message string) dto.ToastDTO
}

// NotificationListener превращает события консоли во всплывающие уведомления.
type NotificationListener struct {
	toasts ToastPusher
	logger *zap.Logger
}

func NewNotificationListener(toasts ToastPusher, logger *zap.Logger) *NotificationListener {
	return &NotificationListener{toasts: toasts, logger: logger}
}

func (l *NotificationListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.NameRequestStageChanged, l.handleStageChanged)
	bus.Subscribe(events.NameRequestAssigned, l.handleAssigned)
	bus.Subscribe(events.NameOperationSucceeded, l.handleSucceeded)
	bus.Subscribe(events.NameOperationFailed, l.handleFailed)
	l.logger.Info("NotificationListener подписан на события заявок и операций")
}

func (l *NotificationListener) handleStageChanged(_ context.Context, event eventbus.Event) error {
	e, ok := event.(events.RequestStageChangedEvent)
	if !ok {
		return nil
	}
	l.toasts.Push(dto.ToastSuccess, "Request moved to "+strings.ReplaceAll(string(e.To), "_", " "))
	return nil
}

func (l *NotificationListener) handleAssigned(_ context.Context, event eventbus.Event) error {
	e, ok := event.(events.RequestAssignedEvent)
	if !ok {
		return nil
	}
	if e.AssigneeID == "" {
		l.toasts.Push(dto.ToastSuccess, "Technician unassigned")
		return nil
	}
	l.toasts.Push(dto.ToastSuccess, "Technician assigned successfully!")
	return nil
}

func (l *NotificationListener) handleSucceeded(_ context.Context, event eventbus.Event) error {
	if e, ok := event.(events.OperationSucceededEvent); ok {
		l.toasts.Push(dto.ToastSuccess, e.Message)
	}
	return nil
}

func (l *NotificationListener) handleFailed(_ context.Context, event eventbus.Event) error {
	e, ok := event.(events.OperationFailedEvent)
	if !ok {
		return nil
	}
	l.logger.Warn("Операция не удалась", zap.String("message", e.Message), zap.Error(e.Err))
	l.toasts.Push(dto.ToastError, e.Message)
	return nil
}
