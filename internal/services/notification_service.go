package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/websocket"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultToastCapacity = 50

// Broadcaster - куда ещё отправить уведомление (открытые вкладки по WebSocket).
type Broadcaster interface {
	Broadcast(messageType string, payload interface{}) error
}

type NotificationServiceInterface interface {
	Push(level dto.ToastLevel, message string) dto.ToastDTO
	// Drain отдаёт накопленные уведомления и очищает очередь.
	Drain() []dto.ToastDTO
	Inbox(ctx context.Context) (*dto.InboxDTO, error)
	MarkRead(ctx context.Context, id string) (*dto.InboxDTO, error)
}

// NotificationService - центр всплывающих уведомлений и входящие бэкенда.
// Очередь ограничена: при переполнении выпадают самые старые.
type NotificationService struct {
	*BaseService
	broadcaster Broadcaster
	capacity    int
	now         func() time.Time

	mu     sync.Mutex
	toasts []dto.ToastDTO
}

func NewNotificationService(base *BaseService, broadcaster Broadcaster, capacity int) *NotificationService {
	if capacity <= 0 {
		capacity = defaultToastCapacity
	}
	return &NotificationService{
		BaseService: base,
		broadcaster: broadcaster,
		capacity:    capacity,
		now:         time.Now,
	}
}

func (s *NotificationService) Push(level dto.ToastLevel, message string) dto.ToastDTO {
	toast := dto.ToastDTO{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: s.now().UTC(),
	}

	s.mu.Lock()
	s.toasts = append(s.toasts, toast)
	if over := len(s.toasts) - s.capacity; over > 0 {
		s.toasts = append([]dto.ToastDTO(nil), s.toasts[over:]...)
	}
	s.mu.Unlock()

	if s.broadcaster != nil {
		if err := s.broadcaster.Broadcast(websocket.MessageToast, toast); err != nil {
			s.logger.Warn("Push: не удалось разослать уведомление", zap.Error(err))
		}
	}
	return toast
}

func (s *NotificationService) Drain() []dto.ToastDTO {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.toasts
	s.toasts = nil
	if out == nil {
		out = []dto.ToastDTO{}
	}
	return out
}

func (s *NotificationService) Inbox(ctx context.Context) (*dto.InboxDTO, error) {
	items, err := s.api.ListNotifications(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			return nil, err
		}
		s.logger.Warn("Inbox: не удалось загрузить уведомления", zap.Error(err))
		s.Push(dto.ToastError, "Failed to load notifications")
		return &dto.InboxDTO{Items: []entities.Notification{}}, nil
	}
	unread := 0
	for _, n := range items {
		if !n.IsRead {
			unread++
		}
	}
	if items == nil {
		items = []entities.Notification{}
	}
	return &dto.InboxDTO{Items: items, Unread: unread}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) (*dto.InboxDTO, error) {
	if err := s.api.MarkNotificationRead(ctx, id); err != nil {
		s.logger.Error("MarkRead: не удалось отметить уведомление", zap.String("id", id), zap.Error(err))
		if errors.Is(err, apperrors.ErrUnauthorized) {
			return nil, err
		}
		s.Push(dto.ToastError, "Failed to update notification")
		return nil, apperrors.NewHttpError(apperrors.StatusCode(err), "Failed to update notification", err, nil)
	}
	return s.Inbox(ctx)
}

var _ NotificationServiceInterface = (*NotificationService)(nil)
