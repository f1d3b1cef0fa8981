package services

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/events"
	"gearguard/internal/maintenance"
	"gearguard/internal/uistate"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"

	"go.uber.org/zap"
)

type RequestServiceInterface interface {
	Board(ctx context.Context) (*dto.BoardDTO, error)
	OpenDialog(ctx context.Context) (*dto.BoardDTO, error)
	CloseDialog(ctx context.Context) (*dto.BoardDTO, error)
	Create(ctx context.Context, form dto.RequestFormDTO) (*dto.BoardDTO, error)

	MoveRequest(ctx context.Context, id string, target constants.Stage) (*dto.BoardDTO, error)
	BeginDrag(ctx context.Context, id string) (*dto.BoardDTO, error)
	DragOver(ctx context.Context, target constants.Stage) (*dto.BoardDTO, error)
	CommitDrop(ctx context.Context, target constants.Stage) (*dto.BoardDTO, error)
	CancelDrag(ctx context.Context) (*dto.BoardDTO, error)

	Assign(ctx context.Context, id, userID string) (*dto.BoardDTO, error)
}

type requestService struct {
	*BaseService
	clock Clock

	mu     sync.Mutex
	dialog uistate.Dialog[dto.RequestFormDTO]
	drag   maintenance.DragSession
}

func NewRequestService(base *BaseService, clock Clock) RequestServiceInterface {
	return &requestService{BaseService: base, clock: clock}
}

func (s *requestService) reload(ctx context.Context) error {
	_, err := load(ctx, s.BaseService, s.api.ListRequests, s.store.ReplaceRequests, "Failed to load requests")
	return err
}

// Board - загрузка доски: заявки, оборудование для формы, пользователи для назначения.
func (s *requestService) Board(ctx context.Context) (*dto.BoardDTO, error) {
	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	if _, err := load(ctx, s.BaseService, s.api.ListEquipment, s.store.ReplaceEquipment, "Failed to load equipment"); err != nil {
		return nil, err
	}
	if _, err := load(ctx, s.BaseService, s.api.ListUsers, s.store.ReplaceUsers, "Failed to load users"); err != nil {
		return nil, err
	}
	return s.view(), nil
}

// view раскладывает снимок по колонкам в порядке стадий.
func (s *requestService) view() *dto.BoardDTO {
	today := s.clock.Today()
	users := s.store.Users()
	requests := s.store.Requests()

	s.mu.Lock()
	dialog := s.dialog
	drag, dragging := s.drag.State()
	s.mu.Unlock()

	columns := make([]dto.BoardColumnDTO, 0, len(constants.Stages))
	for _, stage := range constants.Stages {
		column := dto.BoardColumnDTO{Stage: stage, Title: stage.Label(), Cards: []dto.RequestCardDTO{}}
		for _, r := range requests {
			if r.Stage != stage {
				continue
			}
			column.Cards = append(column.Cards, dto.RequestCardDTO{
				MaintenanceRequest: r,
				AssigneeName:       maintenance.ResolveName(r.AssignedTo.String, users),
				Overdue:            maintenance.IsOverdue(r, today),
				Dragging:           dragging && drag.RequestID == r.ID,
			})
		}
		columns = append(columns, column)
	}

	board := &dto.BoardDTO{
		Columns:   columns,
		Equipment: s.store.Equipment(),
		Users:     users,
		Dialog:    dialog,
	}
	if dragging {
		board.Drag = &dto.DragStateDTO{RequestID: drag.RequestID, FromStage: drag.FromStage, OverStage: drag.OverStage}
	}
	return board
}

func (s *requestService) OpenDialog(ctx context.Context) (*dto.BoardDTO, error) {
	s.mu.Lock()
	s.dialog = s.dialog.OpenNew(dto.NewRequestForm())
	s.mu.Unlock()
	return s.view(), nil
}

func (s *requestService) CloseDialog(ctx context.Context) (*dto.BoardDTO, error) {
	s.mu.Lock()
	s.dialog = s.dialog.Close()
	s.mu.Unlock()
	return s.view(), nil
}

// Create заводит заявку; стадию "new" ставит бэкенд.
func (s *requestService) Create(ctx context.Context, form dto.RequestFormDTO) (*dto.BoardDTO, error) {
	if _, err := s.api.CreateRequest(ctx, form); err != nil {
		s.logger.Error("Create: не удалось создать заявку", zap.Any("payload", form), zap.Error(err))
		s.mu.Lock()
		s.dialog = s.dialog.Failed(form, "Failed to create request")
		s.mu.Unlock()
		return nil, s.writeFailed(ctx, "Failed to create request", err)
	}

	s.mu.Lock()
	s.dialog = s.dialog.Close()
	s.mu.Unlock()
	s.notifySuccess(ctx, "Request created successfully!")

	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	return s.view(), nil
}

func (s *requestService) findRequest(id string) (entities.MaintenanceRequest, error) {
	req, ok := s.store.FindRequest(id)
	if !ok {
		return req, apperrors.NewHttpError(http.StatusNotFound, "Request not found", apperrors.ErrNotFound, nil)
	}
	return req, nil
}

// MoveRequest - явная смена стадии (не перетаскиванием).
func (s *requestService) MoveRequest(ctx context.Context, id string, target constants.Stage) (*dto.BoardDTO, error) {
	req, err := s.findRequest(id)
	if err != nil {
		return nil, err
	}
	patch, err := maintenance.PlanTransition(req, target)
	return s.applyTransition(ctx, req, patch, err)
}

// applyTransition: пустой переход - ничего не делаем; иначе один PUT и полная перезагрузка.
// При ошибке снимок не меняется, карточка остаётся в прежней колонке.
func (s *requestService) applyTransition(ctx context.Context, req entities.MaintenanceRequest, patch maintenance.StagePatch, planErr error) (*dto.BoardDTO, error) {
	switch {
	case errors.Is(planErr, maintenance.ErrNoopTransition):
		s.logger.Debug("Стадия не изменилась, запрос не отправляется", zap.String("requestID", req.ID))
		return s.view(), nil
	case errors.Is(planErr, maintenance.ErrUnknownStage):
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Unknown stage", planErr, nil)
	case planErr != nil:
		return nil, planErr
	}

	if _, err := s.api.UpdateRequestStage(ctx, patch); err != nil {
		s.logger.Error("applyTransition: не удалось сменить стадию",
			zap.String("requestID", req.ID),
			zap.String("from", string(patch.From)),
			zap.String("to", string(patch.Stage)),
			zap.Error(err),
		)
		return nil, s.writeFailed(ctx, "Failed to update request", err)
	}

	s.bus.Publish(ctx, events.RequestStageChangedEvent{
		RequestID: req.ID,
		Subject:   req.Subject,
		From:      patch.From,
		To:        patch.Stage,
	})
	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	return s.view(), nil
}

func (s *requestService) BeginDrag(ctx context.Context, id string) (*dto.BoardDTO, error) {
	req, err := s.findRequest(id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.drag.Begin(req)
	s.mu.Unlock()
	return s.view(), nil
}

func (s *requestService) DragOver(ctx context.Context, target constants.Stage) (*dto.BoardDTO, error) {
	s.mu.Lock()
	err := s.drag.Over(target)
	s.mu.Unlock()
	if err != nil {
		return nil, dragError(err)
	}
	return s.view(), nil
}

// CommitDrop завершает перетаскивание; сессия очищается при любом исходе.
func (s *requestService) CommitDrop(ctx context.Context, target constants.Stage) (*dto.BoardDTO, error) {
	s.mu.Lock()
	state, _ := s.drag.State()
	patch, err := s.drag.Commit(target)
	s.mu.Unlock()

	if errors.Is(err, maintenance.ErrNoActiveDrag) {
		return nil, dragError(err)
	}
	req, ok := s.store.FindRequest(state.RequestID)
	if !ok {
		req = entities.MaintenanceRequest{ID: state.RequestID, Stage: state.FromStage}
	}
	return s.applyTransition(ctx, req, patch, err)
}

func (s *requestService) CancelDrag(ctx context.Context) (*dto.BoardDTO, error) {
	s.mu.Lock()
	s.drag.Cancel()
	s.mu.Unlock()
	return s.view(), nil
}

func dragError(err error) error {
	switch {
	case errors.Is(err, maintenance.ErrNoActiveDrag):
		return apperrors.NewHttpError(http.StatusConflict, "No drag in progress", err, nil)
	case errors.Is(err, maintenance.ErrUnknownStage):
		return apperrors.NewHttpError(http.StatusBadRequest, "Unknown stage", err, nil)
	}
	return err
}

// Assign назначает исполнителя. Пустое значение или "Unassigned" снимает назначение.
func (s *requestService) Assign(ctx context.Context, id, userID string) (*dto.BoardDTO, error) {
	if _, err := s.findRequest(id); err != nil {
		return nil, err
	}
	patch := maintenance.PlanAssignment(userID)
	if _, err := s.api.UpdateRequestAssignee(ctx, id, patch); err != nil {
		s.logger.Error("Assign: не удалось назначить исполнителя", zap.String("requestID", id), zap.Error(err))
		return nil, s.writeFailed(ctx, "Failed to assign technician", err)
	}

	assignee := patch.AssignedTo.String
	s.bus.Publish(ctx, events.RequestAssignedEvent{
		RequestID:    id,
		AssigneeID:   assignee,
		AssigneeName: maintenance.ResolveName(assignee, s.store.Users()),
	})
	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	return s.view(), nil
}
