package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/maintenance"
	"gearguard/internal/uistate"
	apperrors "gearguard/pkg/errors"

	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	Page(ctx context.Context) (*dto.EquipmentPageDTO, error)
	OpenDialog(ctx context.Context, id string) (*dto.EquipmentPageDTO, error)
	CloseDialog(ctx context.Context) (*dto.EquipmentPageDTO, error)
	Submit(ctx context.Context, form dto.EquipmentFormDTO) (*dto.EquipmentPageDTO, error)
	Delete(ctx context.Context, id string) (*dto.EquipmentPageDTO, error)
	History(ctx context.Context, id string) (*dto.EquipmentHistoryDTO, error)
}

type equipmentService struct {
	*BaseService
	clock Clock

	mu     sync.Mutex
	dialog uistate.Dialog[dto.EquipmentFormDTO]
}

func NewEquipmentService(base *BaseService, clock Clock) EquipmentServiceInterface {
	return &equipmentService{BaseService: base, clock: clock}
}

func (s *equipmentService) reload(ctx context.Context) error {
	_, err := load(ctx, s.BaseService, s.api.ListEquipment, s.store.ReplaceEquipment, "Failed to load equipment")
	return err
}

// Page - загрузка страницы: оборудование и бригады для выбора в форме.
func (s *equipmentService) Page(ctx context.Context) (*dto.EquipmentPageDTO, error) {
	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	if _, err := load(ctx, s.BaseService, s.api.ListTeams, s.store.ReplaceTeams, "Failed to load teams"); err != nil {
		return nil, err
	}
	return s.view(), nil
}

func (s *equipmentService) view() *dto.EquipmentPageDTO {
	teams := s.store.Teams()
	teamNames := make(map[string]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}

	items := s.store.Equipment()
	rows := make([]dto.EquipmentRowDTO, 0, len(items))
	for _, e := range items {
		row := dto.EquipmentRowDTO{Equipment: e}
		if e.TeamID.Valid {
			row.TeamName = teamNames[e.TeamID.String]
		}
		rows = append(rows, row)
	}

	s.mu.Lock()
	dialog := s.dialog
	s.mu.Unlock()
	return &dto.EquipmentPageDTO{Items: rows, Teams: teams, Dialog: dialog}
}

// OpenDialog: пустой id - создание, иначе редактирование записи из снимка.
func (s *equipmentService) OpenDialog(ctx context.Context, id string) (*dto.EquipmentPageDTO, error) {
	if id == "" {
		s.mu.Lock()
		s.dialog = s.dialog.OpenNew(dto.EquipmentFormDTO{})
		s.mu.Unlock()
		return s.view(), nil
	}
	e, ok := s.store.FindEquipment(id)
	if !ok {
		return nil, apperrors.NewHttpError(http.StatusNotFound, "Equipment not found", apperrors.ErrNotFound, nil)
	}
	s.mu.Lock()
	s.dialog = s.dialog.OpenEdit(id, dto.EquipmentFormFrom(e))
	s.mu.Unlock()
	return s.view(), nil
}

func (s *equipmentService) CloseDialog(ctx context.Context) (*dto.EquipmentPageDTO, error) {
	s.mu.Lock()
	s.dialog = s.dialog.Close()
	s.mu.Unlock()
	return s.view(), nil
}

// Submit создаёт или обновляет запись в зависимости от режима диалога.
// При ошибке диалог остаётся открытым с введёнными данными.
func (s *equipmentService) Submit(ctx context.Context, form dto.EquipmentFormDTO) (*dto.EquipmentPageDTO, error) {
	s.mu.Lock()
	editingID := s.dialog.EditingID
	s.mu.Unlock()

	if dup, ok := s.duplicateSerial(form.SerialNumber, editingID); ok {
		err := fmt.Errorf("%w: серийный номер %q уже у %q", apperrors.ErrConflict, form.SerialNumber, dup.Name)
		return nil, s.keepDialog(ctx, form, "Serial number already exists", err)
	}

	var err error
	if editingID != "" {
		_, err = s.api.UpdateEquipment(ctx, editingID, form)
	} else {
		_, err = s.api.CreateEquipment(ctx, form)
	}
	if err != nil {
		s.logger.Error("Submit: не удалось сохранить оборудование", zap.String("id", editingID), zap.Error(err))
		return nil, s.keepDialog(ctx, form, "Failed to save equipment", err)
	}

	s.mu.Lock()
	s.dialog = s.dialog.Close()
	s.mu.Unlock()

	if editingID != "" {
		s.notifySuccess(ctx, "Equipment updated successfully!")
	} else {
		s.notifySuccess(ctx, "Equipment created successfully!")
	}
	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	return s.view(), nil
}

func (s *equipmentService) keepDialog(ctx context.Context, form dto.EquipmentFormDTO, message string, err error) error {
	s.mu.Lock()
	s.dialog = s.dialog.Failed(form, message)
	s.mu.Unlock()
	return s.writeFailed(ctx, message, err)
}

// duplicateSerial ищет тот же серийный номер в снимке, не считая редактируемую запись.
func (s *equipmentService) duplicateSerial(serial, exceptID string) (entities.Equipment, bool) {
	for _, e := range s.store.Equipment() {
		if e.ID != exceptID && strings.EqualFold(e.SerialNumber, serial) {
			return e, true
		}
	}
	return entities.Equipment{}, false
}

func (s *equipmentService) Delete(ctx context.Context, id string) (*dto.EquipmentPageDTO, error) {
	if err := s.api.DeleteEquipment(ctx, id); err != nil {
		s.logger.Error("Delete: не удалось удалить оборудование", zap.String("id", id), zap.Error(err))
		return nil, s.writeFailed(ctx, "Failed to delete equipment", err)
	}
	s.notifySuccess(ctx, "Equipment deleted successfully!")
	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	return s.view(), nil
}

// History - заявки по одному оборудованию с признаком просрочки и исполнителем.
func (s *equipmentService) History(ctx context.Context, id string) (*dto.EquipmentHistoryDTO, error) {
	e, ok := s.store.FindEquipment(id)
	if !ok {
		return nil, apperrors.NewHttpError(http.StatusNotFound, "Equipment not found", apperrors.ErrNotFound, nil)
	}
	requests, err := s.api.EquipmentRequests(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			return nil, err
		}
		s.notifyFailure(ctx, "Failed to load requests", err)
		requests = []entities.MaintenanceRequest{}
	}
	users, err := load(ctx, s.BaseService, s.api.ListUsers, s.store.ReplaceUsers, "Failed to load users")
	if err != nil {
		return nil, err
	}

	today := s.clock.Today()
	cards := make([]dto.RequestCardDTO, 0, len(requests))
	for _, r := range requests {
		cards = append(cards, dto.RequestCardDTO{
			MaintenanceRequest: r,
			AssigneeName:       maintenance.ResolveName(r.AssignedTo.String, users),
			Overdue:            maintenance.IsOverdue(r, today),
		})
	}
	return &dto.EquipmentHistoryDTO{Equipment: e, Requests: cards}, nil
}
