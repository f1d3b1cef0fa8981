package services

import (
	"context"
	"net/http"
	"sync"

	"gearguard/internal/dto"
	"gearguard/internal/maintenance"
	"gearguard/internal/uistate"
	apperrors "gearguard/pkg/errors"

	"go.uber.org/zap"
)

type TeamServiceInterface interface {
	Page(ctx context.Context) (*dto.TeamPageDTO, error)
	OpenDialog(ctx context.Context, id string) (*dto.TeamPageDTO, error)
	CloseDialog(ctx context.Context) (*dto.TeamPageDTO, error)
	ToggleMember(ctx context.Context, userID string) (*dto.TeamPageDTO, error)
	Submit(ctx context.Context, form dto.TeamFormDTO) (*dto.TeamPageDTO, error)
	Delete(ctx context.Context, id string) (*dto.TeamPageDTO, error)
}

type teamService struct {
	*BaseService

	mu     sync.Mutex
	dialog uistate.Dialog[dto.TeamFormDTO]
}

func NewTeamService(base *BaseService) TeamServiceInterface {
	return &teamService{BaseService: base}
}

func (s *teamService) reload(ctx context.Context) error {
	_, err := load(ctx, s.BaseService, s.api.ListTeams, s.store.ReplaceTeams, "Failed to load teams")
	return err
}

func (s *teamService) Page(ctx context.Context) (*dto.TeamPageDTO, error) {
	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	if _, err := load(ctx, s.BaseService, s.api.ListUsers, s.store.ReplaceUsers, "Failed to load users"); err != nil {
		return nil, err
	}
	return s.view(), nil
}

// view разрешает участников бригад; висячие ссылки на пользователей молча пропадают.
func (s *teamService) view() *dto.TeamPageDTO {
	users := s.store.Users()
	teams := s.store.Teams()
	cards := make([]dto.TeamCardDTO, 0, len(teams))
	for _, t := range teams {
		cards = append(cards, dto.TeamCardDTO{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Members:     maintenance.ResolveMembers(t.MemberIDs, users),
		})
	}

	s.mu.Lock()
	dialog := s.dialog
	s.mu.Unlock()
	return &dto.TeamPageDTO{Items: cards, Users: users, Dialog: dialog}
}

func (s *teamService) OpenDialog(ctx context.Context, id string) (*dto.TeamPageDTO, error) {
	if id == "" {
		s.mu.Lock()
		s.dialog = s.dialog.OpenNew(dto.TeamFormDTO{MemberIDs: []string{}})
		s.mu.Unlock()
		return s.view(), nil
	}
	team, ok := s.store.FindTeam(id)
	if !ok {
		return nil, apperrors.NewHttpError(http.StatusNotFound, "Team not found", apperrors.ErrNotFound, nil)
	}
	s.mu.Lock()
	s.dialog = s.dialog.OpenEdit(id, dto.TeamFormFrom(team))
	s.mu.Unlock()
	return s.view(), nil
}

func (s *teamService) CloseDialog(ctx context.Context) (*dto.TeamPageDTO, error) {
	s.mu.Lock()
	s.dialog = s.dialog.Close()
	s.mu.Unlock()
	return s.view(), nil
}

// ToggleMember отмечает или снимает пользователя в форме открытого диалога.
func (s *teamService) ToggleMember(ctx context.Context, userID string) (*dto.TeamPageDTO, error) {
	s.mu.Lock()
	if !s.dialog.Open {
		s.mu.Unlock()
		return nil, apperrors.NewBadRequestError("Team dialog is not open")
	}
	form := s.dialog.Form
	form.MemberIDs = uistate.ToggleID(form.MemberIDs, userID)
	s.dialog = s.dialog.Update(form)
	s.mu.Unlock()
	return s.view(), nil
}

// Submit сохраняет форму. Если оболочка не прислала member_ids, в бэкенд уходят
// участники, отмеченные через ToggleMember.
func (s *teamService) Submit(ctx context.Context, form dto.TeamFormDTO) (*dto.TeamPageDTO, error) {
	s.mu.Lock()
	editingID := s.dialog.EditingID
	if form.MemberIDs == nil && s.dialog.Open {
		form.MemberIDs = append([]string{}, s.dialog.Form.MemberIDs...)
	}
	s.mu.Unlock()
	if form.MemberIDs == nil {
		form.MemberIDs = []string{}
	}

	var err error
	if editingID != "" {
		_, err = s.api.UpdateTeam(ctx, editingID, form)
	} else {
		_, err = s.api.CreateTeam(ctx, form)
	}
	if err != nil {
		s.logger.Error("Submit: не удалось сохранить бригаду", zap.String("id", editingID), zap.Error(err))
		s.mu.Lock()
		s.dialog = s.dialog.Failed(form, "Failed to save team")
		s.mu.Unlock()
		return nil, s.writeFailed(ctx, "Failed to save team", err)
	}

	s.mu.Lock()
	s.dialog = s.dialog.Close()
	s.mu.Unlock()

	if editingID != "" {
		s.notifySuccess(ctx, "Team updated successfully!")
	} else {
		s.notifySuccess(ctx, "Team created successfully!")
	}
	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	return s.view(), nil
}

func (s *teamService) Delete(ctx context.Context, id string) (*dto.TeamPageDTO, error) {
	if err := s.api.DeleteTeam(ctx, id); err != nil {
		s.logger.Error("Delete: не удалось удалить бригаду", zap.String("id", id), zap.Error(err))
		return nil, s.writeFailed(ctx, "Failed to delete team", err)
	}
	s.notifySuccess(ctx, "Team deleted successfully!")
	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	return s.view(), nil
}
