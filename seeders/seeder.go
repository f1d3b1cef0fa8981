package seeders

import (
	"context"
	"errors"
	"fmt"

	"gearguard/internal/dto"
	"gearguard/internal/integrations/gearguard"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"go.uber.org/zap"
)

// Seeder наполняет свежий бэкенд демо-данными через тот же REST-клиент, что и консоль.
// Каждая неудачная запись логируется и пропускается, шаги можно запускать по отдельности:
// недостающие ID подтягиваются из списков бэкенда.
type Seeder struct {
	api    gearguard.API
	tokens repositories.TokenRepositoryInterface
	logger *zap.Logger

	userIDs      map[string]string
	teamIDs      map[string]string
	equipmentIDs map[string]string
}

// Stats - сколько записей создано на каждом шаге.
type Stats struct {
	Users     int
	Teams     int
	Equipment int
	Requests  int
}

func New(api gearguard.API, tokens repositories.TokenRepositoryInterface, logger *zap.Logger) *Seeder {
	return &Seeder{
		api:          api,
		tokens:       tokens,
		logger:       logger,
		userIDs:      make(map[string]string),
		teamIDs:      make(map[string]string),
		equipmentIDs: make(map[string]string),
	}
}

// SeedUsers регистрирует демо-пользователей. Уже существующий email не ошибка:
// пользователь входит под своим паролем.
func (s *Seeder) SeedUsers(ctx context.Context) (int, error) {
	s.logger.Info("▶️  1. Создание пользователей...")
	created := 0
	for _, u := range usersData {
		res, err := s.api.Register(ctx, dto.RegisterDTO{Name: u.Name, Email: u.Email, Password: u.Password, Role: u.Role})
		if errors.Is(err, apperrors.ErrBadRequest) || errors.Is(err, apperrors.ErrConflict) {
			s.logger.Info("   Пользователь уже есть, выполняем вход", zap.String("email", u.Email))
			res, err = s.api.Login(ctx, dto.LoginDTO{Email: u.Email, Password: u.Password})
		} else if err == nil {
			created++
		}
		if err != nil {
			s.logger.Warn("   ✗ Не удалось создать пользователя", zap.String("name", u.Name), zap.Error(err))
			continue
		}

		s.userIDs[u.Email] = res.User.ID
		if u.Email == adminEmail {
			if err := s.tokens.Set(ctx, res.Token); err != nil {
				return created, fmt.Errorf("сохранение токена администратора: %w", err)
			}
		}
		s.logger.Info("   ✓ Пользователь готов", zap.String("name", u.Name), zap.String("id", res.User.ID))
	}
	if len(s.userIDs) == 0 {
		return created, errors.New("не создано ни одного пользователя")
	}
	return created, nil
}

// ensureAdmin входит администратором, если шаг пользователей не запускался.
func (s *Seeder) ensureAdmin(ctx context.Context) error {
	token, err := s.tokens.Get(ctx)
	if err != nil {
		return err
	}
	if token != "" {
		return nil
	}
	for _, u := range usersData {
		if u.Email != adminEmail {
			continue
		}
		res, err := s.api.Login(ctx, dto.LoginDTO{Email: u.Email, Password: u.Password})
		if err != nil {
			return fmt.Errorf("вход администратора: %w", err)
		}
		return s.tokens.Set(ctx, res.Token)
	}
	return nil
}

func (s *Seeder) SeedTeams(ctx context.Context) (int, error) {
	s.logger.Info("▶️  2. Создание бригад...")
	if err := s.ensureAdmin(ctx); err != nil {
		return 0, err
	}
	if len(s.userIDs) == 0 {
		users, err := s.api.ListUsers(ctx)
		if err != nil {
			return 0, fmt.Errorf("список пользователей: %w", err)
		}
		for _, u := range users {
			s.userIDs[u.Email] = u.ID
		}
	}

	created := 0
	for _, t := range teamsData {
		members := make([]string, 0, len(t.MemberEmails))
		for _, email := range t.MemberEmails {
			if id, ok := s.userIDs[email]; ok {
				members = append(members, id)
			}
		}
		team, err := s.api.CreateTeam(ctx, dto.TeamFormDTO{
			Name:        t.Name,
			Description: utils.NullString(t.Description),
			MemberIDs:   members,
		})
		if err != nil {
			s.logger.Warn("   ✗ Не удалось создать бригаду", zap.String("name", t.Name), zap.Error(err))
			continue
		}
		s.teamIDs[t.Name] = team.ID
		created++
		s.logger.Info("   ✓ Бригада создана", zap.String("name", t.Name), zap.Int("members", len(members)))
	}
	return created, nil
}

func (s *Seeder) SeedEquipment(ctx context.Context) (int, error) {
	s.logger.Info("▶️  3. Создание оборудования...")
	if err := s.ensureAdmin(ctx); err != nil {
		return 0, err
	}
	if len(s.teamIDs) == 0 {
		teams, err := s.api.ListTeams(ctx)
		if err != nil {
			return 0, fmt.Errorf("список бригад: %w", err)
		}
		for _, t := range teams {
			s.teamIDs[t.Name] = t.ID
		}
	}

	created := 0
	for _, e := range equipmentData {
		form := dto.EquipmentFormDTO{
			Name:             e.Name,
			SerialNumber:     e.SerialNumber,
			Category:         e.Category,
			Department:       utils.NullString(e.Department),
			AssignedEmployee: utils.NullString(e.AssignedEmployee),
			TeamID:           utils.NullString(s.teamIDs[e.TeamName]),
			Location:         utils.NullString(e.Location),
			PurchaseDate:     utils.NullString(e.PurchaseDate),
			WarrantyExpiry:   utils.NullString(e.WarrantyExpiry),
		}
		item, err := s.api.CreateEquipment(ctx, form)
		if err != nil {
			s.logger.Warn("   ✗ Не удалось создать оборудование", zap.String("name", e.Name), zap.Error(err))
			continue
		}
		s.equipmentIDs[e.Name] = item.ID
		created++
		s.logger.Info("   ✓ Оборудование создано", zap.String("name", e.Name))
	}
	return created, nil
}

func (s *Seeder) SeedRequests(ctx context.Context) (int, error) {
	s.logger.Info("▶️  4. Создание заявок на обслуживание...")
	if err := s.ensureAdmin(ctx); err != nil {
		return 0, err
	}
	if len(s.equipmentIDs) == 0 {
		items, err := s.api.ListEquipment(ctx)
		if err != nil {
			return 0, fmt.Errorf("список оборудования: %w", err)
		}
		for _, e := range items {
			s.equipmentIDs[e.Name] = e.ID
		}
	}

	created := 0
	for _, r := range requestsData {
		equipmentID, ok := s.equipmentIDs[r.EquipmentName]
		if !ok {
			s.logger.Warn("   ✗ Оборудование не найдено, заявка пропущена",
				zap.String("subject", r.Subject), zap.String("equipment", r.EquipmentName))
			continue
		}
		form := dto.RequestFormDTO{
			Subject:       r.Subject,
			Description:   utils.NullString(r.Description),
			EquipmentID:   equipmentID,
			RequestType:   r.RequestType,
			ScheduledDate: utils.NullString(r.ScheduledDate),
		}
		form.Normalize()
		if _, err := s.api.CreateRequest(ctx, form); err != nil {
			s.logger.Warn("   ✗ Не удалось создать заявку", zap.String("subject", r.Subject), zap.Error(err))
			continue
		}
		created++
		s.logger.Info("   ✓ Заявка создана", zap.String("subject", r.Subject))
	}
	return created, nil
}

// SeedAll - все шаги по порядку.
func (s *Seeder) SeedAll(ctx context.Context) (Stats, error) {
	var stats Stats
	var err error
	if stats.Users, err = s.SeedUsers(ctx); err != nil {
		return stats, err
	}
	if stats.Teams, err = s.SeedTeams(ctx); err != nil {
		return stats, err
	}
	if stats.Equipment, err = s.SeedEquipment(ctx); err != nil {
		return stats, err
	}
	if stats.Requests, err = s.SeedRequests(ctx); err != nil {
		return stats, err
	}
	return stats, nil
}
