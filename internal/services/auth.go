package services

import (
	"context"
	"errors"
	"net/http"

	"gearguard/internal/dto"
	"gearguard/internal/integrations/gearguard"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/service"

	"go.uber.org/zap"
)

const authFallbackMessage = "An error occurred"

type AuthServiceInterface interface {
	Login(ctx context.Context, in dto.LoginDTO) (*dto.SessionDTO, error)
	Register(ctx context.Context, in dto.RegisterDTO) (*dto.SessionDTO, error)
	Logout(ctx context.Context) error
	CheckSession(ctx context.Context) (*dto.SessionDTO, error)
	// HasUsableToken - локальная проверка без сети: токен есть и не истёк.
	HasUsableToken(ctx context.Context) (bool, error)
	// Expire забывает токен после 401 от бэкенда.
	Expire(ctx context.Context)
}

type authService struct {
	*BaseService
	tokens     repositories.TokenRepositoryInterface
	inspector  service.TokenInspector
	loginRoute string
}

func NewAuthService(
	base *BaseService,
	tokens repositories.TokenRepositoryInterface,
	inspector service.TokenInspector,
	loginRoute string,
) AuthServiceInterface {
	return &authService{
		BaseService: base,
		tokens:      tokens,
		inspector:   inspector,
		loginRoute:  loginRoute,
	}
}

func (s *authService) Login(ctx context.Context, in dto.LoginDTO) (*dto.SessionDTO, error) {
	res, err := s.api.Login(ctx, in)
	if err != nil {
		return nil, s.authFailed(ctx, "Login", err)
	}
	return s.startSession(ctx, res, "Logged in successfully!")
}

func (s *authService) Register(ctx context.Context, in dto.RegisterDTO) (*dto.SessionDTO, error) {
	res, err := s.api.Register(ctx, in)
	if err != nil {
		return nil, s.authFailed(ctx, "Register", err)
	}
	return s.startSession(ctx, res, "Account created successfully!")
}

func (s *authService) startSession(ctx context.Context, res *dto.AuthResponseDTO, message string) (*dto.SessionDTO, error) {
	if res.Token == "" {
		return nil, s.authFailed(ctx, "startSession", apperrors.ErrInvalidToken)
	}
	if err := s.tokens.Set(ctx, res.Token); err != nil {
		s.logger.Error("startSession: не удалось сохранить токен", zap.Error(err))
		return nil, apperrors.NewHttpError(http.StatusInternalServerError, authFallbackMessage, err, nil)
	}
	// снимки прошлой сессии другому пользователю не показываем
	s.store.Reset()
	s.logger.Info("Сессия начата", zap.String("userID", res.User.ID), zap.String("email", res.User.Email))
	s.notifySuccess(ctx, message)
	user := res.User
	return &dto.SessionDTO{Authenticated: true, User: &user}, nil
}

// authFailed показывает причину от сервера, если она есть, иначе общий текст.
func (s *authService) authFailed(ctx context.Context, op string, err error) error {
	message := authFallbackMessage
	if detail, ok := gearguard.Detail(err); ok {
		message = detail
	}
	s.logger.Warn(op+": ошибка входа", zap.Error(err))
	s.notifyFailure(ctx, message, err)

	code := apperrors.StatusCode(err)
	if code >= http.StatusInternalServerError {
		code = http.StatusBadGateway
	}
	return apperrors.NewHttpError(code, message, err, nil)
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.tokens.Clear(ctx); err != nil {
		s.logger.Error("Logout: не удалось удалить токен", zap.Error(err))
		return err
	}
	s.store.Reset()
	s.logger.Info("Сессия завершена")
	return nil
}

func (s *authService) HasUsableToken(ctx context.Context) (bool, error) {
	token, err := s.tokens.Get(ctx)
	if err != nil {
		return false, err
	}
	if token == "" {
		return false, nil
	}
	if s.inspector.IsExpired(token) {
		s.logger.Info("Токен истёк, сессия сброшена без обращения к бэкенду")
		s.Expire(ctx)
		return false, nil
	}
	return true, nil
}

func (s *authService) Expire(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.logger.Error("Expire: не удалось удалить токен", zap.Error(err))
	}
	s.store.Reset()
}

// CheckSession: нет токена или он истёк локально - вход без сетевого вызова;
// иначе /auth/me, и 401 от него сбрасывает токен.
func (s *authService) CheckSession(ctx context.Context) (*dto.SessionDTO, error) {
	usable, err := s.HasUsableToken(ctx)
	if err != nil {
		return nil, err
	}
	if !usable {
		return s.signedOut(), nil
	}

	user, err := s.api.Me(ctx)
	if errors.Is(err, apperrors.ErrUnauthorized) {
		s.logger.Info("CheckSession: бэкенд отклонил токен")
		s.Expire(ctx)
		return s.signedOut(), nil
	}
	if err != nil {
		s.logger.Warn("CheckSession: бэкенд недоступен", zap.Error(err))
		return nil, apperrors.NewHttpError(http.StatusBadGateway, "Failed to check session", err, nil)
	}
	return &dto.SessionDTO{Authenticated: true, User: user}, nil
}

func (s *authService) signedOut() *dto.SessionDTO {
	return &dto.SessionDTO{Authenticated: false, Redirect: s.loginRoute}
}
