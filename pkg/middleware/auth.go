package middleware

import (
	"context"
	"net/http"

	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SessionChecker - локальная проверка токена консоли без обращения к бэкенду.
type SessionChecker interface {
	HasUsableToken(ctx context.Context) (bool, error)
}

type AuthMiddleware struct {
	sessions   SessionChecker
	loginRoute string
	logger     *zap.Logger
}

func NewAuthMiddleware(sessions SessionChecker, loginRoute string, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:   sessions,
		loginRoute: loginRoute,
		logger:     logger,
	}
}

// Auth пропускает запрос, только если есть неистёкший токен.
// Иначе 401 и адрес страницы входа в теле ответа.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ok, err := m.sessions.HasUsableToken(c.Request().Context())
		if err != nil {
			m.logger.Error("AuthMiddleware: не удалось прочитать токен", zap.Error(err))
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusInternalServerError, "Session storage unavailable", err, nil), m.logger)
		}
		if !ok {
			m.logger.Debug("AuthMiddleware: нет действующей сессии", zap.String("uri", c.Request().RequestURI))
			return utils.ErrorResponse(c, SessionRequired(m.loginRoute, apperrors.ErrSessionMissing), m.logger)
		}
		return next(c)
	}
}

// SessionRequired - ответ "войдите заново" с адресом перехода.
func SessionRequired(loginRoute string, err error) *apperrors.HttpError {
	return apperrors.NewHttpError(
		http.StatusUnauthorized,
		"Session expired, please log in",
		err,
		map[string]interface{}{"redirect": loginRoute},
	)
}
