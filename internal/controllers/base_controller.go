package controllers

import (
	"errors"
	"net/http"

	"gearguard/internal/services"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/middleware"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SessionResponder отвечает ошибкой. 401 от бэкенда означает потерю сессии:
// токен забывается, оболочка получает адрес страницы входа.
type SessionResponder struct {
	auth       services.AuthServiceInterface
	loginRoute string
	logger     *zap.Logger
}

func NewSessionResponder(auth services.AuthServiceInterface, loginRoute string, logger *zap.Logger) SessionResponder {
	return SessionResponder{auth: auth, loginRoute: loginRoute, logger: logger}
}

func (r SessionResponder) fail(c echo.Context, op string, err error) error {
	if errors.Is(err, apperrors.ErrUnauthorized) {
		r.logger.Info(op+": бэкенд отклонил токен, сессия сброшена", zap.Error(err))
		r.auth.Expire(c.Request().Context())
		return utils.ErrorResponse(c, middleware.SessionRequired(r.loginRoute, err), r.logger)
	}
	r.logger.Warn(op+": запрос завершился ошибкой", zap.Error(err))
	return utils.ErrorResponse(c, err, r.logger)
}

type normalizer interface {
	Normalize()
}

// bindForm: разбор тела, нормализация, валидация.
func bindForm(c echo.Context, form interface{}) error {
	if err := c.Bind(form); err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil)
	}
	if n, ok := form.(normalizer); ok {
		n.Normalize()
	}
	return c.Validate(form)
}
