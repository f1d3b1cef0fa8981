package controllers

import (
	"net/http"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	authService services.AuthServiceInterface
	logger      *zap.Logger
}

func NewAuthController(authService services.AuthServiceInterface, logger *zap.Logger) *AuthController {
	return &AuthController{authService: authService, logger: logger}
}

func (ctrl *AuthController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func (ctrl *AuthController) Login(c echo.Context) error {
	var payload dto.LoginDTO
	if err := bindForm(c, &payload); err != nil {
		ctrl.logger.Warn("Login: неверные данные для входа", zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	session, err := ctrl.authService.Login(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Warn("Login: вход не выполнен", zap.String("email", payload.Email), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, session, "Logged in successfully!", http.StatusOK)
}

func (ctrl *AuthController) Register(c echo.Context) error {
	var payload dto.RegisterDTO
	if err := bindForm(c, &payload); err != nil {
		ctrl.logger.Warn("Register: неверные данные регистрации", zap.Error(err))
		return ctrl.errorResponse(c, err)
	}

	session, err := ctrl.authService.Register(c.Request().Context(), payload)
	if err != nil {
		ctrl.logger.Warn("Register: регистрация не выполнена", zap.String("email", payload.Email), zap.Error(err))
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, session, "Account created successfully!", http.StatusCreated)
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	if err := ctrl.authService.Logout(c.Request().Context()); err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, nil, "Logged out", http.StatusOK)
}

// Session - проверка при старте оболочки. Нет сессии - 200 с redirect, не ошибка.
func (ctrl *AuthController) Session(c echo.Context) error {
	session, err := ctrl.authService.CheckSession(c.Request().Context())
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return utils.SuccessResponse(c, session, "Session checked", http.StatusOK)
}
