package controllers

import (
	"net/http"

	"gearguard/internal/services"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
)

type NotificationController struct {
	SessionResponder
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(service services.NotificationServiceInterface, responder SessionResponder) *NotificationController {
	return &NotificationController{SessionResponder: responder, notificationService: service}
}

// Drain - опрос для оболочки без WebSocket: накопленные уведомления и очистка очереди.
func (c *NotificationController) Drain(ctx echo.Context) error {
	return utils.SuccessResponse(ctx, c.notificationService.Drain(), "Notifications", http.StatusOK)
}

func (c *NotificationController) Inbox(ctx echo.Context) error {
	inbox, err := c.notificationService.Inbox(ctx.Request().Context())
	if err != nil {
		return c.fail(ctx, "Inbox", err)
	}
	return utils.SuccessResponse(ctx, inbox, "Inbox loaded", http.StatusOK)
}

func (c *NotificationController) MarkRead(ctx echo.Context) error {
	inbox, err := c.notificationService.MarkRead(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return c.fail(ctx, "MarkRead", err)
	}
	return utils.SuccessResponse(ctx, inbox, "Notification marked as read", http.StatusOK)
}
