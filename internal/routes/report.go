package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runReportRouter(secureGroup *echo.Group, ctrl *controllers.ReportController) {
	secureGroup.GET("/reports/requests.xlsx", ctrl.RequestsXLSX)
}

func runNotificationRouter(secureGroup *echo.Group, ctrl *controllers.NotificationController, wsCtrl *controllers.WebSocketController) {
	notifications := secureGroup.Group("/notifications")
	notifications.GET("", ctrl.Drain)
	notifications.GET("/inbox", ctrl.Inbox)
	notifications.PUT("/inbox/:id/read", ctrl.MarkRead)

	secureGroup.GET("/ws", wsCtrl.ServeWs)
}
