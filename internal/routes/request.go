package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runRequestRouter(secureGroup *echo.Group, ctrl *controllers.RequestController) {
	requests := secureGroup.Group("/requests")
	requests.GET("", ctrl.GetBoard)
	requests.POST("", ctrl.Create)
	requests.POST("/dialog/open", ctrl.OpenDialog)
	requests.POST("/dialog/close", ctrl.CloseDialog)
	requests.PUT("/:id/stage", ctrl.ChangeStage)
	requests.PUT("/:id/assignee", ctrl.Assign)

	drag := requests.Group("/drag")
	drag.POST("/begin", ctrl.BeginDrag)
	drag.POST("/over", ctrl.DragOver)
	drag.POST("/commit", ctrl.CommitDrop)
	drag.POST("/cancel", ctrl.CancelDrag)
}

func runCalendarRouter(secureGroup *echo.Group, ctrl *controllers.CalendarController) {
	calendar := secureGroup.Group("/calendar")
	calendar.GET("", ctrl.GetMonth)
	calendar.POST("/prev", ctrl.Prev)
	calendar.POST("/next", ctrl.Next)
	calendar.POST("/today", ctrl.Today)
	calendar.GET("/export.ics", ctrl.ExportICS)
}
