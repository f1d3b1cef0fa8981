package routes

import (
	"gearguard/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runDashboardRouter(secureGroup *echo.Group, ctrl *controllers.DashboardController) {
	secureGroup.GET("/dashboard", ctrl.GetDashboard)
}

func runEquipmentRouter(secureGroup *echo.Group, ctrl *controllers.EquipmentController) {
	equipment := secureGroup.Group("/equipment")
	equipment.GET("", ctrl.GetPage)
	equipment.POST("", ctrl.Submit)
	equipment.POST("/dialog/open", ctrl.OpenDialog)
	equipment.POST("/dialog/close", ctrl.CloseDialog)
	equipment.DELETE("/:id", ctrl.Delete)
	equipment.GET("/:id/requests", ctrl.History)
}

func runTeamRouter(secureGroup *echo.Group, ctrl *controllers.TeamController) {
	teams := secureGroup.Group("/teams")
	teams.GET("", ctrl.GetPage)
	teams.POST("", ctrl.Submit)
	teams.POST("/dialog/open", ctrl.OpenDialog)
	teams.POST("/dialog/close", ctrl.CloseDialog)
	teams.POST("/dialog/members/:userId", ctrl.ToggleMember)
	teams.DELETE("/:id", ctrl.Delete)
}
