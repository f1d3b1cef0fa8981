package controllers

import (
	"net/http"

	"gearguard/internal/services"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
)

type DashboardController struct {
	SessionResponder
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(ds services.DashboardServiceInterface, responder SessionResponder) *DashboardController {
	return &DashboardController{SessionResponder: responder, dashboardService: ds}
}

func (ctrl *DashboardController) GetDashboard(c echo.Context) error {
	stats, err := ctrl.dashboardService.Stats(c.Request().Context())
	if err != nil {
		return ctrl.fail(c, "GetDashboard", err)
	}
	return utils.SuccessResponse(c, stats, "Dashboard loaded", http.StatusOK)
}
