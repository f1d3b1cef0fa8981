package controllers

import (
	"fmt"
	"net/http"
	"time"

	"gearguard/internal/services"

	"github.com/labstack/echo/v4"
)

type ReportController struct {
	SessionResponder
	reportService services.ReportServiceInterface
}

func NewReportController(reportService services.ReportServiceInterface, responder SessionResponder) *ReportController {
	return &ReportController{SessionResponder: responder, reportService: reportService}
}

func (c *ReportController) RequestsXLSX(ctx echo.Context) error {
	f, err := c.reportService.RequestsWorkbook(ctx.Request().Context())
	if err != nil {
		return c.fail(ctx, "RequestsXLSX", err)
	}
	defer f.Close()

	fileName := fmt.Sprintf("gearguard_report_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
