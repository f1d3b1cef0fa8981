package controllers

import (
	"fmt"
	"net/http"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CalendarController struct {
	SessionResponder
	calendarService services.CalendarServiceInterface
}

func NewCalendarController(service services.CalendarServiceInterface, responder SessionResponder) *CalendarController {
	return &CalendarController{SessionResponder: responder, calendarService: service}
}

func (c *CalendarController) respond(ctx echo.Context, op string, cal *dto.CalendarDTO, err error) error {
	if err != nil {
		return c.fail(ctx, op, err)
	}
	return utils.SuccessResponse(ctx, cal, cal.Grid.Title, http.StatusOK)
}

// GetMonth: ?year=&month= переключает показанный месяц, без них - остаётся текущий.
func (c *CalendarController) GetMonth(ctx echo.Context) error {
	var query dto.CalendarQueryDTO
	if err := bindForm(ctx, &query); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	cal, err := c.calendarService.Month(ctx.Request().Context(), query.Year, query.Month)
	return c.respond(ctx, "GetMonth", cal, err)
}

func (c *CalendarController) Prev(ctx echo.Context) error {
	cal, err := c.calendarService.Prev(ctx.Request().Context())
	return c.respond(ctx, "Prev", cal, err)
}

func (c *CalendarController) Next(ctx echo.Context) error {
	cal, err := c.calendarService.Next(ctx.Request().Context())
	return c.respond(ctx, "Next", cal, err)
}

func (c *CalendarController) Today(ctx echo.Context) error {
	cal, err := c.calendarService.Today(ctx.Request().Context())
	return c.respond(ctx, "Today", cal, err)
}

func (c *CalendarController) ExportICS(ctx echo.Context) error {
	body, ym, err := c.calendarService.ExportICS(ctx.Request().Context())
	if err != nil {
		return c.fail(ctx, "ExportICS", err)
	}
	fileName := fmt.Sprintf("gearguard_%04d-%02d.ics", ym.Year, int(ym.Month))
	c.logger.Debug("ExportICS: отдаём файл календаря", zap.String("file", fileName))
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	return ctx.Blob(http.StatusOK, "text/calendar; charset=utf-8", body)
}
