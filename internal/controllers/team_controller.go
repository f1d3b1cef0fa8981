package controllers

import (
	"net/http"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type TeamController struct {
	SessionResponder
	teamService services.TeamServiceInterface
}

func NewTeamController(service services.TeamServiceInterface, responder SessionResponder) *TeamController {
	return &TeamController{SessionResponder: responder, teamService: service}
}

func (c *TeamController) GetPage(ctx echo.Context) error {
	page, err := c.teamService.Page(ctx.Request().Context())
	if err != nil {
		return c.fail(ctx, "GetPage", err)
	}
	return utils.SuccessResponse(ctx, page, "Teams loaded", http.StatusOK)
}

func (c *TeamController) OpenDialog(ctx echo.Context) error {
	page, err := c.teamService.OpenDialog(ctx.Request().Context(), ctx.QueryParam("id"))
	if err != nil {
		return c.fail(ctx, "OpenDialog", err)
	}
	return utils.SuccessResponse(ctx, page, "Dialog opened", http.StatusOK)
}

func (c *TeamController) CloseDialog(ctx echo.Context) error {
	page, err := c.teamService.CloseDialog(ctx.Request().Context())
	if err != nil {
		return c.fail(ctx, "CloseDialog", err)
	}
	return utils.SuccessResponse(ctx, page, "Dialog closed", http.StatusOK)
}

func (c *TeamController) ToggleMember(ctx echo.Context) error {
	page, err := c.teamService.ToggleMember(ctx.Request().Context(), ctx.Param("userId"))
	if err != nil {
		return c.fail(ctx, "ToggleMember", err)
	}
	return utils.SuccessResponse(ctx, page, "Members updated", http.StatusOK)
}

func (c *TeamController) Submit(ctx echo.Context) error {
	var form dto.TeamFormDTO
	if err := bindForm(ctx, &form); err != nil {
		c.logger.Warn("Submit: форма бригады не прошла проверку", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	page, err := c.teamService.Submit(ctx.Request().Context(), form)
	if err != nil {
		return c.fail(ctx, "Submit", err)
	}
	return utils.SuccessResponse(ctx, page, "Team saved", http.StatusOK)
}

func (c *TeamController) Delete(ctx echo.Context) error {
	page, err := c.teamService.Delete(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return c.fail(ctx, "Delete", err)
	}
	return utils.SuccessResponse(ctx, page, "Team deleted", http.StatusOK)
}
