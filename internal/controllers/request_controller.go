package controllers

import (
	"net/http"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type RequestController struct {
	SessionResponder
	requestService services.RequestServiceInterface
}

func NewRequestController(service services.RequestServiceInterface, responder SessionResponder) *RequestController {
	return &RequestController{SessionResponder: responder, requestService: service}
}

func (c *RequestController) respond(ctx echo.Context, op string, board *dto.BoardDTO, err error) error {
	if err != nil {
		return c.fail(ctx, op, err)
	}
	return utils.SuccessResponse(ctx, board, "Board updated", http.StatusOK)
}

func (c *RequestController) GetBoard(ctx echo.Context) error {
	board, err := c.requestService.Board(ctx.Request().Context())
	return c.respond(ctx, "GetBoard", board, err)
}

func (c *RequestController) OpenDialog(ctx echo.Context) error {
	board, err := c.requestService.OpenDialog(ctx.Request().Context())
	return c.respond(ctx, "OpenDialog", board, err)
}

func (c *RequestController) CloseDialog(ctx echo.Context) error {
	board, err := c.requestService.CloseDialog(ctx.Request().Context())
	return c.respond(ctx, "CloseDialog", board, err)
}

func (c *RequestController) Create(ctx echo.Context) error {
	var form dto.RequestFormDTO
	if err := bindForm(ctx, &form); err != nil {
		c.logger.Warn("Create: форма заявки не прошла проверку", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	board, err := c.requestService.Create(ctx.Request().Context(), form)
	return c.respond(ctx, "Create", board, err)
}

func (c *RequestController) ChangeStage(ctx echo.Context) error {
	var payload dto.StageChangeDTO
	if err := bindForm(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	board, err := c.requestService.MoveRequest(ctx.Request().Context(), ctx.Param("id"), payload.Stage)
	return c.respond(ctx, "ChangeStage", board, err)
}

func (c *RequestController) Assign(ctx echo.Context) error {
	var payload dto.AssigneeDTO
	if err := bindForm(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	board, err := c.requestService.Assign(ctx.Request().Context(), ctx.Param("id"), payload.UserID)
	return c.respond(ctx, "Assign", board, err)
}

// --- перетаскивание карточек ---

func (c *RequestController) BeginDrag(ctx echo.Context) error {
	var payload dto.DragBeginDTO
	if err := bindForm(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	board, err := c.requestService.BeginDrag(ctx.Request().Context(), payload.RequestID)
	return c.respond(ctx, "BeginDrag", board, err)
}

func (c *RequestController) DragOver(ctx echo.Context) error {
	var payload dto.DragTargetDTO
	if err := bindForm(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	board, err := c.requestService.DragOver(ctx.Request().Context(), payload.Stage)
	return c.respond(ctx, "DragOver", board, err)
}

func (c *RequestController) CommitDrop(ctx echo.Context) error {
	var payload dto.DragTargetDTO
	if err := bindForm(ctx, &payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	board, err := c.requestService.CommitDrop(ctx.Request().Context(), payload.Stage)
	return c.respond(ctx, "CommitDrop", board, err)
}

func (c *RequestController) CancelDrag(ctx echo.Context) error {
	board, err := c.requestService.CancelDrag(ctx.Request().Context())
	return c.respond(ctx, "CancelDrag", board, err)
}
