package controllers

import (
	"net/http"

	"gearguard/internal/dto"
	"gearguard/internal/services"
	"gearguard/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EquipmentController struct {
	SessionResponder
	equipmentService services.EquipmentServiceInterface
}

func NewEquipmentController(service services.EquipmentServiceInterface, responder SessionResponder) *EquipmentController {
	return &EquipmentController{SessionResponder: responder, equipmentService: service}
}

func (c *EquipmentController) GetPage(ctx echo.Context) error {
	page, err := c.equipmentService.Page(ctx.Request().Context())
	if err != nil {
		return c.fail(ctx, "GetPage", err)
	}
	return utils.SuccessResponse(ctx, page, "Equipment loaded", http.StatusOK)
}

// OpenDialog: без ?id= - создание, с ним - редактирование.
func (c *EquipmentController) OpenDialog(ctx echo.Context) error {
	page, err := c.equipmentService.OpenDialog(ctx.Request().Context(), ctx.QueryParam("id"))
	if err != nil {
		return c.fail(ctx, "OpenDialog", err)
	}
	return utils.SuccessResponse(ctx, page, "Dialog opened", http.StatusOK)
}

func (c *EquipmentController) CloseDialog(ctx echo.Context) error {
	page, err := c.equipmentService.CloseDialog(ctx.Request().Context())
	if err != nil {
		return c.fail(ctx, "CloseDialog", err)
	}
	return utils.SuccessResponse(ctx, page, "Dialog closed", http.StatusOK)
}

func (c *EquipmentController) Submit(ctx echo.Context) error {
	var form dto.EquipmentFormDTO
	if err := bindForm(ctx, &form); err != nil {
		c.logger.Warn("Submit: форма оборудования не прошла проверку", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	page, err := c.equipmentService.Submit(ctx.Request().Context(), form)
	if err != nil {
		return c.fail(ctx, "Submit", err)
	}
	return utils.SuccessResponse(ctx, page, "Equipment saved", http.StatusOK)
}

func (c *EquipmentController) Delete(ctx echo.Context) error {
	page, err := c.equipmentService.Delete(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return c.fail(ctx, "Delete", err)
	}
	return utils.SuccessResponse(ctx, page, "Equipment deleted", http.StatusOK)
}

func (c *EquipmentController) History(ctx echo.Context) error {
	history, err := c.equipmentService.History(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return c.fail(ctx, "History", err)
	}
	return utils.SuccessResponse(ctx, history, "Equipment history loaded", http.StatusOK)
}
