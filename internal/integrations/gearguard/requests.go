package gearguard

import (
	"context"
	"net/http"
	"net/url"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/maintenance"
)

func (c *Client) ListRequests(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	return call[[]entities.MaintenanceRequest](ctx, c, http.MethodGet, "/requests", nil)
}

func (c *Client) CreateRequest(ctx context.Context, in dto.RequestFormDTO) (*entities.MaintenanceRequest, error) {
	res, err := call[entities.MaintenanceRequest](ctx, c, http.MethodPost, "/requests", in)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateRequestStage шлёт частичное обновление {"stage": ...}.
func (c *Client) UpdateRequestStage(ctx context.Context, patch maintenance.StagePatch) (*entities.MaintenanceRequest, error) {
	return c.patchRequest(ctx, patch.RequestID, patch)
}

// UpdateRequestAssignee шлёт {"assigned_to": id} или {"assigned_to": null}.
func (c *Client) UpdateRequestAssignee(ctx context.Context, id string, patch maintenance.AssignmentPatch) (*entities.MaintenanceRequest, error) {
	return c.patchRequest(ctx, id, patch)
}

func (c *Client) patchRequest(ctx context.Context, id string, patch interface{}) (*entities.MaintenanceRequest, error) {
	res, err := call[entities.MaintenanceRequest](ctx, c, http.MethodPut, "/requests/"+url.PathEscape(id), patch)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
