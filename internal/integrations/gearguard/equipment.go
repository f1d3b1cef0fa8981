package gearguard

import (
	"context"
	"net/http"
	"net/url"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
)

func (c *Client) ListEquipment(ctx context.Context) ([]entities.Equipment, error) {
	return call[[]entities.Equipment](ctx, c, http.MethodGet, "/equipment", nil)
}

func (c *Client) CreateEquipment(ctx context.Context, in dto.EquipmentFormDTO) (*entities.Equipment, error) {
	res, err := call[entities.Equipment](ctx, c, http.MethodPost, "/equipment", in)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateEquipment(ctx context.Context, id string, in dto.EquipmentFormDTO) (*entities.Equipment, error) {
	res, err := call[entities.Equipment](ctx, c, http.MethodPut, "/equipment/"+url.PathEscape(id), in)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteEquipment(ctx context.Context, id string) error {
	_, err := call[messageResponse](ctx, c, http.MethodDelete, "/equipment/"+url.PathEscape(id), nil)
	return err
}

func (c *Client) EquipmentRequests(ctx context.Context, id string) ([]entities.MaintenanceRequest, error) {
	return call[[]entities.MaintenanceRequest](ctx, c, http.MethodGet, "/equipment/"+url.PathEscape(id)+"/requests", nil)
}
