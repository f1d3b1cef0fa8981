package gearguard

import (
	"context"
	"net/http"
	"net/url"

	"gearguard/internal/entities"
)

func (c *Client) DashboardStats(ctx context.Context) (*entities.DashboardStats, error) {
	res, err := call[entities.DashboardStats](ctx, c, http.MethodGet, "/dashboard/stats", nil)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ListNotifications(ctx context.Context) ([]entities.Notification, error) {
	return call[[]entities.Notification](ctx, c, http.MethodGet, "/notifications", nil)
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	_, err := call[messageResponse](ctx, c, http.MethodPut, "/notifications/"+url.PathEscape(id)+"/read", nil)
	return err
}
