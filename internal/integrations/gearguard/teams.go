package gearguard

import (
	"context"
	"net/http"
	"net/url"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
)

func (c *Client) ListTeams(ctx context.Context) ([]entities.Team, error) {
	return call[[]entities.Team](ctx, c, http.MethodGet, "/teams", nil)
}

func (c *Client) CreateTeam(ctx context.Context, in dto.TeamFormDTO) (*entities.Team, error) {
	res, err := call[entities.Team](ctx, c, http.MethodPost, "/teams", in)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateTeam(ctx context.Context, id string, in dto.TeamFormDTO) (*entities.Team, error) {
	res, err := call[entities.Team](ctx, c, http.MethodPut, "/teams/"+url.PathEscape(id), in)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteTeam(ctx context.Context, id string) error {
	_, err := call[messageResponse](ctx, c, http.MethodDelete, "/teams/"+url.PathEscape(id), nil)
	return err
}

func (c *Client) ListUsers(ctx context.Context) ([]entities.User, error) {
	return call[[]entities.User](ctx, c, http.MethodGet, "/users", nil)
}
