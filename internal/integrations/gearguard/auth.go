package gearguard

import (
	"context"
	"net/http"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
)

func (c *Client) Login(ctx context.Context, in dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	res, err := call[dto.AuthResponseDTO](ctx, c, http.MethodPost, "/auth/login", in)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Register(ctx context.Context, in dto.RegisterDTO) (*dto.AuthResponseDTO, error) {
	res, err := call[dto.AuthResponseDTO](ctx, c, http.MethodPost, "/auth/register", in)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Me - проверка сессии. 401 разворачивается в apperrors.ErrUnauthorized.
func (c *Client) Me(ctx context.Context) (*entities.User, error) {
	res, err := call[entities.User](ctx, c, http.MethodGet, "/auth/me", nil)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
