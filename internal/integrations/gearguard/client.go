// Package gearguard - REST-клиент бэкенда GearGuard (/api).
// Одна попытка на вызов, без повторов; bearer-токен берётся из хранилища
// перед каждым запросом.
package gearguard

import (
	"context"
	"fmt"
	"time"

	"gearguard/pkg/utils"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenSource отдаёт текущий токен сессии, пустая строка - токена нет.
type TokenSource interface {
	Get(ctx context.Context) (string, error)
}

type Client struct {
	http   *resty.Client
	tokens TokenSource
	logger *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:   httpClient,
		tokens: tokens,
		logger: logger.Named("gearguard_client"),
	}
}

// newRequest собирает запрос с токеном и X-Request-ID.
func (c *Client) newRequest(ctx context.Context) (*resty.Request, error) {
	requestID := utils.RequestIDFromCtx(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID)

	if c.tokens != nil {
		token, err := c.tokens.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("не удалось получить токен: %w", err)
		}
		if token != "" {
			req.SetAuthToken(token)
		}
	}
	return req, nil
}

// call выполняет один запрос и декодирует успешный ответ в T.
func call[T any](ctx context.Context, c *Client, method, path string, body interface{}) (T, error) {
	var result T
	req, err := c.newRequest(ctx)
	if err != nil {
		return result, err
	}

	var failure errorBody
	req.SetResult(&result).SetError(&failure)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Warn("Бэкенд недоступен",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return result, fmt.Errorf("gearguard %s %s: %w", method, path, err)
	}

	c.logger.Debug("Вызов бэкенда",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("took", resp.Time()),
	)

	if resp.IsError() {
		return result, &APIError{
			Method: method,
			Path:   path,
			Status: resp.StatusCode(),
			Detail: failure.text(),
		}
	}
	return result, nil
}

// messageResponse - ответ операций без сущности: {"message": "..."}.
type messageResponse struct {
	Message string `json:"message"`
}
