package gearguard

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	apperrors "gearguard/pkg/errors"
)

// APIError - ответ бэкенда со статусом 4xx/5xx.
// Detail - человекочитаемая причина из поля "detail", если она была строкой.
type APIError struct {
	Method string
	Path   string
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("gearguard %s %s: %d %s", e.Method, e.Path, e.Status, e.Detail)
	}
	return fmt.Sprintf("gearguard %s %s: %d", e.Method, e.Path, e.Status)
}

// Unwrap сводит статус к общим ошибкам приложения, чтобы сервисы
// проверяли errors.Is(err, apperrors.ErrUnauthorized), не зная про HTTP.
func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return apperrors.ErrUnauthorized
	case e.Status == http.StatusNotFound:
		return apperrors.ErrNotFound
	case e.Status == http.StatusConflict:
		return apperrors.ErrConflict
	case e.Status == http.StatusBadRequest, e.Status == http.StatusUnprocessableEntity:
		return apperrors.ErrBadRequest
	}
	return apperrors.ErrUpstream
}

// errorBody - тело ошибки FastAPI: detail бывает строкой или списком ошибок валидации.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

func (b errorBody) text() string {
	var s string
	if len(b.Detail) > 0 && json.Unmarshal(b.Detail, &s) == nil {
		return s
	}
	return ""
}

// Detail возвращает серверную причину ошибки, если она есть.
func Detail(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail, true
	}
	return "", false
}
