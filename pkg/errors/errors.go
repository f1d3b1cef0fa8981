package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// Токен и сессия
	ErrInvalidToken   = fmt.Errorf("недопустимый токен")
	ErrTokenExpired   = fmt.Errorf("срок действия токена истёк")
	ErrTokenNotFound  = fmt.Errorf("токен не найден")
	ErrUnauthorized   = fmt.Errorf("неавторизован")
	ErrSessionMissing = fmt.Errorf("сессия отсутствует")

	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrBadRequest = fmt.Errorf("неверный запрос")
	ErrConflict   = fmt.Errorf("конфликт данных")
	ErrUpstream   = fmt.Errorf("бэкенд GearGuard недоступен")
)

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError - ошибка, которую контроллер отдаёт клиенту.
// Message показывается пользователю, Err остаётся в логах.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

func NewBadRequestError(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, ErrBadRequest, nil)
}

// StatusCode подбирает HTTP-код для произвольной ошибки.
func StatusCode(err error) int {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	var inputErr *InvalidInputError
	switch {
	case errors.As(err, &inputErr):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrInvalidToken), errors.Is(err, ErrSessionMissing):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
