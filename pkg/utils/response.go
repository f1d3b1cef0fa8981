package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "gearguard/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	var response *HttpResponse = &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	}
	return ctx.JSON(code, response)
}

// ErrorResponse превращает ошибку в ответ-конверт. Пользователь видит только
// безопасное сообщение, техническая причина уходит в лог.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := apperrors.StatusCode(err)
	message := "Something went wrong"
	var body interface{}

	var httpErr *apperrors.HttpError
	var inputErr *apperrors.InvalidInputError
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &httpErr):
		message = httpErr.Message
		if len(httpErr.Details) > 0 {
			body = httpErr.Details
		}
	case errors.As(err, &validationErrs):
		code = http.StatusBadRequest
		message = FormatValidationErrors(validationErrs)
	case errors.As(err, &inputErr):
		message = inputErr.Message
	case code != http.StatusInternalServerError:
		message = err.Error()
	}

	if logger != nil && code >= http.StatusInternalServerError {
		logger.Error("ErrorResponse: ответ с ошибкой сервера",
			zap.Int("code", code),
			zap.String("uri", ctx.Request().RequestURI),
			zap.Error(err),
		)
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Body:    body,
		Message: message,
	})
}

// FormatValidationErrors собирает читаемое сообщение из ошибок валидатора.
func FormatValidationErrors(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		parts = append(parts, fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), fe.Tag()))
	}
	return "Validation failed: " + strings.Join(parts, "; ")
}
