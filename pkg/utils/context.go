package utils

import (
	"context"

	"gearguard/pkg/contextkeys"
)

// RequestIDFromCtx достаёт идентификатор запроса, проставленный middleware.
func RequestIDFromCtx(ctx context.Context) string {
	if id, ok := ctx.Value(contextkeys.RequestIDKey).(string); ok {
		return id
	}
	return ""
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextkeys.RequestIDKey, id)
}
