package repositories

import "context"

// TokenRepositoryInterface - хранилище bearer-токена текущей сессии.
// Отсутствие токена - не ошибка: Get возвращает пустую строку.
type TokenRepositoryInterface interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
