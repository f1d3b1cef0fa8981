package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisTokenRepository - долговременное хранение токена в Redis,
// переживает перезапуск консоли так же, как localStorage переживает перезагрузку вкладки.
type RedisTokenRepository struct {
	client *redis.Client
	key    string
}

// NewRedisTokenRepository - конструктор для репозитория.
// Он возвращает объект, который соответствует TokenRepositoryInterface.
func NewRedisTokenRepository(client *redis.Client, key string) TokenRepositoryInterface {
	return &RedisTokenRepository{client: client, key: key}
}

func (r *RedisTokenRepository) Get(ctx context.Context) (string, error) {
	token, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("чтение токена из redis: %w", err)
	}
	return token, nil
}

// Set сохраняет токен без срока жизни: срок знает только сам токен.
func (r *RedisTokenRepository) Set(ctx context.Context, token string) error {
	if err := r.client.Set(ctx, r.key, token, 0).Err(); err != nil {
		return fmt.Errorf("запись токена в redis: %w", err)
	}
	return nil
}

func (r *RedisTokenRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("удаление токена из redis: %w", err)
	}
	return nil
}
