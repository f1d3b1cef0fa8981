package repositories

import (
	"context"
	"sync"
)

// MemoryTokenRepository держит токен в памяти процесса. Используется сидером
// и когда Redis не настроен.
type MemoryTokenRepository struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryTokenRepository() *MemoryTokenRepository {
	return &MemoryTokenRepository{}
}

func (r *MemoryTokenRepository) Get(_ context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.token, nil
}

func (r *MemoryTokenRepository) Set(_ context.Context, token string) error {
	r.mu.Lock()
	r.token = token
	r.mu.Unlock()
	return nil
}

func (r *MemoryTokenRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	r.token = ""
	r.mu.Unlock()
	return nil
}
