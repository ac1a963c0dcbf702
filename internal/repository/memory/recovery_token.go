package memory

import (
	"context"
	"sync"
	"time"

	"github.com/NikolaySkladnev/car-rent/internal/repository"
)

type recoveryItem struct {
	token     string
	expiresAt time.Time
}

// RecoveryTokenStore - процессный кэш токенов восстановления пароля.
// Записи не вытесняются: TTL проверяет читатель. Карта растет без
// ограничений, для многоинстансного развертывания используется
// redis-вариант (internal/repository/cached).
type RecoveryTokenStore struct {
	mu    sync.RWMutex
	items map[string]recoveryItem
}

func NewRecoveryTokenStore() *RecoveryTokenStore {
	return &RecoveryTokenStore{
		items: make(map[string]recoveryItem),
	}
}

var _ repository.RecoveryTokenStore = (*RecoveryTokenStore)(nil)

// Put сохраняет токен; повторная запись по тому же email
// перезаписывает предыдущий токен
func (s *RecoveryTokenStore) Put(_ context.Context, email, token string, ttlSec int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[email] = recoveryItem{
		token:     token,
		expiresAt: time.Now().Add(time.Duration(ttlSec) * time.Second),
	}
	return nil
}

// Get возвращает действующий токен; истекший считается отсутствующим
func (s *RecoveryTokenStore) Get(_ context.Context, email string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[email]
	if !ok || time.Now().After(item.expiresAt) {
		return "", false, nil
	}
	return item.token, true, nil
}
