package cached

import (
	"context"
	"errors"
	"time"

	"github.com/NikolaySkladnev/car-rent/internal/pkg/redis"
	"github.com/NikolaySkladnev/car-rent/internal/repository"
	redisv9 "github.com/redis/go-redis/v9"
)

const recoveryKeyPrefix = "recovery:"

// RecoveryTokenStore хранит токены восстановления пароля в Redis.
// В отличие от процессной карты переживает рестарт и разделяется
// всеми инстансами; TTL вытесняет записи на стороне Redis.
type RecoveryTokenStore struct {
	cache *redis.Client
}

func NewRecoveryTokenStore(cache *redis.Client) *RecoveryTokenStore {
	return &RecoveryTokenStore{cache: cache}
}

var _ repository.RecoveryTokenStore = (*RecoveryTokenStore)(nil)

// Put сохраняет токен с TTL; SET перезаписывает предыдущее значение
func (s *RecoveryTokenStore) Put(ctx context.Context, email, token string, ttlSec int) error {
	key := recoveryKeyPrefix + email
	return s.cache.Set(ctx, key, token, time.Duration(ttlSec)*time.Second)
}

// Get возвращает действующий токен; истекший ключ Redis уже удалил
func (s *RecoveryTokenStore) Get(ctx context.Context, email string) (string, bool, error) {
	key := recoveryKeyPrefix + email

	token, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redisv9.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return token, true, nil
}
