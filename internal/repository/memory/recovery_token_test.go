package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecoveryTokenStore_PutGet тестирует запись и чтение токена
func TestRecoveryTokenStore_PutGet(t *testing.T) {
	store := NewRecoveryTokenStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "ivanov@example.com", "token-1", 900))

	token, ok, err := store.Get(ctx, "ivanov@example.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "token-1", token)
}

// TestRecoveryTokenStore_Missing тестирует чтение несуществующего токена
func TestRecoveryTokenStore_Missing(t *testing.T) {
	store := NewRecoveryTokenStore()

	token, ok, err := store.Get(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, token)
}

// TestRecoveryTokenStore_Overwrite тестирует перезапись токена по email
func TestRecoveryTokenStore_Overwrite(t *testing.T) {
	store := NewRecoveryTokenStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "ivanov@example.com", "token-1", 900))
	require.NoError(t, store.Put(ctx, "ivanov@example.com", "token-2", 900))

	token, ok, err := store.Get(ctx, "ivanov@example.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "token-2", token)
}

// TestRecoveryTokenStore_Expired тестирует, что истекший токен не отдается
func TestRecoveryTokenStore_Expired(t *testing.T) {
	store := NewRecoveryTokenStore()
	ctx := context.Background()

	// Нулевой TTL истекает сразу
	require.NoError(t, store.Put(ctx, "ivanov@example.com", "token-1", 0))

	token, ok, err := store.Get(ctx, "ivanov@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, token)

	// Свежая запись по тому же email снова читается
	require.NoError(t, store.Put(ctx, "ivanov@example.com", "token-2", 900))
	token, ok, err = store.Get(ctx, "ivanov@example.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "token-2", token)
}

// TestRecoveryTokenStore_Concurrent тестирует конкурентный доступ
func TestRecoveryTokenStore_Concurrent(t *testing.T) {
	store := NewRecoveryTokenStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		email := fmt.Sprintf("client%d@example.com", i%5)
		go func(email, token string) {
			defer wg.Done()
			_ = store.Put(ctx, email, token, 900)
		}(email, fmt.Sprintf("token-%d", i))
		go func(email string) {
			defer wg.Done()
			_, _, _ = store.Get(ctx, email)
		}(email)
	}
	wg.Wait()

	// После гонки по каждому email лежит какой-то из записанных токенов
	token, ok, err := store.Get(ctx, "client0@example.com")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, token)
}
