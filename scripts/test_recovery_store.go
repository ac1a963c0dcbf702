package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/NikolaySkladnev/car-rent/internal/pkg/redis"
	"github.com/NikolaySkladnev/car-rent/internal/repository/cached"
)

func main() {
	fmt.Println("=========================================")
	fmt.Println("Recovery Token Store Test")
	fmt.Println("=========================================")
	fmt.Println()

	// Создаем Redis клиент
	client, err := redis.NewClient(redis.Config{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})
	if err != nil {
		fmt.Printf("❌ Failed to connect to Redis: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	fmt.Println("✅ Connected to Redis")
	fmt.Println()

	ctx := context.Background()
	store := cached.NewRecoveryTokenStore(client)
	testEmail := "smoke-test@car-rent.local"

	// Test 1: PING
	fmt.Println("Test 1: PING")
	if err := client.Ping(ctx); err != nil {
		fmt.Printf("❌ PING failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("✅ PING successful")
	fmt.Println()

	// Test 2: Put/Get
	fmt.Println("Test 2: Put/Get")
	if err := store.Put(ctx, testEmail, "token-one", 60); err != nil {
		fmt.Printf("❌ Put failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Put %s = token-one\n", testEmail)

	token, ok, err := store.Get(ctx, testEmail)
	if err != nil {
		fmt.Printf("❌ Get failed: %v\n", err)
		os.Exit(1)
	}
	if !ok || token != "token-one" {
		fmt.Printf("❌ Get returned wrong token: %q (ok=%v)\n", token, ok)
		os.Exit(1)
	}
	fmt.Printf("✅ Get %s = %s\n", testEmail, token)
	fmt.Println()

	// Test 3: Overwrite
	fmt.Println("Test 3: Overwrite")
	if err := store.Put(ctx, testEmail, "token-two", 60); err != nil {
		fmt.Printf("❌ Put failed: %v\n", err)
		os.Exit(1)
	}

	token, ok, err = store.Get(ctx, testEmail)
	if err != nil {
		fmt.Printf("❌ Get failed: %v\n", err)
		os.Exit(1)
	}
	if !ok || token != "token-two" {
		fmt.Printf("❌ Overwrite failed, got: %q (ok=%v)\n", token, ok)
		os.Exit(1)
	}
	fmt.Println("✅ Second Put replaced the token")
	fmt.Println()

	// Test 4: TTL expiry
	fmt.Println("Test 4: TTL expiry")
	if err := store.Put(ctx, testEmail, "token-short", 1); err != nil {
		fmt.Printf("❌ Put failed: %v\n", err)
		os.Exit(1)
	}

	time.Sleep(1500 * time.Millisecond)

	_, ok, err = store.Get(ctx, testEmail)
	if err != nil {
		fmt.Printf("❌ Get failed: %v\n", err)
		os.Exit(1)
	}
	if ok {
		fmt.Println("❌ Token should have expired but is still readable")
		os.Exit(1)
	}
	fmt.Println("✅ Expired token is gone")
	fmt.Println()

	// Test 5: Missing email
	fmt.Println("Test 5: Missing email")
	_, ok, err = store.Get(ctx, "nobody@car-rent.local")
	if err != nil {
		fmt.Printf("❌ Get failed: %v\n", err)
		os.Exit(1)
	}
	if ok {
		fmt.Println("❌ Got a token for an unknown email")
		os.Exit(1)
	}
	fmt.Println("✅ Unknown email has no token")
	fmt.Println()

	// Cleanup
	if err := client.Del(ctx, "recovery:"+testEmail); err != nil {
		fmt.Printf("❌ DEL failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=========================================")
	fmt.Println("✅ All recovery store tests passed!")
	fmt.Println("=========================================")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
