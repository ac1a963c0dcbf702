package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	deliveryHTTP "github.com/NikolaySkladnev/car-rent/internal/delivery/http"
	"github.com/NikolaySkladnev/car-rent/internal/pkg/config"
	"github.com/NikolaySkladnev/car-rent/internal/pkg/database"
	"github.com/NikolaySkladnev/car-rent/internal/pkg/jwt"
	"github.com/NikolaySkladnev/car-rent/internal/pkg/logger"
	"github.com/NikolaySkladnev/car-rent/internal/pkg/redis"
	"github.com/NikolaySkladnev/car-rent/internal/repository"
	"github.com/NikolaySkladnev/car-rent/internal/repository/cached"
	"github.com/NikolaySkladnev/car-rent/internal/repository/memory"
	"github.com/NikolaySkladnev/car-rent/internal/repository/postgres"
	"github.com/NikolaySkladnev/car-rent/internal/usecase/auth"
	"github.com/NikolaySkladnev/car-rent/internal/usecase/cars"
	"github.com/NikolaySkladnev/car-rent/internal/usecase/reservations"
)

func main() {
	// =========================================================================
	// Загрузка конфигурации
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// Инициализация logger
	// =========================================================================

	log := logger.New(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.Output)
	log.Info("Starting car-rent API server")

	// =========================================================================
	// Подключение к PostgreSQL
	// =========================================================================

	ctx := context.Background()
	db, err := database.Connect(ctx, &cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer database.Close(db)

	log.Info("Connected to PostgreSQL", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Database,
	})

	// =========================================================================
	// Создание repositories
	// =========================================================================

	clientRepo := postgres.NewClientRepository(db)
	carRepo := postgres.NewCarRepository(db)
	resRepo := postgres.NewReservationRepository(db)

	// Хранилище токенов восстановления пароля: процессная карта либо
	// Redis, если сервис развернут в несколько инстансов
	var recoveryStore repository.RecoveryTokenStore = memory.NewRecoveryTokenStore()
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal("Failed to connect to Redis", map[string]interface{}{
				"error": err.Error(),
			})
		}
		defer redisClient.Close()
		recoveryStore = cached.NewRecoveryTokenStore(redisClient)

		log.Info("Recovery tokens stored in Redis", map[string]interface{}{
			"addr": cfg.Redis.Address(),
		})
	}

	log.Info("Repositories initialized")

	// =========================================================================
	// Создание JWT token service
	// =========================================================================

	tokenService := jwt.NewTokenService(cfg.JWT.SecretKey, cfg.JWT.Expiry)

	// =========================================================================
	// Создание use case services
	// =========================================================================

	authService := auth.NewService(clientRepo, recoveryStore, tokenService, log)
	carsService := cars.NewService(carRepo, log)
	resService := reservations.NewService(resRepo, log)

	log.Info("Use case services initialized")

	// =========================================================================
	// Создание HTTP handlers и router
	// =========================================================================

	authHandler := deliveryHTTP.NewAuthHandler(authService, log)
	carHandler := deliveryHTTP.NewCarHandler(carsService, log)
	resHandler := deliveryHTTP.NewReservationHandler(resService, log)

	router := deliveryHTTP.NewRouter(
		authHandler,
		carHandler,
		resHandler,
		tokenService,
		cfg,
		log,
	)

	handler := router.Setup()

	log.Info("HTTP router configured")

	// =========================================================================
	// Создание HTTP сервера
	// =========================================================================

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// =========================================================================
	// Запуск сервера в goroutine
	// =========================================================================

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("API server listening", map[string]interface{}{
			"address": srv.Addr,
		})
		serverErrors <- srv.ListenAndServe()
	}()

	// =========================================================================
	// Graceful shutdown
	// =========================================================================

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatal("Server error", map[string]interface{}{
			"error": err.Error(),
		})

	case sig := <-shutdown:
		log.Info("Shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})

		// Даем серверу 30 секунд на graceful shutdown
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Graceful shutdown failed", map[string]interface{}{
				"error": err.Error(),
			})

			if err := srv.Close(); err != nil {
				log.Fatal("Failed to close server", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}

		log.Info("Server stopped gracefully")
	}
}
