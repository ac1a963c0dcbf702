package http

import (
	"net/http"

	"github.com/NikolaySkladnev/car-rent/internal/delivery/http/middleware"
	"github.com/NikolaySkladnev/car-rent/internal/pkg/config"
	"github.com/NikolaySkladnev/car-rent/internal/pkg/jwt"
	"github.com/NikolaySkladnev/car-rent/internal/pkg/logger"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Router содержит все зависимости для HTTP роутера
type Router struct {
	authHandler        *AuthHandler
	carHandler         *CarHandler
	reservationHandler *ReservationHandler
	tokenService       *jwt.TokenService
	config             *config.Config
	logger             logger.Logger
}

// NewRouter создает новый HTTP router
func NewRouter(
	authHandler *AuthHandler,
	carHandler *CarHandler,
	reservationHandler *ReservationHandler,
	tokenService *jwt.TokenService,
	config *config.Config,
	logger logger.Logger,
) *Router {
	return &Router{
		authHandler:        authHandler,
		carHandler:         carHandler,
		reservationHandler: reservationHandler,
		tokenService:       tokenService,
		config:             config,
		logger:             logger,
	}
}

// Setup настраивает все маршруты
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Глобальные middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RecoveryMiddleware(rt.logger))
	r.Use(middleware.LoggingMiddleware(rt.logger))
	r.Use(middleware.CORSMiddleware(middleware.CORSConfig{
		AllowedOrigins: rt.config.CORS.AllowedOrigins,
		AllowedMethods: rt.config.CORS.AllowedMethods,
		AllowedHeaders: rt.config.CORS.AllowedHeaders,
	}))

	// Health check endpoint (публичный)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
		})
	})

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes (без аутентификации)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", rt.authHandler.Register)
			r.Post("/login", rt.authHandler.Login)
			r.Post("/password-recovery", rt.authHandler.PasswordRecovery)

			// Logout требует валидный токен, хотя и ничего не отзывает
			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthMiddleware(rt.tokenService))
				r.Post("/logout", rt.authHandler.Logout)
			})
		})

		// Каталог автомобилей (публичный)
		r.Route("/cars", func(r chi.Router) {
			r.Get("/", rt.carHandler.ListCars)
			r.Get("/{id}", rt.carHandler.GetCar)
		})

		// Protected routes (требуют аутентификации)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(rt.tokenService))

			r.Route("/reservations", func(r chi.Router) {
				r.Post("/", rt.reservationHandler.CreateReservation)
				r.Get("/me", rt.reservationHandler.GetMyReservations)
				r.Get("/{id}", rt.reservationHandler.GetReservation)
				r.Delete("/{id}", rt.reservationHandler.CancelReservation)
			})
		})
	})

	return r
}
