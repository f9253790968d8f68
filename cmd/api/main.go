package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/cardpath/backend/docs"
	"github.com/cardpath/backend/internal/catalog"
	"github.com/cardpath/backend/internal/config"
	"github.com/cardpath/backend/internal/handler"
	"github.com/cardpath/backend/internal/logger"
	"github.com/cardpath/backend/internal/repository"
	"github.com/cardpath/backend/internal/scheduler"
	"github.com/cardpath/backend/internal/service"
)

// @title CardPath API
// @version 1.0
// @description Credit card recommendation API scoring the UAE card catalog against user goals and spending.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@cardpath.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

func main() {
	// Load configuration
	cfg := config.Load()

	// Structured logger; internal/logger picks JSON or text from ENV
	appLogger := logger.Logger()

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Initialize repository and catalog store
	cardRepo := repository.NewCardRepository(db)
	store := catalog.NewStore(cardRepo)

	initCtx, cancel := context.WithTimeout(context.Background(), cfg.CatalogRefreshTimeout)
	snap, err := store.Reload(initCtx)
	cancel()
	switch {
	case err != nil && cfg.EnableSeedEndpoint:
		// An empty development database is workable; the seed endpoint
		// can populate it after startup.
		appLogger.Warn("Catalog not loaded, seed via POST /api/cards/seed",
			slog.String("error", err.Error()))
	case err != nil:
		log.Fatalf("Failed to load card catalog: %v", err)
	default:
		appLogger.Info("Catalog loaded", slog.Int("cards", len(snap.Cards)))
	}

	// Initialize services
	recommendationService := service.NewRecommendationService(nil)
	questionnaireService := service.NewQuestionnaireService()

	// Initialize handlers
	recommendationHandler := handler.NewRecommendationHandler(recommendationService, questionnaireService, store)
	cardHandler := handler.NewCardHandler(store, cardRepo, store)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogContext)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Health check
	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Recommendations
	r.Post("/api/recommend", recommendationHandler.Recommend)
	r.Post("/api/filter", recommendationHandler.Filter)
	r.Post("/api/questions", recommendationHandler.Questions)

	// Catalog
	r.Get("/api/cards", cardHandler.List)
	if cfg.EnableSeedEndpoint {
		r.Post("/api/cards/seed", cardHandler.Seed)
	}

	// Initialize and start the catalog refresh scheduler
	var refreshScheduler *scheduler.Scheduler
	if cfg.CatalogRefreshEnabled {
		schedCfg := scheduler.Config{
			Schedule: cfg.CatalogRefreshSchedule,
			Timeout:  cfg.CatalogRefreshTimeout,
			Enabled:  cfg.CatalogRefreshEnabled,
		}
		refreshScheduler = scheduler.New(schedCfg, store, appLogger)
		if err := refreshScheduler.Start(); err != nil {
			appLogger.Error("Failed to start catalog refresh scheduler", slog.String("error", err.Error()))
		} else {
			appLogger.Info("Catalog refresh scheduler started",
				slog.String("schedule", cfg.CatalogRefreshSchedule),
				slog.Duration("timeout", cfg.CatalogRefreshTimeout),
			)
		}
	}

	// Create server
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		appLogger.Info("Shutting down server...")

		if refreshScheduler != nil {
			ctx := refreshScheduler.Stop()
			<-ctx.Done()
			appLogger.Info("Scheduler stopped")
		}

		if err := server.Shutdown(context.Background()); err != nil {
			appLogger.Error("Server shutdown error", slog.String("error", err.Error()))
		}
	}()

	log.Printf("Server starting on port %s", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("Server failed: %v", err)
	}
}

// requestLogContext carries the chi request ID into the logging context so
// handlers can log with logger.FromContext.
func requestLogContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithRequestID(r.Context(), middleware.GetReqID(r.Context()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
