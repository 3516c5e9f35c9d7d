package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
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

	"github.com/the-Alberich/code-test-ba/config"
	"github.com/the-Alberich/code-test-ba/controllers"
	"github.com/the-Alberich/code-test-ba/database"
	"github.com/the-Alberich/code-test-ba/logging"
	"github.com/the-Alberich/code-test-ba/metrics"
	appmiddleware "github.com/the-Alberich/code-test-ba/middleware"
	"github.com/the-Alberich/code-test-ba/repositories"
	"github.com/the-Alberich/code-test-ba/services"
)

func main() {
	// Load configuration from .env, CONFIG_FILE and the environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	slog.SetDefault(logger)

	// Initialize database
	db, err := database.InitializeDatabase(context.Background(), cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	r, err := setupRouter(cfg, db, logger, metrics.New())
	if err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Printf("🚀 Event log server starting on port %s\n", cfg.Port)
	fmt.Printf("📂 API: http://localhost:%s/api/logs\n", cfg.Port)
	fmt.Printf("🗃️  Database: %s\n", cfg.DBPath)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}

// setupRouter wires repositories, services and controllers and configures all routes
func setupRouter(cfg config.Config, db *sql.DB, logger *slog.Logger, m *metrics.Metrics) (*chi.Mux, error) {
	ips, err := appmiddleware.NewIPResolver(cfg.TrustedProxies)
	if err != nil {
		return nil, err
	}

	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos, logger, m)
	ctrl := controllers.NewControllers(srvs, db, logger)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(appmiddleware.AccessLog(logger, ips))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(appmiddleware.Instrument(m))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/health", ctrl.Health.Index)
	r.Handle("/metrics", m.Handler())

	r.Route("/api", func(r chi.Router) {
		if cfg.RateLimitEnabled() {
			r.Use(appmiddleware.RateLimit(appmiddleware.NewClientLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 10*time.Minute), ips))
		}
		r.Use(appmiddleware.LimitBody(cfg.MaxBodyBytes))
		r.Use(appmiddleware.CaptureRequest(ips))

		r.Route("/logs", func(r chi.Router) {
			r.Get("/", ctrl.Logs.Index)
			r.With(appmiddleware.ValidateLogBody(logger)).Post("/", ctrl.Logs.Create)
			r.With(appmiddleware.ValidateLogBody(logger)).Put("/{id}", ctrl.Logs.Update)
			r.Delete("/{id}", ctrl.Logs.Delete)
		})
	})

	return r, nil
}
