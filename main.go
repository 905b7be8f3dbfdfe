package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/blogem/symptom-survey/config"
	"github.com/blogem/symptom-survey/controllers"
	"github.com/blogem/symptom-survey/database"
	"github.com/blogem/symptom-survey/logger"
	"github.com/blogem/symptom-survey/metrics"
	auditmiddleware "github.com/blogem/symptom-survey/middleware"
	"github.com/blogem/symptom-survey/repositories"
	"github.com/blogem/symptom-survey/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logr, err := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logr.Sync()

	// Initialize database
	db, err := database.InitializeDatabase(cfg.DatabasePath, logr)
	if err != nil {
		logr.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos, logr)
	ctrl := controllers.NewControllers(srvs, cfg.TemplatesDir, cfg.ServiceName, logr)

	r := setupRouter(cfg, ctrl, repos, logr)

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		logr.Info("symptom survey starting",
			zap.String("addr", cfg.Addr()),
			zap.String("url", "http://localhost:"+cfg.Port),
			zap.String("database", cfg.DatabasePath),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logr.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}

// setupRouter configures all routes
func setupRouter(cfg *config.Config, ctrl *controllers.Controllers, repos *repositories.Repositories, logr *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	if cfg.MetricsEnabled {
		r.Use(metrics.Middleware)
	}
	r.Use(auditmiddleware.AuditLogger(repos.Audit, logr))

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	r.Get("/", ctrl.Survey.Index)
	r.Post("/submit", ctrl.Survey.Submit)
	r.Get("/dashboard", ctrl.Dashboard.Index)
	r.Post("/chatbot", ctrl.Chatbot.Ask)
	r.Get("/export.xlsx", ctrl.Export.Records)
	r.Get("/health", ctrl.Health.Check)

	if cfg.MetricsEnabled {
		r.Handle("/metrics", metrics.Handler())
	}

	return r
}
