package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Anuj3937/DisasterResponse/internal/api"
	"github.com/Anuj3937/DisasterResponse/internal/config"
	"github.com/Anuj3937/DisasterResponse/internal/logging"
	"github.com/Anuj3937/DisasterResponse/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	slog.Info("Server starting", "host", cfg.Server.Host, "port", cfg.Server.Port, "store", cfg.Store.Backend)

	store, err := newStore(cfg)
	if err != nil {
		logging.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	if cfg.Store.SeedSampleData {
		if err := repository.Seed(context.Background(), store); err != nil {
			logging.Fatalf("Failed to seed sample data: %v", err)
		}
		slog.Info("sample data seeded")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false, // Set to false when using wildcard origins
	}))
	router.Use(api.RateLimitMiddleware(cfg.API.RateLimitRPS))
	router.Use(api.MetricsMiddleware())

	handler := api.NewHandler(store)
	handler.RegisterRoutes(router)
	api.RegisterMetricsEndpoint(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
}

func newStore(cfg *config.Config) (repository.Store, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendSQLite:
		return repository.NewSQLiteStore(cfg.Store.Path)
	default:
		return repository.NewMemStore(), nil
	}
}
