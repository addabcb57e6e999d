package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"multiarm/app/echo-server/router"
	"multiarm/business/bandit"
	"multiarm/internal/middleware"
	"multiarm/internal/repository/memory"
	"multiarm/internal/rest"
	"multiarm/pkg/config"
	"multiarm/pkg/logger"
	"multiarm/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Multiarm Bandit API", "version", cfg.App.Version)

	metrics.Init()

	// Init repo
	defaultsRepo := memory.NewBanditDefaultsRepository()

	// Init service
	banditCfg := bandit.Config{
		DefaultSubtype:      cfg.Bandit.DefaultSubtype,
		DefaultEpsilon:      cfg.Bandit.DefaultEpsilon,
		DefaultTotalSamples: cfg.Bandit.DefaultTotalSamples,
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	allocationService := bandit.NewAllocationService(defaultsRepo, banditCfg, rng)

	// Init handler
	banditHandler := rest.NewBanditHandler(allocationService)
	banditAdminHandler := rest.NewBanditAdminHandler(defaultsRepo)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetBanditRoutes(api, banditHandler)

	// Admin routes only when a signing secret is configured
	if cfg.JWT.SecretKey != "" {
		authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)
		adminOnly := middleware.AdminOnly()
		router.SetBanditAdminRoutes(api, banditAdminHandler, authRequired, adminOnly)
	} else {
		logger.Warn("JWT_SECRET not set, admin routes disabled")
	}

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
