package main

import (
	"context"
	"fmt"
	"gameHitPredictor/app/echo-server/metrics"
	"gameHitPredictor/app/echo-server/router"
	"gameHitPredictor/business/catalog"
	"gameHitPredictor/business/prediction"
	"gameHitPredictor/internal/middleware"
	"gameHitPredictor/internal/repository/classifier"
	"gameHitPredictor/internal/rest"
	"gameHitPredictor/internal/view"
	"gameHitPredictor/pkg/config"
	"gameHitPredictor/pkg/logger"
	predictionMetrics "gameHitPredictor/pkg/metrics"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting "+cfg.App.Name, "version", cfg.App.Version)

	// The model is loaded once and shared read-only by every request.
	model, err := classifier.Load(cfg.Model.Path)
	if err != nil {
		logger.Fatal("Failed to load classifier", "path", cfg.Model.Path, "error", err)
	}
	logger.Info("Classifier loaded", "model", model.Name(), "model_version", model.Version())

	for column, values := range model.MissingCategories() {
		logger.Warn("Classifier has no weights for selectable values", "column", column, "values", values)
	}

	metrics.Init()
	predictionMetrics.Init()

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Fatal("Failed to parse templates", "error", err)
	}

	// Init service
	predictionService := prediction.NewService(model)
	catalogService := catalog.NewCatalogService()

	// Init handler
	predictionHandler := rest.NewPredictionHandler(predictionService, catalogService, cfg.App.Name, cfg.Server.RequestTimeout)
	healthHandler := rest.NewHealthHandler(model, cfg.App.Version)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Setup routes
	router.SetupFormRoutes(e, predictionHandler)
	api := e.Group("/api/v1")
	router.SetupPredictionRoutes(api, predictionHandler)
	router.SetupOpsRoutes(e, healthHandler)

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
