package router

import (
	"gameHitPredictor/internal/rest"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupFormRoutes(e *echo.Echo, handler *rest.PredictionHandler) {
	e.GET("/", handler.Form)
	e.POST("/predict", handler.SubmitForm)
}

func SetupPredictionRoutes(api *echo.Group, handler *rest.PredictionHandler) {
	api.POST("/predictions", handler.Predict)
	api.GET("/options", handler.Options)
}

func SetupOpsRoutes(e *echo.Echo, handler *rest.HealthHandler) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
