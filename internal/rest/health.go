package rest

import (
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type ModelInfo interface {
	Name() string
	Version() string
}

type HealthHandler struct {
	model      ModelInfo
	appVersion string
}

func NewHealthHandler(model ModelInfo, appVersion string) *HealthHandler {
	return &HealthHandler{model: model, appVersion: appVersion}
}

func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]string{
		"status":        "ok",
		"version":       h.appVersion,
		"model":         h.model.Name(),
		"model_version": h.model.Version(),
	}))
}
