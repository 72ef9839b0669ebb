package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"gameHitPredictor/domain"
	"gameHitPredictor/internal/view"
	"gameHitPredictor/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	PredictionHandler struct {
		validate          *validator.Validate
		predictionService PredictionService
		catalogService    CatalogService
		title             string
		timeout           time.Duration
	}

	PredictionService interface {
		Evaluate(ctx context.Context, req domain.PredictionRequest) (domain.PredictionResult, error)
	}

	CatalogService interface {
		GetOptions(ctx context.Context) (domain.Options, error)
		GetPlatform(ctx context.Context, code string) (domain.Platform, error)
	}

	PredictRequest struct {
		Platform      string `json:"platform" form:"platform" validate:"required,platform"`
		Genre         string `json:"genre" form:"genre" validate:"required,genre"`
		PublisherTier string `json:"publisher_tier" form:"publisher_tier" validate:"required,publisher_tier"`
	}

	PredictionResponse struct {
		Request      domain.PredictionRequest `json:"request"`
		PlatformName string                   `json:"platform_name"`
		Probability  float64                  `json:"probability"`
		Percent      string                   `json:"percent"`
		Bucket       domain.Bucket            `json:"bucket"`
		Verdict      string                   `json:"verdict"`
		Thresholds   domain.Thresholds        `json:"thresholds"`
	}
)

const msgEncodingFailed = "Sorry, the model could not score this combination."

func NewPredictionHandler(predictionService PredictionService, catalogService CatalogService, title string, timeout time.Duration) *PredictionHandler {
	return &PredictionHandler{
		validate:          NewValidator(),
		predictionService: predictionService,
		catalogService:    catalogService,
		title:             title,
		timeout:           timeout,
	}
}

// toRequest converts a validated request into the closed domain types.
func (r PredictRequest) toRequest() (domain.PredictionRequest, error) {
	platform, err := domain.ParsePlatformCode(r.Platform)
	if err != nil {
		return domain.PredictionRequest{}, err
	}
	genre, err := domain.ParseGenre(r.Genre)
	if err != nil {
		return domain.PredictionRequest{}, err
	}
	tier, err := domain.ParsePublisherTier(r.PublisherTier)
	if err != nil {
		return domain.PredictionRequest{}, err
	}
	return domain.PredictionRequest{Platform: platform, Genre: genre, PublisherTier: tier}, nil
}

// GET /
func (h *PredictionHandler) Form(c echo.Context) error {
	options, err := h.catalogService.GetOptions(c.Request().Context())
	if err != nil {
		logger.Error("Failed to get options", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.Render(http.StatusOK, view.FormTemplate, view.FormPage{
		Title:   h.title,
		Options: options,
	})
}

// POST /predict
func (h *PredictionHandler) SubmitForm(c echo.Context) error {
	options, err := h.catalogService.GetOptions(c.Request().Context())
	if err != nil {
		logger.Error("Failed to get options", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	page := view.FormPage{Title: h.title, Options: options}

	var in PredictRequest
	if err := c.Bind(&in); err != nil {
		page.Error = "Invalid form submission."
		return c.Render(http.StatusBadRequest, view.FormTemplate, page)
	}
	if err := h.validate.Struct(&in); err != nil {
		logger.Warn("Rejected form submission", "error", err)
		page.Error = "Please pick a platform, genre and publisher type from the lists."
		return c.Render(http.StatusBadRequest, view.FormTemplate, page)
	}

	req, err := in.toRequest()
	if err != nil {
		page.Error = err.Error()
		return c.Render(http.StatusBadRequest, view.FormTemplate, page)
	}
	page.Selected = req

	res, err := h.evaluate(c, req)
	if err != nil {
		status, msg := errorStatus(err)
		page.Error = msg
		return c.Render(status, view.FormTemplate, page)
	}

	page.Result = view.NewResultView(req.PublisherTier, res)
	return c.Render(http.StatusOK, view.FormTemplate, page)
}

// POST /api/v1/predictions
func (h *PredictionHandler) Predict(c echo.Context) error {
	var in PredictRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	req, err := in.toRequest()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	res, err := h.evaluate(c, req)
	if err != nil {
		status, msg := errorStatus(err)
		return c.JSON(status, ResponseError{Message: msg})
	}

	platform, err := h.catalogService.GetPlatform(c.Request().Context(), string(req.Platform))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(PredictionResponse{
		Request:      req,
		PlatformName: platform.DisplayName,
		Probability:  res.Probability,
		Percent:      view.Percent(res.Probability),
		Bucket:       res.Bucket,
		Verdict:      view.Verdict(res.Bucket),
		Thresholds:   res.Thresholds,
	}))
}

// GET /api/v1/options
func (h *PredictionHandler) Options(c echo.Context) error {
	options, err := h.catalogService.GetOptions(c.Request().Context())
	if err != nil {
		logger.Error("Failed to get options", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(options))
}

func (h *PredictionHandler) evaluate(c echo.Context, req domain.PredictionRequest) (domain.PredictionResult, error) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	ctx = logger.WithRequestID(ctx, c.Response().Header().Get(echo.HeaderXRequestID))

	res, err := h.predictionService.Evaluate(ctx, req)
	if err != nil {
		logger.Error("Failed to evaluate prediction", "error", err)
		return domain.PredictionResult{}, err
	}
	return res, nil
}

func errorStatus(err error) (int, string) {
	var lookupErr *domain.LookupError
	var encErr *domain.FeatureEncodingError
	switch {
	case errors.As(err, &lookupErr):
		return http.StatusBadRequest, lookupErr.Error()
	case errors.As(err, &encErr):
		return http.StatusUnprocessableEntity, msgEncodingFailed
	default:
		return http.StatusInternalServerError, "Prediction failed. Please try again later."
	}
}
