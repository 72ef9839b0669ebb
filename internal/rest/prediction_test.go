package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"gameHitPredictor/business/catalog"
	"gameHitPredictor/domain"
	"gameHitPredictor/internal/view"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPredictionService struct {
	result domain.PredictionResult
	err    error
	got    domain.PredictionRequest
	calls  int
}

func (s *stubPredictionService) Evaluate(ctx context.Context, req domain.PredictionRequest) (domain.PredictionResult, error) {
	s.calls++
	s.got = req
	return s.result, s.err
}

func newTestServer(t *testing.T, svc PredictionService) *echo.Echo {
	t.Helper()

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer

	h := NewPredictionHandler(svc, catalog.NewCatalogService(), "Video Game Hit Predictor", time.Second)
	e.GET("/", h.Form)
	e.POST("/predict", h.SubmitForm)
	e.POST("/api/v1/predictions", h.Predict)
	e.GET("/api/v1/options", h.Options)
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doForm(e *echo.Echo, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPredict_JSON(t *testing.T) {
	svc := &stubPredictionService{result: domain.PredictionResult{
		Probability: 0.62,
		Bucket:      domain.BucketHit,
		Thresholds:  domain.Thresholds{High: 0.5, Low: 0.35},
	}}
	e := newTestServer(t, svc)

	rec := doJSON(e, http.MethodPost, "/api/v1/predictions", `{"platform":"PS4","genre":"Shooter","publisher_tier":"Top"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, domain.PredictionRequest{
		Platform:      domain.PlatformPS4,
		Genre:         domain.GenreShooter,
		PublisherTier: domain.PublisherTop,
	}, svc.got)

	body := rec.Body.String()
	assert.Contains(t, body, `"bucket":"hit"`)
	assert.Contains(t, body, `"percent":"62.0%"`)
	assert.Contains(t, body, `"platform_name":"Sony PlayStation 4"`)
	assert.Contains(t, body, "This game is likely to be a HIT!")
}

func TestPredict_JSONRejectsOutOfSetValues(t *testing.T) {
	tests := map[string]string{
		"platform": `{"platform":"Switch","genre":"Shooter","publisher_tier":"Top"}`,
		"genre":    `{"platform":"PS4","genre":"Rhythm","publisher_tier":"Top"}`,
		"tier":     `{"platform":"PS4","genre":"Shooter","publisher_tier":"Indie"}`,
		"missing":  `{"platform":"PS4"}`,
		"garbage":  `{"platform":`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			svc := &stubPredictionService{}
			rec := doJSON(newTestServer(t, svc), http.MethodPost, "/api/v1/predictions", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, svc.calls)
		})
	}
}

func TestPredict_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"encoding", &domain.FeatureEncodingError{Feature: "Platform", Value: "PS4"}, http.StatusUnprocessableEntity},
		{"lookup", &domain.LookupError{Kind: "genre", Value: "x"}, http.StatusBadRequest},
		{"model", &domain.ModelUnavailableError{Path: "m.json"}, http.StatusInternalServerError},
		{"invalid probability", domain.ErrInvalidProbability, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestServer(t, &stubPredictionService{err: tt.err})
			rec := doJSON(e, http.MethodPost, "/api/v1/predictions", `{"platform":"PS4","genre":"Shooter","publisher_tier":"Top"}`)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestPredict_EncodingErrorIsGeneric(t *testing.T) {
	e := newTestServer(t, &stubPredictionService{err: &domain.FeatureEncodingError{Feature: "Platform", Value: "PS4"}})
	rec := doJSON(e, http.MethodPost, "/api/v1/predictions", `{"platform":"PS4","genre":"Shooter","publisher_tier":"Top"}`)

	assert.Contains(t, rec.Body.String(), "could not score this combination")
	assert.NotContains(t, rec.Body.String(), "Platform")
}

func TestOptions(t *testing.T) {
	rec := doJSON(newTestServer(t, &stubPredictionService{}), http.MethodGet, "/api/v1/options", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"code":"NES"`)
	assert.Contains(t, body, `"display_name":"Nintendo Entertainment System (NES)"`)
	assert.Contains(t, body, `"Role-Playing"`)
	assert.Contains(t, body, `"Unknown"`)
}

func TestForm_Render(t *testing.T) {
	e := newTestServer(t, &stubPredictionService{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `<option value="PSV">Sony PlayStation Vita</option>`)
	assert.Contains(t, body, `<option value="Strategy">Strategy</option>`)
	assert.Contains(t, body, "Predict")
	assert.NotContains(t, body, "Prediction Result")
}

func TestSubmitForm_Verdicts(t *testing.T) {
	tests := []struct {
		bucket  domain.Bucket
		tier    string
		prob    float64
		verdict string
		percent string
	}{
		{domain.BucketHit, "Top", 0.62, "This game is likely to be a HIT!", "62.0%"},
		{domain.BucketPotentialHit, "Unknown", 0.25, "This game could potentially be a hit!", "25.0%"},
		{domain.BucketNotHit, "Top", 0.1, "This game is more than likely not going to be a hit.", "10.0%"},
	}

	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			svc := &stubPredictionService{result: domain.PredictionResult{Probability: tt.prob, Bucket: tt.bucket}}
			rec := doForm(newTestServer(t, svc), url.Values{
				"platform":       {"Wii"},
				"genre":          {"Sports"},
				"publisher_tier": {tt.tier},
			})

			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, "Prediction Result")
			assert.Contains(t, body, tt.verdict)
			assert.Contains(t, body, tt.percent)
			assert.Contains(t, body, "<strong>"+tt.tier+"</strong>")
			assert.Contains(t, body, `<option value="Wii" selected>Nintendo Wii</option>`)
			assert.Equal(t, domain.PlatformWii, svc.got.Platform)
		})
	}
}

func TestSubmitForm_Errors(t *testing.T) {
	svc := &stubPredictionService{}
	rec := doForm(newTestServer(t, svc), url.Values{
		"platform":       {"Switch"},
		"genre":          {"Sports"},
		"publisher_tier": {"Top"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please pick a platform")
	assert.Zero(t, svc.calls)

	svc = &stubPredictionService{err: &domain.FeatureEncodingError{Feature: "Genre", Value: "Sports"}}
	rec = doForm(newTestServer(t, svc), url.Values{
		"platform":       {"Wii"},
		"genre":          {"Sports"},
		"publisher_tier": {"Top"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "could not score this combination")
	assert.NotContains(t, rec.Body.String(), "Prediction Result")
}
