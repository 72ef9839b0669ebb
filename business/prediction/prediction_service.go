package prediction

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gameHitPredictor/domain"
	"gameHitPredictor/pkg/logger"
	"gameHitPredictor/pkg/metrics"
)

// Classifier is the trained model, reduced to the one call the engine needs.
// Implementations must be safe for concurrent use.
type Classifier interface {
	PredictProbability(ctx context.Context, req domain.PredictionRequest) (float64, error)
}

type Service struct {
	classifier Classifier
}

func NewService(classifier Classifier) *Service {
	return &Service{classifier: classifier}
}

// Evaluate asks the classifier for the hit probability of req and buckets
// it with the thresholds of req's publisher tier. Nothing is cached between
// calls.
func (s *Service) Evaluate(ctx context.Context, req domain.PredictionRequest) (domain.PredictionResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.PredictionResult{}, fmt.Errorf("context error: %w", err)
	}

	if err := validateRequest(req); err != nil {
		metrics.PredictionErrors.WithLabelValues("lookup").Inc()
		return domain.PredictionResult{}, err
	}

	th, _ := ThresholdsFor(req.PublisherTier)

	start := time.Now()
	probability, err := s.classifier.PredictProbability(ctx, req)
	metrics.PredictionLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PredictionErrors.WithLabelValues(errorKind(err)).Inc()
		logger.Error("Classifier failed",
			"request_id", logger.RequestID(ctx),
			"platform", req.Platform,
			"genre", req.Genre,
			"publisher_tier", req.PublisherTier,
			"error", err,
		)
		return domain.PredictionResult{}, fmt.Errorf("predict probability: %w", err)
	}

	if math.IsNaN(probability) || probability < 0 || probability > 1 {
		metrics.PredictionErrors.WithLabelValues("invalid_probability").Inc()
		return domain.PredictionResult{}, fmt.Errorf("%w: %v", domain.ErrInvalidProbability, probability)
	}

	result := domain.PredictionResult{
		Probability: probability,
		Bucket:      Classify(probability, th),
		Thresholds:  th,
	}

	metrics.PredictionsTotal.WithLabelValues(string(req.PublisherTier), string(result.Bucket)).Inc()
	logger.Debug("Prediction evaluated",
		"request_id", logger.RequestID(ctx),
		"platform", req.Platform,
		"genre", req.Genre,
		"publisher_tier", req.PublisherTier,
		"probability", probability,
		"bucket", result.Bucket,
	)

	return result, nil
}

func validateRequest(req domain.PredictionRequest) error {
	if !req.Platform.Valid() {
		return &domain.LookupError{Kind: "platform", Value: string(req.Platform)}
	}
	if !req.Genre.Valid() {
		return &domain.LookupError{Kind: "genre", Value: string(req.Genre)}
	}
	if _, ok := ThresholdsFor(req.PublisherTier); !ok {
		return &domain.LookupError{Kind: "publisher tier", Value: string(req.PublisherTier)}
	}
	return nil
}

func errorKind(err error) string {
	var encErr *domain.FeatureEncodingError
	var modelErr *domain.ModelUnavailableError
	switch {
	case errors.As(err, &encErr):
		return "feature_encoding"
	case errors.As(err, &modelErr):
		return "model_unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "context"
	default:
		return "classifier"
	}
}
