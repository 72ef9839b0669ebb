package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"

	"gameHitPredictor/domain"
)

// Column names of the frame the model was trained on.
const (
	ColumnPlatform      = "Platform"
	ColumnGenre         = "Genre"
	ColumnPublisherType = "Publisher_Type"
)

const (
	handleUnknownError  = "error"
	handleUnknownIgnore = "ignore"
)

type artifact struct {
	Name          string                        `json:"name"`
	Version       string                        `json:"version"`
	Kind          string                        `json:"kind"`
	PositiveClass string                        `json:"positive_class"`
	Intercept     float64                       `json:"intercept"`
	HandleUnknown string                        `json:"handle_unknown"`
	Features      map[string]map[string]float64 `json:"features"`
}

// LogisticModel is a one-hot encoder followed by logistic regression.
// It is never mutated after Load and is safe for concurrent use.
type LogisticModel struct {
	name          string
	version       string
	intercept     float64
	ignoreUnknown bool
	weights       map[string]map[string]float64
}

// Load reads and validates the artifact at path. Every failure is a
// *domain.ModelUnavailableError.
func Load(path string) (*LogisticModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ModelUnavailableError{Path: path, Err: err}
	}
	return Parse(path, raw)
}

// Parse builds a model from artifact bytes. source only labels errors.
func Parse(source string, raw []byte) (*LogisticModel, error) {
	if err := validateArtifact(raw); err != nil {
		return nil, &domain.ModelUnavailableError{Path: source, Err: err}
	}

	var a artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, &domain.ModelUnavailableError{Path: source, Err: fmt.Errorf("decode artifact: %w", err)}
	}

	return &LogisticModel{
		name:          a.Name,
		version:       a.Version,
		intercept:     a.Intercept,
		ignoreUnknown: a.HandleUnknown == handleUnknownIgnore,
		weights:       a.Features,
	}, nil
}

func (m *LogisticModel) Name() string    { return m.name }
func (m *LogisticModel) Version() string { return m.version }

// PredictProbability returns P(hit) for req.
func (m *LogisticModel) PredictProbability(ctx context.Context, req domain.PredictionRequest) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	z := m.intercept
	for _, f := range []struct{ column, value string }{
		{ColumnPlatform, string(req.Platform)},
		{ColumnGenre, string(req.Genre)},
		{ColumnPublisherType, string(req.PublisherTier)},
	} {
		w, err := m.weight(f.column, f.value)
		if err != nil {
			return 0, err
		}
		z += w
	}

	return sigmoid(z), nil
}

func (m *LogisticModel) weight(column, value string) (float64, error) {
	w, ok := m.weights[column][value]
	if ok {
		return w, nil
	}
	if m.ignoreUnknown {
		// all-zero one-hot row
		return 0, nil
	}
	return 0, &domain.FeatureEncodingError{Feature: column, Value: value}
}

// MissingCategories lists, per column, the closed-set values the artifact
// has no weight for. An empty map means the artifact covers every option.
func (m *LogisticModel) MissingCategories() map[string][]string {
	missing := make(map[string][]string)

	for _, p := range domain.AllPlatforms() {
		if _, ok := m.weights[ColumnPlatform][string(p.Code)]; !ok {
			missing[ColumnPlatform] = append(missing[ColumnPlatform], string(p.Code))
		}
	}
	for _, g := range domain.AllGenres() {
		if _, ok := m.weights[ColumnGenre][string(g)]; !ok {
			missing[ColumnGenre] = append(missing[ColumnGenre], string(g))
		}
	}
	for _, t := range domain.AllPublisherTiers() {
		if _, ok := m.weights[ColumnPublisherType][string(t)]; !ok {
			missing[ColumnPublisherType] = append(missing[ColumnPublisherType], string(t))
		}
	}

	for _, values := range missing {
		sort.Strings(values)
	}
	return missing
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
