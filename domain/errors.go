package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidProbability is returned when the classifier answers with
// something that is not a probability.
var ErrInvalidProbability = errors.New("classifier returned a value outside [0,1]")

// ModelUnavailableError means the classifier artifact is missing or could
// not be loaded. The process cannot serve predictions without it.
type ModelUnavailableError struct {
	Path string
	Err  error
}

func (e *ModelUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model unavailable (%s): %v", e.Path, e.Err)
	}
	return fmt.Sprintf("model unavailable (%s)", e.Path)
}

func (e *ModelUnavailableError) Unwrap() error { return e.Err }

// FeatureEncodingError means the classifier could not encode a request
// value into its feature space. Retrying the same request fails the same way.
type FeatureEncodingError struct {
	Feature string
	Value   string
}

func (e *FeatureEncodingError) Error() string {
	return fmt.Sprintf("cannot encode %s=%q: value unknown to the model", e.Feature, e.Value)
}

// LookupError is returned for values outside a closed lookup table.
type LookupError struct {
	Kind  string
	Value string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
}
