package domain

// Bucket is the verdict a probability falls into.
type Bucket string

const (
	BucketHit          Bucket = "hit"
	BucketPotentialHit Bucket = "potential_hit"
	BucketNotHit       Bucket = "not_hit"
)

// PredictionRequest is the single-row input handed to the classifier.
type PredictionRequest struct {
	Platform      PlatformCode  `json:"platform"`
	Genre         Genre         `json:"genre"`
	PublisherTier PublisherTier `json:"publisher_tier"`
}

// Thresholds are the cut points for one publisher tier. Low < High.
type Thresholds struct {
	High float64 `json:"high"`
	Low  float64 `json:"low"`
}

type PredictionResult struct {
	Probability float64    `json:"probability"`
	Bucket      Bucket     `json:"bucket"`
	Thresholds  Thresholds `json:"thresholds"`
}
