package prediction

import "gameHitPredictor/domain"

// Cut points per publisher tier. Unknown publishers get the lower pair.
const (
	topThresholdHigh     = 0.50
	topThresholdLow      = 0.35
	unknownThresholdHigh = 0.35
	unknownThresholdLow  = 0.20
)

var tierThresholds = map[domain.PublisherTier]domain.Thresholds{
	domain.PublisherTop:     {High: topThresholdHigh, Low: topThresholdLow},
	domain.PublisherUnknown: {High: unknownThresholdHigh, Low: unknownThresholdLow},
}

// ThresholdsFor returns the cut points for tier.
func ThresholdsFor(tier domain.PublisherTier) (domain.Thresholds, bool) {
	th, ok := tierThresholds[tier]
	return th, ok
}

// Classify buckets probability. Each cut point belongs to the bucket above it.
func Classify(probability float64, th domain.Thresholds) domain.Bucket {
	switch {
	case probability >= th.High:
		return domain.BucketHit
	case probability >= th.Low:
		return domain.BucketPotentialHit
	default:
		return domain.BucketNotHit
	}
}
