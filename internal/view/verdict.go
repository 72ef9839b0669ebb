package view

import (
	"fmt"

	"gameHitPredictor/domain"
)

var verdicts = map[domain.Bucket]string{
	domain.BucketHit:          "This game is likely to be a HIT!",
	domain.BucketPotentialHit: "This game could potentially be a hit!",
	domain.BucketNotHit:       "This game is more than likely not going to be a hit.",
}

// alert classes used by the result panel
var tones = map[domain.Bucket]string{
	domain.BucketHit:          "success",
	domain.BucketPotentialHit: "warning",
	domain.BucketNotHit:       "error",
}

func Verdict(b domain.Bucket) string {
	return verdicts[b]
}

// Percent formats a probability with one decimal, e.g. 0.62 -> "62.0%".
func Percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

// ResultView is what the result panel shows for one evaluation.
type ResultView struct {
	Bucket        domain.Bucket
	Verdict       string
	Tone          string
	Percent       string
	PublisherTier domain.PublisherTier
}

func NewResultView(tier domain.PublisherTier, res domain.PredictionResult) *ResultView {
	return &ResultView{
		Bucket:        res.Bucket,
		Verdict:       Verdict(res.Bucket),
		Tone:          tones[res.Bucket],
		Percent:       Percent(res.Probability),
		PublisherTier: tier,
	}
}

// FormPage is the data behind the single page.
type FormPage struct {
	Title    string
	Options  domain.Options
	Selected domain.PredictionRequest
	Result   *ResultView
	Error    string
}
