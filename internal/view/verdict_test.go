package view

import (
	"bytes"
	"testing"

	"gameHitPredictor/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercent(t *testing.T) {
	assert.Equal(t, "62.0%", Percent(0.62))
	assert.Equal(t, "35.0%", Percent(0.35))
	assert.Equal(t, "0.0%", Percent(0))
	assert.Equal(t, "100.0%", Percent(1))
	assert.Equal(t, "12.3%", Percent(0.1234))
}

func TestVerdictCoversEveryBucket(t *testing.T) {
	for _, b := range []domain.Bucket{domain.BucketHit, domain.BucketPotentialHit, domain.BucketNotHit} {
		assert.NotEmpty(t, Verdict(b), b)
		assert.NotEmpty(t, tones[b], b)
	}
}

func TestRenderer_ResultPanel(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	page := FormPage{
		Title: "Hit Predictor",
		Options: domain.Options{
			Platforms:      domain.AllPlatforms(),
			Genres:         domain.AllGenres(),
			PublisherTiers: domain.AllPublisherTiers(),
		},
		Selected: domain.PredictionRequest{Platform: domain.PlatformGBA, Genre: domain.GenrePuzzle, PublisherTier: domain.PublisherUnknown},
		Result: NewResultView(domain.PublisherUnknown, domain.PredictionResult{
			Probability: 0.36,
			Bucket:      domain.BucketHit,
		}),
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, FormTemplate, page, nil))

	out := buf.String()
	assert.Contains(t, out, "<title>Hit Predictor</title>")
	assert.Contains(t, out, `<div class="alert success">This game is likely to be a HIT!</div>`)
	assert.Contains(t, out, "36.0%")
	assert.Contains(t, out, `<option value="GBA" selected>Nintendo Game Boy Advance</option>`)
	assert.Contains(t, out, `<option value="Puzzle" selected>Puzzle</option>`)
	assert.Contains(t, out, `<option value="Unknown" selected>Unknown</option>`)
	assert.Contains(t, out, "<strong>Unknown</strong>")
}
