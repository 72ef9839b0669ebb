package domain

// Options lists every value the form can offer.
type Options struct {
	Platforms      []Platform      `json:"platforms"`
	Genres         []Genre         `json:"genres"`
	PublisherTiers []PublisherTier `json:"publisher_tiers"`
}
