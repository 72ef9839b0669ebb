package rest

import (
	"gameHitPredictor/domain"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that also knows the closed-set tags
// platform, genre and publisher_tier.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("platform", func(fl validator.FieldLevel) bool {
		return domain.PlatformCode(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return domain.Genre(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("publisher_tier", func(fl validator.FieldLevel) bool {
		return domain.PublisherTier(fl.Field().String()).Valid()
	})
	return v
}
