package catalog

import (
	"context"
	"fmt"

	"gameHitPredictor/domain"
	"gameHitPredictor/pkg/logger"
)

type catalogService struct{}

func NewCatalogService() *catalogService {
	return &catalogService{}
}

func (s *catalogService) GetOptions(ctx context.Context) (domain.Options, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get options")
		return domain.Options{}, fmt.Errorf("context error: %w", err)
	}

	return domain.Options{
		Platforms:      domain.AllPlatforms(),
		Genres:         domain.AllGenres(),
		PublisherTiers: domain.AllPublisherTiers(),
	}, nil
}

func (s *catalogService) GetPlatform(ctx context.Context, code string) (domain.Platform, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get platform")
		return domain.Platform{}, fmt.Errorf("context error: %w", err)
	}

	platform, err := domain.ParsePlatformCode(code)
	if err != nil {
		logger.Warn("Platform not found", "code", code)
		return domain.Platform{}, err
	}

	name, err := domain.PlatformDisplayName(platform)
	if err != nil {
		return domain.Platform{}, err
	}

	return domain.Platform{Code: platform, DisplayName: name}, nil
}
