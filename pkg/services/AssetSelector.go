package services

import (
	"fmt"

	"github.com/adampresley/podcastlanding/pkg/models"
)

type AssetSelectorConfig struct {
	Images ImageCatalogs
}

type AssetSelector struct {
	images ImageCatalogs
}

func NewAssetSelector(config AssetSelectorConfig) AssetSelector {
	return AssetSelector{
		images: config.Images,
	}
}

/*
SelectAssets picks the teaser and background images for a podcast. The
teaser is always the standard image. The background is the pre-blurred
variant when the browser cannot apply a blur filter itself.
*/
func (s AssetSelector) SelectAssets(identifier string, reducedEffects bool) (models.AssetVariant, error) {
	foreground, ok := s.images.Standard[identifier]

	if !ok {
		return models.AssetVariant{}, fmt.Errorf("%w: '%s'", models.ErrAssetNotFound, identifier)
	}

	result := models.AssetVariant{
		Foreground: foreground,
		Background: foreground,
	}

	if reducedEffects {
		if result.Background, ok = s.images.Reduced[identifier]; !ok {
			return models.AssetVariant{}, fmt.Errorf("%w: '%s' (reduced effect variant)", models.ErrAssetNotFound, identifier)
		}
	}

	return result, nil
}
