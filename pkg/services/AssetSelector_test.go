package services

import (
	"testing"

	"github.com/adampresley/podcastlanding/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectAssetsWithBlurSupport(t *testing.T) {
	images := newTestImages()
	selector := NewAssetSelector(AssetSelectorConfig{Images: images})

	for identifier := range images.Standard {
		got, err := selector.SelectAssets(identifier, false)
		require.NoError(t, err)

		assert.Equal(t, images.Standard[identifier], got.Foreground)
		assert.Equal(t, images.Standard[identifier], got.Background)
	}
}

func TestSelectAssetsWithReducedEffects(t *testing.T) {
	images := newTestImages()
	selector := NewAssetSelector(AssetSelectorConfig{Images: images})

	for identifier := range images.Standard {
		got, err := selector.SelectAssets(identifier, true)
		require.NoError(t, err)

		assert.Equal(t, images.Standard[identifier], got.Foreground)
		assert.Equal(t, images.Reduced[identifier], got.Background)
	}
}

func TestSelectAssetsUnknownIdentifier(t *testing.T) {
	selector := NewAssetSelector(AssetSelectorConfig{Images: newTestImages()})

	_, err := selector.SelectAssets("unknown", false)
	assert.ErrorIs(t, err, models.ErrAssetNotFound)
}

func TestSelectAssetsMissingReducedVariant(t *testing.T) {
	images := newTestImages()
	delete(images.Reduced, "0630")
	selector := NewAssetSelector(AssetSelectorConfig{Images: images})

	_, err := selector.SelectAssets("0630", true)
	assert.ErrorIs(t, err, models.ErrAssetNotFound)

	_, err = selector.SelectAssets("0630", false)
	assert.NoError(t, err)
}

func TestSelectAssetsIsIdempotent(t *testing.T) {
	selector := NewAssetSelector(AssetSelectorConfig{Images: newTestImages()})

	first, err := selector.SelectAssets("zeitzeichen", true)
	require.NoError(t, err)
	second, err := selector.SelectAssets("zeitzeichen", true)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
