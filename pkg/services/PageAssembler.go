package services

import (
	"html/template"
	"log/slog"

	"github.com/adampresley/podcastlanding/pkg/locale"
	"github.com/adampresley/podcastlanding/pkg/models"
)

const (
	DefaultCanonicalURL = "https://wdr.de/0630"
	TwitterCardType     = "summary_large_image"
)

type PageAssemblerConfig struct {
	CanonicalURL        string
	DescriptionRenderer DescriptionRenderer
}

type PageAssembler struct {
	canonicalURL        string
	descriptionRenderer DescriptionRenderer
}

func NewPageAssembler(config PageAssemblerConfig) PageAssembler {
	if config.CanonicalURL == "" {
		config.CanonicalURL = DefaultCanonicalURL
	}

	return PageAssembler{
		canonicalURL:        config.CanonicalURL,
		descriptionRenderer: config.DescriptionRenderer,
	}
}

/*
AssemblePages returns the two gallery pages in swipe order: the teaser
image first, then the description.
*/
func (a PageAssembler) AssemblePages(podcast models.PodcastRecord, assets models.AssetVariant, labels locale.Labels) [2]models.GalleryPage {
	return [2]models.GalleryPage{
		{
			Tag:      models.PageTagImage,
			ImageSrc: assets.Foreground,
			ImageAlt: labels.TeaserAltPrefix + podcast.Title,
		},
		{
			Tag:             models.PageTagDetail,
			Description:     podcast.Description,
			DescriptionHTML: a.renderDescription(podcast),
		},
	}
}

func (a PageAssembler) renderDescription(podcast models.PodcastRecord) template.HTML {
	if a.descriptionRenderer == nil {
		return template.HTML(template.HTMLEscapeString(podcast.Description))
	}

	result, err := a.descriptionRenderer.Render(podcast.Description)

	if err != nil {
		slog.Error("error rendering description, falling back to plain text", "podcast", podcast.Identifier, "error", err)
		return template.HTML(template.HTMLEscapeString(podcast.Description))
	}

	return result
}

func (a PageAssembler) AssembleMetadata(podcast models.PodcastRecord, foreground, baseURL string) models.SocialMetadata {
	return models.SocialMetadata{
		Title:       podcast.Title + " " + podcast.Host,
		Description: podcast.Description,
		Image:       baseURL + foreground,
		URL:         a.canonicalURL,
		TwitterCard: TwitterCardType,
	}
}

func (a PageAssembler) PlatformLinks(podcast models.PodcastRecord) []models.PlatformLinkView {
	result := make([]models.PlatformLinkView, 0, len(podcast.Platforms))

	for _, platform := range podcast.Platforms {
		result = append(result, models.PlatformLinkView{
			Podcast:  podcast.Identifier,
			Platform: platform.Name,
			Label:    platform.Name.Label(),
			URL:      platform.URL,
		})
	}

	return result
}
