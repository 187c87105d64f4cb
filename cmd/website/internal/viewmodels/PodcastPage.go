package viewmodels

import (
	"html/template"

	"github.com/adampresley/podcastlanding/pkg/models"
)

type PodcastPage struct {
	BaseViewModel

	Podcast         models.PodcastRecord
	BackgroundImage string
	Pages           [2]models.GalleryPage
	PlatformLinks   []models.PlatformLinkView
	Metadata        models.SocialMetadata
	HeadTags        template.HTML
	MoreLinkURL     string
}

type NotFoundPage struct {
	BaseViewModel

	Identifier  string
	MoreLinkURL string
}
