package models

import (
	"fmt"
	"html/template"
)

var (
	ErrAssetNotFound = fmt.Errorf("image asset not found")
)

type AssetVariant struct {
	Foreground string
	Background string
}

type PageTag string

const (
	PageTagImage  PageTag = "image"
	PageTagDetail PageTag = "detail"
)

type GalleryPage struct {
	Tag             PageTag
	ImageSrc        string
	ImageAlt        string
	Description     string
	DescriptionHTML template.HTML
}

type SocialMetadata struct {
	Title       string
	Description string
	Image       string
	URL         string
	TwitterCard string
}

type PlatformLinkView struct {
	Podcast  string
	Platform Platform
	Label    string
	URL      string
}
