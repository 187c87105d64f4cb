package services

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/adampresley/podcastlanding/pkg/models"
)

var headTagsTemplate = template.Must(template.New("headtags").Parse(
	`<meta property="og:title" content="{{.Title}}">
<meta property="og:description" content="{{.Description}}">
<meta property="og:image" content="{{.Image}}">
<meta property="og:url" content="{{.URL}}">
<meta name="twitter:card" content="{{.TwitterCard}}">
`))

// RenderHeadTags renders social sharing metadata as document head meta tags.
func RenderHeadTags(metadata models.SocialMetadata) (template.HTML, error) {
	var (
		sb strings.Builder
	)

	if err := headTagsTemplate.Execute(&sb, metadata); err != nil {
		return "", fmt.Errorf("error rendering head tags: %w", err)
	}

	return template.HTML(sb.String()), nil
}
