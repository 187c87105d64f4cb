package services

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

type DescriptionRenderer interface {
	Render(description string) (template.HTML, error)
}

/*
MarkdownDescriptionRenderer renders catalog descriptions as Markdown and
strips anything beyond basic text formatting and links.
*/
type MarkdownDescriptionRenderer struct {
	markdown goldmark.Markdown
	policy   *bluemonday.Policy
}

func NewMarkdownDescriptionRenderer() MarkdownDescriptionRenderer {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("p", "br", "em", "strong", "ul", "ol", "li")
	policy.AllowAttrs("href").OnElements("a")
	policy.AllowStandardURLs()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return MarkdownDescriptionRenderer{
		markdown: goldmark.New(),
		policy:   policy,
	}
}

func (r MarkdownDescriptionRenderer) Render(description string) (template.HTML, error) {
	var (
		buf bytes.Buffer
	)

	if err := r.markdown.Convert([]byte(description), &buf); err != nil {
		return "", fmt.Errorf("error rendering podcast description: %w", err)
	}

	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}
