package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/podcastlanding/cmd/website/internal/podcast"
	"github.com/adampresley/podcastlanding/pkg/locale"
	"github.com/adampresley/podcastlanding/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pagesTestCatalog = `
zeitzeichen:
  title: ZeitZeichen
  host: WDR
  description: Tägliche *Geschichtssendung*
  platforms:
    - name: apple
      url: https://podcasts.apple.com/x
    - name: spotify
      url: https://open.spotify.com/x
`

const pagesTestMoreLink = "https://podcasts.example.com/all"

func newPagesTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()

	catalog, err := services.NewCatalogService(services.CatalogServiceConfig{
		Source: strings.NewReader(pagesTestCatalog),
	})
	require.NoError(t, err)

	pageRenderer, err := rendering.NewGoTemplateRenderer(rendering.GoTemplateRendererConfig{
		TemplateDir:       "app",
		TemplateExtension: ".html",
		TemplateFS:        appFS,
		PagesDir:          "pages",
	})
	require.NoError(t, err)

	controller := podcast.NewPodcastController(podcast.PodcastControllerConfig{
		AssetSelector: services.NewAssetSelector(services.AssetSelectorConfig{
			Images: services.ImageCatalogs{
				Standard: map[string]string{"zeitzeichen": "/images/podcasts/zeitzeichen.jpg"},
				Reduced:  map[string]string{"zeitzeichen": "/images/podcasts/IE/zeitzeichen.jpg"},
			},
		}),
		BaseURL:        "https://podcasts.example.com",
		CatalogService: catalog,
		LabelResolver:  locale.NewResolver("en"),
		MoreLinkURL:    pagesTestMoreLink,
		PageAssembler: services.NewPageAssembler(services.PageAssemblerConfig{
			DescriptionRenderer: services.NewMarkdownDescriptionRenderer(),
		}),
		Renderer: pageRenderer,
	})

	router := http.NewServeMux()
	router.HandleFunc("GET /{name}", controller.PodcastPage)
	return router
}

func TestPodcastPageRendersGallery(t *testing.T) {
	router := newPagesTestRouter(t)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/zeitzeichen", nil))
	require.Equal(t, http.StatusOK, w.Code)

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)

	pages := doc.Find(".gallery__page")
	require.Equal(t, 2, pages.Length())
	assert.True(t, pages.Eq(0).HasClass("gallery__page--image"))
	assert.True(t, pages.Eq(1).HasClass("gallery__page--detail"))

	teaser := pages.Eq(0).Find("img")
	assert.Equal(t, "/images/podcasts/zeitzeichen.jpg", teaser.AttrOr("src", ""))
	assert.Equal(t, "Teaser image ZeitZeichen", teaser.AttrOr("alt", ""))
	assert.Equal(t, "Geschichtssendung", pages.Eq(1).Find("em").Text())

	assert.Contains(t, doc.Find(".background").AttrOr("style", ""), "/images/podcasts/zeitzeichen.jpg")

	head := doc.Find("head")
	assert.Equal(t, "ZeitZeichen WDR", head.Find(`meta[property="og:title"]`).AttrOr("content", ""))
	assert.Equal(t, "https://podcasts.example.com/images/podcasts/zeitzeichen.jpg", head.Find(`meta[property="og:image"]`).AttrOr("content", ""))
	assert.Equal(t, services.DefaultCanonicalURL, head.Find(`meta[property="og:url"]`).AttrOr("content", ""))
	assert.Equal(t, 1, head.Find(`meta[property="og:description"]`).Length())
	assert.Equal(t, services.TwitterCardType, head.Find(`meta[name="twitter:card"]`).AttrOr("content", ""))

	links := doc.Find("a[data-platform]")
	require.Equal(t, 2, links.Length())
	assert.Equal(t, "apple", links.Eq(0).AttrOr("data-platform", ""))
	assert.Equal(t, "https://open.spotify.com/x", links.Eq(1).AttrOr("href", ""))

	assert.Equal(t, pagesTestMoreLink, doc.Find("#alle").AttrOr("href", ""))
}

func TestPodcastPageRendersNotFound(t *testing.T) {
	router := newPagesTestRouter(t)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)

	assert.Equal(t, "This podcast could not be found.", strings.TrimSpace(doc.Find(".message").Text()))
	assert.Equal(t, pagesTestMoreLink, doc.Find(".podcast__wrapper__content__details--more").AttrOr("href", ""))
	assert.Equal(t, 0, doc.Find(".gallery__page").Length())
}
