package podcast

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/podcastlanding/cmd/website/internal/viewmodels"
	"github.com/adampresley/podcastlanding/pkg/locale"
	"github.com/adampresley/podcastlanding/pkg/models"
	"github.com/adampresley/podcastlanding/pkg/services"
)

type PodcastHandlers interface {
	PodcastPage(w http.ResponseWriter, r *http.Request)
}

type PodcastControllerConfig struct {
	AssetSelector  services.AssetSelector
	BaseURL        string
	CatalogService services.CatalogServicer
	LabelResolver  locale.Resolver
	MoreLinkURL    string
	PageAssembler  services.PageAssembler
	Renderer       rendering.TemplateRenderer
}

type PodcastController struct {
	assetSelector  services.AssetSelector
	baseURL        string
	catalogService services.CatalogServicer
	labelResolver  locale.Resolver
	moreLinkURL    string
	pageAssembler  services.PageAssembler
	renderer       rendering.TemplateRenderer
}

func NewPodcastController(config PodcastControllerConfig) PodcastController {
	return PodcastController{
		assetSelector:  config.AssetSelector,
		baseURL:        config.BaseURL,
		catalogService: config.CatalogService,
		labelResolver:  config.LabelResolver,
		moreLinkURL:    config.MoreLinkURL,
		pageAssembler:  config.PageAssembler,
		renderer:       config.Renderer,
	}
}

/*
GET /{name}
*/
func (c PodcastController) PodcastPage(w http.ResponseWriter, r *http.Request) {
	name := httphelpers.GetFromRequest[string](r, "name")
	viewData, err := c.buildPodcastPage(r, name)

	if errors.Is(err, models.ErrPodcastNotFound) {
		slog.Info("podcast not found", "name", name)

		notFound := viewmodels.NotFoundPage{
			BaseViewModel: viewData.BaseViewModel,
			Identifier:    name,
			MoreLinkURL:   c.moreLinkURL,
		}

		notFound.IsWarning = true
		notFound.Message = notFound.Labels.NotFound

		w.WriteHeader(http.StatusNotFound)
		c.renderer.Render("pages/not-found", notFound, w)
		return
	}

	if err != nil {
		slog.Error("error building podcast page", "name", name, "error", err)
		httphelpers.TextInternalServerError(w, "There was a problem showing this podcast.")
		return
	}

	c.renderer.Render("pages/podcast", viewData, w)
}

func (c PodcastController) buildPodcastPage(r *http.Request, name string) (viewmodels.PodcastPage, error) {
	var (
		err     error
		podcast *models.PodcastRecord
		assets  models.AssetVariant
	)

	viewData := viewmodels.PodcastPage{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx: httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{
				{Type: "module", Src: "/static/js/pages/podcast.js"},
			},
			Labels: c.labelResolver.Resolve(r.Header.Get("Accept-Language")),
		},
		MoreLinkURL: c.moreLinkURL,
	}

	if podcast, err = c.catalogService.Get(name); err != nil {
		return viewData, err
	}

	/*
	 * Every catalog entry was checked for both image variants at startup,
	 * so a miss here means the catalog and the asset store disagree.
	 */
	if assets, err = c.assetSelector.SelectAssets(podcast.Identifier, viewmodels.GetReducedEffectsFromContext(r)); err != nil {
		return viewData, fmt.Errorf("configuration error for podcast '%s': %w", podcast.Identifier, err)
	}

	viewData.Podcast = *podcast
	viewData.BackgroundImage = assets.Background
	viewData.Pages = c.pageAssembler.AssemblePages(*podcast, assets, viewData.Labels)
	viewData.PlatformLinks = c.pageAssembler.PlatformLinks(*podcast)
	viewData.Metadata = c.pageAssembler.AssembleMetadata(*podcast, assets.Foreground, c.baseURL)

	if viewData.HeadTags, err = services.RenderHeadTags(viewData.Metadata); err != nil {
		return viewData, err
	}

	return viewData, nil
}
