package main

import (
	"bytes"
	"context"
	"embed"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/adampresley/adamgokit/awsconfig"
	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/mux"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/adamgokit/retrier"
	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/podcastlanding/cmd/website/internal/cache"
	"github.com/adampresley/podcastlanding/cmd/website/internal/configuration"
	"github.com/adampresley/podcastlanding/cmd/website/internal/images"
	"github.com/adampresley/podcastlanding/cmd/website/internal/podcast"
	"github.com/adampresley/podcastlanding/pkg/assetstore"
	"github.com/adampresley/podcastlanding/pkg/capability"
	"github.com/adampresley/podcastlanding/pkg/locale"
	"github.com/adampresley/podcastlanding/pkg/services"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

const imageURLPrefix = "/images/podcasts"

var (
	Version string = "development"
	appName string = "podcastlanding"

	//go:embed app
	appFS embed.FS

	//go:embed data/podcasts.yaml
	embeddedCatalog []byte

	config configuration.Config

	/* Services */
	assetSelector      services.AssetSelector
	assetStore         assetstore.Store
	blurVariantService cache.BlurVariantCreator
	catalogService     services.CatalogServicer
	imageCatalogs      services.ImageCatalogs
	pageAssembler      services.PageAssembler
	renderer           rendering.TemplateRenderer

	/* Controllers */
	imageController   images.ImageHandlers
	podcastController podcast.PodcastHandlers
)

func main() {
	var (
		err error
	)

	config = configuration.LoadConfig()
	setupLogger(&config, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("host", config.Host),
		slog.String("assetSource", config.AssetSource),
		slog.String("baseURL", config.BaseURL()),
	)

	slog.Debug("setting up...")

	shutdownCtx, cancel := context.WithCancel(context.Background())

	/*
	 * Setup services
	 */
	if catalogService, err = loadCatalog(); err != nil {
		panic(err)
	}

	assetStore = setupAssetStore()

	blurVariantService = cache.NewBlurVariantService(cache.BlurVariantCreatorConfig{
		CatalogService:     catalogService,
		MaxWorkers:         config.MaxBlurWorkers,
		PodcastImageFolder: config.PodcastImageFolder,
		ShutdownCtx:        shutdownCtx,
		Store:              assetStore,
	})

	if config.GenerateBlurVariants {
		blurVariantService.CreateVariants()
	}

	imageCatalogs, err = services.LoadImageCatalogs(services.ImageCatalogsConfig{
		Folder:    config.PodcastImageFolder,
		Store:     assetStore,
		URLPrefix: imageURLPrefix,
	})

	if err != nil {
		panic(err)
	}

	if err = imageCatalogs.Validate(catalogService.Identifiers()); err != nil {
		slog.Error("podcast catalog and images do not match", "error", err)
		os.Exit(1)
	}

	assetSelector = services.NewAssetSelector(services.AssetSelectorConfig{
		Images: imageCatalogs,
	})

	pageAssembler = services.NewPageAssembler(services.PageAssemblerConfig{
		CanonicalURL:        config.CanonicalURL,
		DescriptionRenderer: services.NewMarkdownDescriptionRenderer(),
	})

	renderer, err = rendering.NewGoTemplateRenderer(rendering.GoTemplateRendererConfig{
		TemplateDir:       "app",
		TemplateExtension: ".html",
		TemplateFS:        appFS,
		PagesDir:          "pages",
	})

	if err != nil {
		panic(err)
	}

	/*
	 * Setup controllers
	 */
	imageController = images.NewImageController(images.ImageControllerConfig{
		Folder: config.PodcastImageFolder,
		Store:  assetStore,
	})

	podcastController = podcast.NewPodcastController(podcast.PodcastControllerConfig{
		AssetSelector:  assetSelector,
		BaseURL:        config.BaseURL(),
		CatalogService: catalogService,
		LabelResolver:  locale.NewResolver(config.DefaultLocale),
		MoreLinkURL:    config.MoreLinkURL,
		PageAssembler:  pageAssembler,
		Renderer:       renderer,
	})

	/*
	 * Setup router and http server
	 */
	slog.Debug("setting up routes...")

	renderingCapabilityMiddleware := newRenderingCapabilityMiddleware(
		capability.NewDetector(capability.ParseSignatures(config.LegacyEngineSignatures)),
	)

	pageMiddlewares := []mux.MiddlewareFunc{
		chimiddleware.RequestID,
		chimiddleware.Recoverer,
		requestLoggerMiddleware,
		renderingCapabilityMiddleware,
	}

	imageMiddlewares := []mux.MiddlewareFunc{
		chimiddleware.RequestID,
		chimiddleware.Recoverer,
	}

	routes := []mux.Route{
		{Path: "GET /heartbeat", HandlerFunc: heartbeat},
		{Path: "GET /{name}", HandlerFunc: podcastController.PodcastPage, Middlewares: pageMiddlewares},
		{Path: "GET " + imageURLPrefix + "/{file}", HandlerFunc: imageController.PodcastImage, Middlewares: imageMiddlewares},
		{Path: "GET " + imageURLPrefix + "/" + services.ReducedEffectFolder + "/{file}", HandlerFunc: imageController.ReducedEffectImage, Middlewares: imageMiddlewares},
	}

	routerConfig := mux.RouterConfig{
		Address:              config.Host,
		Debug:                Version == "development",
		ServeStaticContent:   true,
		StaticContentRootDir: "app",
		StaticContentPrefix:  "/static/",
		StaticFS:             appFS,
		HttpWriteTimeout:     60,
	}

	m := mux.SetupRouter(routerConfig, routes)
	httpServer, quit := mux.SetupServer(routerConfig, m)

	/*
	 * Keep blur variants in step with replaced images
	 */
	if config.GenerateBlurVariants {
		setupBlurVariantCreator(shutdownCtx)
	}

	/*
	 * Wait for graceful shutdown
	 */
	slog.Info("server started")

	<-quit

	cancel()
	mux.Shutdown(httpServer)
	slog.Info("server stopped")
}

func heartbeat(w http.ResponseWriter, r *http.Request) {
	httphelpers.TextOK(w, "OK")
}

func loadCatalog() (services.CatalogService, error) {
	var (
		source io.Reader = bytes.NewReader(embeddedCatalog)
	)

	if config.CatalogFile != "" {
		f, err := os.Open(config.CatalogFile)

		if err != nil {
			return services.CatalogService{}, err
		}

		defer f.Close()
		source = f
	}

	result, err := services.NewCatalogService(services.CatalogServiceConfig{
		Source: source,
	})

	if err == nil {
		slog.Info("podcast catalog loaded", "podcasts", len(result.Identifiers()), "file", config.CatalogFile)
	}

	return result, err
}

func setupAssetStore() assetstore.Store {
	var (
		err error
	)

	if config.AssetSource != "s3" {
		return assetstore.NewDirStore(assetstore.DirStoreConfig{
			Root: config.AssetDir,
		})
	}

	awsConfig := &awsconfig.Config{
		Endpoint:        config.AwsEndpointUrl,
		Region:          config.AwsRegion,
		AccessKeyID:     config.AwsAccessKeyId,
		SecretAccessKey: config.AwsSecretAccessKey,
	}

	retrier.Retry(func() error {
		if err = awsConfig.Load(); err != nil {
			slog.Error("failed to load AWS config. trying again", "error", err)
			return err
		}

		return nil
	})

	if err != nil {
		panic(err)
	}

	s3Client, err := s3.NewClient(awsConfig)

	if err != nil {
		panic(err)
	}

	store := assetstore.NewS3Store(assetstore.S3StoreConfig{
		Bucket:   config.AwsBucket,
		Region:   config.AwsRegion,
		S3Client: s3Client,
	})

	if err = store.EnsureBucketExists(); err != nil {
		slog.Error("error ensuring bucket exists. aborting", "bucket", config.AwsBucket, "error", err)
		os.Exit(1)
	}

	return store
}

func setupBlurVariantCreator(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		runOnTicks(ctx, ticker.C, func() {
			blurVariantService.CreateVariants()
		})
	}()
}

/*
runOnTicks calls run once per tick until ctx is done. Runs are sequential.
A tick buffered while run was working is discarded, so a run that outlasts
the interval is not followed by another one right away.
*/
func runOnTicks(ctx context.Context, ticks <-chan time.Time, run func()) {
	for {
		select {
		case <-ctx.Done():
			return

		case <-ticks:
			run()

			select {
			case <-ticks:
			default:
			}
		}
	}
}
