package cache

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"log/slog"
	"path"

	"github.com/adampresley/podcastlanding/pkg/assetstore"
	"github.com/adampresley/podcastlanding/pkg/services"
	"github.com/alitto/pond/v2"
	"github.com/nfnt/resize"
)

// blurSize is the long edge, in pixels, an image is shrunk to before it is scaled back up.
const blurSize uint = 32

type BlurVariantCreator interface {
	CreateVariants() int
}

type BlurVariantCreatorConfig struct {
	CatalogService     services.CatalogServicer
	MaxWorkers         int
	PodcastImageFolder string
	ShutdownCtx        context.Context
	Store              assetstore.Store
}

/*
BlurVariantService creates the pre-blurred background images served to
browsers without CSS blur support, for every podcast whose variant is
missing or older than its standard image.
*/
type BlurVariantService struct {
	catalogService     services.CatalogServicer
	maxWorkers         int
	podcastImageFolder string
	shutdownCtx        context.Context
	store              assetstore.Store
}

func NewBlurVariantService(config BlurVariantCreatorConfig) BlurVariantService {
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = 1
	}

	if config.ShutdownCtx == nil {
		config.ShutdownCtx = context.Background()
	}

	return BlurVariantService{
		catalogService:     config.CatalogService,
		maxWorkers:         config.MaxWorkers,
		podcastImageFolder: config.PodcastImageFolder,
		shutdownCtx:        config.ShutdownCtx,
		store:              config.Store,
	}
}

// CreateVariants returns the number of variants written.
func (c BlurVariantService) CreateVariants() int {
	slog.Info("starting blur variant creation...")

	pool := pond.NewResultPool[bool](c.maxWorkers, pond.WithContext(c.shutdownCtx))
	group := pool.NewGroup()

	for _, identifier := range c.catalogService.Identifiers() {
		group.Submit(func() bool {
			return c.createVariantIfStale(identifier)
		})
	}

	results, err := group.Wait()
	pool.StopAndWait()

	if err != nil {
		slog.Error("blur variant creation interrupted", "error", err)
	}

	created := 0

	for _, ok := range results {
		if ok {
			created++
		}
	}

	slog.Info("blur variant creation finished", "created", created)
	return created
}

func (c BlurVariantService) createVariantIfStale(identifier string) bool {
	var (
		err      error
		original *assetstore.Object
	)

	l := slog.With("podcast", identifier)

	if original, err = c.findStandardImage(identifier); err != nil {
		l.Error("error looking up standard image", "error", err)
		return false
	}

	if original == nil {
		l.Warn("podcast has no standard image, cannot create blur variant")
		return false
	}

	variantKey := path.Join(c.podcastImageFolder, services.ReducedEffectFolder, path.Base(original.Key))

	if !c.isVariantStale(original, variantKey) {
		return false
	}

	l.Info("creating blur variant...", "key", variantKey)

	if err = c.createVariant(original.Key, variantKey); err != nil {
		l.Error("error creating blur variant", "key", variantKey, "error", err)
		return false
	}

	return true
}

func (c BlurVariantService) findStandardImage(identifier string) (*assetstore.Object, error) {
	for _, ext := range []string{".jpg", ".jpeg"} {
		obj, err := c.store.Stat(path.Join(c.podcastImageFolder, identifier+ext))

		if err != nil {
			return nil, err
		}

		if obj != nil {
			return obj, nil
		}
	}

	return nil, nil
}

func (c BlurVariantService) isVariantStale(original *assetstore.Object, variantKey string) bool {
	stat, err := c.store.Stat(variantKey)

	if err != nil {
		slog.Error("error retrieving metadata for blur variant", "key", variantKey, "error", err)
		return false
	}

	return stat == nil || stat.LastModified.Before(original.LastModified)
}

func (c BlurVariantService) createVariant(originalKey, variantKey string) error {
	var (
		err error
		img image.Image
		buf bytes.Buffer
	)

	original, err := c.store.Get(c.shutdownCtx, originalKey)

	if err != nil {
		return fmt.Errorf("error retrieving original image %s: %w", originalKey, err)
	}

	defer original.Body.Close()

	if img, _, err = image.Decode(original.Body); err != nil {
		return fmt.Errorf("error decoding image %s: %w", originalKey, err)
	}

	if err = jpeg.Encode(&buf, Blur(img), &jpeg.Options{Quality: 85}); err != nil {
		return fmt.Errorf("error encoding blur variant: %w", err)
	}

	if err = c.store.Put(variantKey, &buf); err != nil {
		return fmt.Errorf("error uploading blur variant: %w", err)
	}

	return nil
}

/*
Blur shrinks the image so its long edge is blurSize pixels and scales it
back to the original dimensions. The bilinear upscale smears the
remaining detail into a soft background.
*/
func Blur(img image.Image) image.Image {
	bounds := img.Bounds()
	width := uint(bounds.Dx())
	height := uint(bounds.Dy())

	if width == 0 || height == 0 {
		return img
	}

	var small image.Image

	if width > height {
		small = resize.Resize(blurSize, 0, img, resize.Bilinear)
	} else {
		small = resize.Resize(0, blurSize, img, resize.Bilinear)
	}

	return resize.Resize(width, height, small, resize.Bilinear)
}
