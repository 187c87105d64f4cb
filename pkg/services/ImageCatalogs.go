package services

import (
	"fmt"
	"path"
	"strings"

	"github.com/adampresley/adamgokit/slices"
	"github.com/adampresley/podcastlanding/pkg/assetstore"
)

const ReducedEffectFolder = "IE"

var validImageExtensions = []string{".jpg", ".jpeg"}

/*
ImageCatalogs maps podcast identifiers to the URL paths of their images.
Standard holds the regular teaser images, Reduced the pre-blurred
variants for browsers that cannot blur with CSS.
*/
type ImageCatalogs struct {
	Standard map[string]string
	Reduced  map[string]string
}

type ImageCatalogsConfig struct {
	Folder    string
	Store     assetstore.Store
	URLPrefix string
}

func LoadImageCatalogs(config ImageCatalogsConfig) (ImageCatalogs, error) {
	var (
		err    error
		result ImageCatalogs
	)

	folder := strings.Trim(config.Folder, "/")
	urlPrefix := "/" + strings.Trim(config.URLPrefix, "/")

	if result.Standard, err = loadImageCatalog(config.Store, folder, urlPrefix); err != nil {
		return result, err
	}

	if result.Reduced, err = loadImageCatalog(
		config.Store,
		path.Join(folder, ReducedEffectFolder),
		path.Join(urlPrefix, ReducedEffectFolder),
	); err != nil {
		return result, err
	}

	return result, nil
}

func loadImageCatalog(store assetstore.Store, folder, urlPrefix string) (map[string]string, error) {
	objects, err := store.List(folder)

	if err != nil {
		return nil, fmt.Errorf("error listing images in '%s': %w", folder, err)
	}

	result := make(map[string]string, len(objects))

	for _, obj := range objects {
		fileName := path.Base(obj.Key)
		ext := path.Ext(fileName)

		if !slices.IsInSlice(strings.ToLower(ext), validImageExtensions) {
			continue
		}

		result[strings.TrimSuffix(fileName, ext)] = path.Join(urlPrefix, fileName)
	}

	return result, nil
}

/*
Validate reports every identifier that is missing either image variant.
A missing image is a configuration error.
*/
func (c ImageCatalogs) Validate(identifiers []string) error {
	missing := []string{}

	for _, identifier := range identifiers {
		if _, ok := c.Standard[identifier]; !ok {
			missing = append(missing, identifier)
			continue
		}

		if _, ok := c.Reduced[identifier]; !ok {
			missing = append(missing, path.Join(ReducedEffectFolder, identifier))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing podcast images: %s", strings.Join(missing, ", "))
	}

	return nil
}
