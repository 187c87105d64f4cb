package images

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"path/filepath"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/podcastlanding/pkg/assetstore"
	"github.com/adampresley/podcastlanding/pkg/services"
)

type ImageHandlers interface {
	PodcastImage(w http.ResponseWriter, r *http.Request)
	ReducedEffectImage(w http.ResponseWriter, r *http.Request)
}

type ImageControllerConfig struct {
	Folder string
	Store  assetstore.Store
}

type ImageController struct {
	folder string
	store  assetstore.Store
}

func NewImageController(config ImageControllerConfig) ImageController {
	return ImageController{
		folder: config.Folder,
		store:  config.Store,
	}
}

/*
GET /images/podcasts/{file}
*/
func (c ImageController) PodcastImage(w http.ResponseWriter, r *http.Request) {
	c.serve(w, r, c.folder)
}

/*
GET /images/podcasts/IE/{file}
*/
func (c ImageController) ReducedEffectImage(w http.ResponseWriter, r *http.Request) {
	c.serve(w, r, path.Join(c.folder, services.ReducedEffectFolder))
}

func (c ImageController) serve(w http.ResponseWriter, r *http.Request, folder string) {
	// Sanitize the filename to prevent directory traversal
	fileName := filepath.Base(httphelpers.GetFromRequest[string](r, "file"))

	if fileName == "." || fileName == "/" || fileName == ".." {
		httphelpers.WriteText(w, http.StatusNotFound, "Image not found")
		return
	}

	key := path.Join(folder, fileName)
	object, err := c.store.Get(r.Context(), key)

	if err != nil {
		slog.Error("error getting podcast image", "error", err, "key", key)
		httphelpers.WriteText(w, http.StatusNotFound, "Image not found")
		return
	}

	defer object.Body.Close()

	contentType := object.ContentType

	if contentType == "" {
		contentType = "image/jpeg"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")

	if object.Size > 0 {
		w.Header().Set("Content-Length", fmt.Sprintf("%d", object.Size))
	}

	if _, err = io.Copy(w, object.Body); err != nil {
		slog.Error("error streaming podcast image", "error", err, "key", key)
	}
}
