package viewmodels

import (
	"context"
	"net/http"

	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/podcastlanding/pkg/locale"
)

type contextKey string

const reducedEffectsKey contextKey = "reducedEffects"

type BaseViewModel struct {
	Message            string
	IsError            bool
	IsWarning          bool
	IsHtmx             bool
	JavascriptIncludes []rendering.JavascriptInclude
	Labels             locale.Labels
}

func ContextWithReducedEffects(ctx context.Context, reducedEffects bool) context.Context {
	return context.WithValue(ctx, reducedEffectsKey, reducedEffects)
}

/*
GetReducedEffectsFromContext returns true when the requesting browser
cannot apply the CSS blur filter. Set by the rendering capability
middleware.
*/
func GetReducedEffectsFromContext(r *http.Request) bool {
	if result, ok := r.Context().Value(reducedEffectsKey).(bool); ok {
		return result
	}

	return false
}
