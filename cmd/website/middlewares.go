package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/adampresley/podcastlanding/cmd/website/internal/viewmodels"
	"github.com/adampresley/podcastlanding/pkg/capability"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

/*
newRenderingCapabilityMiddleware flags requests from browsers that cannot
blur the background with CSS. Handlers read the flag with
viewmodels.GetReducedEffectsFromContext.
*/
func newRenderingCapabilityMiddleware(detector capability.Detector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "User-Agent")

			ctx := viewmodels.ContextWithReducedEffects(r.Context(), detector.NeedsReducedEffects(r.UserAgent()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requestLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int64("durationMs", time.Since(start).Milliseconds()),
			slog.String("requestID", chimiddleware.GetReqID(r.Context())),
		)
	})
}
