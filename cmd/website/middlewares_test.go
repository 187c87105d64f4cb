package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adampresley/podcastlanding/cmd/website/internal/viewmodels"
	"github.com/adampresley/podcastlanding/pkg/capability"
	"github.com/stretchr/testify/assert"
)

func TestRenderingCapabilityMiddleware(t *testing.T) {
	middleware := newRenderingCapabilityMiddleware(capability.NewDetector(capability.DefaultLegacyEngineSignatures))

	tests := []struct {
		name      string
		userAgent string
		want      bool
	}{
		{"ie11", "Mozilla/5.0 (Windows NT 10.0; Trident/7.0; rv:11.0) like Gecko", true},
		{"firefox", "Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bool

			handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = viewmodels.GetReducedEffectsFromContext(r)
			}))

			req := httptest.NewRequest(http.MethodGet, "/zeitzeichen", nil)
			req.Header.Set("User-Agent", tt.userAgent)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, "User-Agent", rec.Header().Get("Vary"))
		})
	}
}

func TestReducedEffectsDefaultsToFalse(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/zeitzeichen", nil)
	assert.False(t, viewmodels.GetReducedEffectsFromContext(req))
}

func TestRequestLoggerMiddlewarePassesStatus(t *testing.T) {
	handler := requestLoggerMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
