package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testCatalogYAML = `
zeitzeichen:
  title: ZeitZeichen
  host: WDR
  description: Tägliche Geschichtssendung
  platforms:
    - name: spotify
      url: https://open.spotify.com/x
"0630":
  title: "0630"
  host: WDR
  description: ""
  platforms:
    - name: apple
      url: https://podcasts.apple.com/0630
    - name: deezer
      url: https://www.deezer.com/0630
`

func newTestCatalog(t *testing.T) CatalogService {
	t.Helper()

	catalog, err := NewCatalogService(CatalogServiceConfig{
		Source: strings.NewReader(testCatalogYAML),
	})
	require.NoError(t, err)

	return catalog
}

func newTestImages() ImageCatalogs {
	return ImageCatalogs{
		Standard: map[string]string{
			"zeitzeichen": "/images/podcasts/zeitzeichen.jpg",
			"0630":        "/images/podcasts/0630.jpg",
		},
		Reduced: map[string]string{
			"zeitzeichen": "/images/podcasts/IE/zeitzeichen.jpg",
			"0630":        "/images/podcasts/IE/0630.jpg",
		},
	}
}
