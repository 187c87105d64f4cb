package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseURLPrefersDeployURL(t *testing.T) {
	c := Config{DeployURL: "https://preview.example.com", SiteURL: "https://example.com"}
	assert.Equal(t, "https://preview.example.com", c.BaseURL())

	c.DeployURL = ""
	assert.Equal(t, "https://example.com", c.BaseURL())
}
