package models

import (
	"fmt"
)

var (
	ErrPodcastNotFound = fmt.Errorf("podcast not found")
	ErrUnknownPlatform = fmt.Errorf("unknown platform")
)

type PodcastRecord struct {
	Identifier  string         `yaml:"-"`
	Title       string         `yaml:"title"`
	Host        string         `yaml:"host"`
	Description string         `yaml:"description"`
	Platforms   []PlatformLink `yaml:"platforms"`
}

type PlatformLink struct {
	Name Platform `yaml:"name"`
	URL  string   `yaml:"url"`
}
