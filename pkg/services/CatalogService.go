package services

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/adampresley/podcastlanding/pkg/models"
	"gopkg.in/yaml.v3"
)

/*
Shared links sometimes carry a trailing POP DIRECTIONAL FORMATTING
character (U+202C) that browsers keep in the path.
*/
const popDirectionalFormatting = "\u202c"

type CatalogServicer interface {
	Get(identifier string) (*models.PodcastRecord, error)
	GetAll() []models.PodcastRecord
	Identifiers() []string
}

type CatalogServiceConfig struct {
	Source io.Reader
}

type CatalogService struct {
	podcasts map[string]models.PodcastRecord
}

func NewCatalogService(config CatalogServiceConfig) (CatalogService, error) {
	var (
		err      error
		b        []byte
		podcasts map[string]models.PodcastRecord
	)

	if b, err = io.ReadAll(config.Source); err != nil {
		return CatalogService{}, fmt.Errorf("error reading podcast catalog: %w", err)
	}

	if err = yaml.Unmarshal(b, &podcasts); err != nil {
		return CatalogService{}, fmt.Errorf("error parsing podcast catalog: %w", err)
	}

	result := CatalogService{
		podcasts: make(map[string]models.PodcastRecord, len(podcasts)),
	}

	for identifier, podcast := range podcasts {
		if err = validateRecord(identifier, podcast); err != nil {
			return CatalogService{}, err
		}

		podcast.Identifier = identifier
		result.podcasts[identifier] = podcast
	}

	return result, nil
}

// NormalizeIdentifier strips U+202C from a requested podcast identifier.
func NormalizeIdentifier(identifier string) string {
	return strings.ReplaceAll(identifier, popDirectionalFormatting, "")
}

func (s CatalogService) Get(identifier string) (*models.PodcastRecord, error) {
	podcast, ok := s.podcasts[NormalizeIdentifier(identifier)]

	if !ok {
		return nil, fmt.Errorf("%w: '%s'", models.ErrPodcastNotFound, identifier)
	}

	return &podcast, nil
}

func (s CatalogService) GetAll() []models.PodcastRecord {
	result := make([]models.PodcastRecord, 0, len(s.podcasts))

	for _, identifier := range s.Identifiers() {
		result = append(result, s.podcasts[identifier])
	}

	return result
}

func (s CatalogService) Identifiers() []string {
	result := make([]string, 0, len(s.podcasts))

	for identifier := range s.podcasts {
		result = append(result, identifier)
	}

	sort.Strings(result)
	return result
}

func validateRecord(identifier string, podcast models.PodcastRecord) error {
	if strings.TrimSpace(identifier) == "" {
		return fmt.Errorf("podcast catalog contains an empty identifier")
	}

	if podcast.Title == "" {
		return fmt.Errorf("podcast '%s' has no title", identifier)
	}

	for index, platform := range podcast.Platforms {
		if !platform.Name.IsValid() {
			return fmt.Errorf("podcast '%s', platform %d: %w '%s'", identifier, index, models.ErrUnknownPlatform, platform.Name)
		}

		if platform.URL == "" {
			return fmt.Errorf("podcast '%s', platform '%s' has no URL", identifier, platform.Name)
		}
	}

	return nil
}
