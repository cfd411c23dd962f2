package maps

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// minRating drops poorly reviewed attractions.
const minRating = 4.0

// PlacesService handles interactions with Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API Key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// Attractions returns up to limit well rated tourist attraction names in city,
// in the order the API ranks them.
func (s *PlacesService) Attractions(ctx context.Context, city string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	r := &maps.TextSearchRequest{
		Query:    "tourist attractions in " + city,
		Language: "en",
		Region:   "ca",
		Type:     maps.PlaceTypeTouristAttraction,
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	seen := make(map[string]bool)
	var names []string
	for _, result := range resp.Results {
		if result.Rating < minRating {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(result.Name))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, result.Name)
		if len(names) >= limit {
			break
		}
	}
	return names, nil
}
