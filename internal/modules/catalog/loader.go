// README: JSON catalog decoding and the file-backed destination source.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"tripfit/internal/modules/pricing"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// Decode reads a JSON array of destinations and validates every record.
func Decode(r io.Reader) ([]pricing.Destination, error) {
	var dests []pricing.Destination
	if err := json.NewDecoder(r).Decode(&dests); err != nil {
		if errors.Is(err, pricing.ErrMalformedDestination) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	for i, d := range dests {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("destination %d: %w", i, err)
		}
	}
	return dests, nil
}

func LoadFile(path string) ([]pricing.Destination, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dests, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return dests, nil
}

// FileSource serves a catalog decoded once at construction.
type FileSource struct {
	dests []pricing.Destination
}

func NewFileSource(path string) (*FileSource, error) {
	dests, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return &FileSource{dests: dests}, nil
}

func NewStaticSource(dests []pricing.Destination) *FileSource {
	return &FileSource{dests: dests}
}

func (s *FileSource) ListFrom(_ context.Context, from string) ([]pricing.Destination, error) {
	var out []pricing.Destination
	for _, d := range s.dests {
		if d.From == from {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *FileSource) Cities(_ context.Context) ([]string, error) {
	return distinctCities(s.dests), nil
}

func distinctCities(dests []pricing.Destination) []string {
	seen := make(map[string]bool)
	var cities []string
	for _, d := range dests {
		if d.From == "" || seen[d.From] {
			continue
		}
		seen[d.From] = true
		cities = append(cities, d.From)
	}
	sort.Strings(cities)
	return cities
}
