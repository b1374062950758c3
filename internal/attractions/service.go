package attractions

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"googlemaps.github.io/maps"
)

// Highlight is a simplified sightseeing result.
type Highlight struct {
	Name             string
	Rating           float32
	UserRatingsTotal int
}

// Service handles interactions with Google Places API to surface a few
// well-rated sights per candidate destination.
type Service struct {
	client *maps.Client
	log    *zap.Logger
}

// NewService creates a Service with the given API key. An empty key returns a
// nil Service, which disables attraction enrichment entirely.
func NewService(apiKey string, log *zap.Logger) (*Service, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{client: client, log: log}, nil
}

// Enrichment looks up top attractions for each destination and renders them as
// a prompt block. Per-destination failures are skipped; if nothing succeeds
// the result is an empty string.
func (s *Service) Enrichment(ctx context.Context, destinations []string) string {
	if s == nil {
		return ""
	}

	var b strings.Builder
	found := false
	for _, dest := range destinations {
		highlights, err := s.topHighlights(ctx, dest)
		if err != nil {
			s.log.Debug("attractions lookup skipped", zap.String("destination", dest), zap.Error(err))
			continue
		}
		if len(highlights) == 0 {
			continue
		}

		if !found {
			b.WriteString("SIGHTSEEING HIGHLIGHTS (from Google Places):\n")
			found = true
		}
		names := make([]string, 0, len(highlights))
		for _, h := range highlights {
			names = append(names, fmt.Sprintf("%s (%.1f, %d reviews)", h.Name, h.Rating, h.UserRatingsTotal))
		}
		fmt.Fprintf(&b, "- %s: %s\n", dest, strings.Join(names, ", "))
	}

	if !found {
		return ""
	}
	return b.String()
}

// topHighlights returns up to three well-rated attractions for a destination.
func (s *Service) topHighlights(ctx context.Context, destination string) ([]Highlight, error) {
	// Destinations are "City,Country" keys; the city alone makes a better
	// Places query.
	city := destination
	if idx := strings.Index(destination, ","); idx > 0 {
		city = destination[:idx]
	}

	r := &maps.TextSearchRequest{
		Query: fmt.Sprintf("top attractions in %s", city),
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []Highlight
	for _, result := range resp.Results {
		if result.Rating < 4.0 {
			continue
		}
		results = append(results, Highlight{
			Name:             result.Name,
			Rating:           result.Rating,
			UserRatingsTotal: result.UserRatingsTotal,
		})
		if len(results) >= 3 {
			break
		}
	}

	return results, nil
}
