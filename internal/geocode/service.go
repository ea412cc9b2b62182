package geocode

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/imkaran7/vedic-chart-api/internal/config"
	"github.com/imkaran7/vedic-chart-api/internal/providers/nominatim"
	"github.com/imkaran7/vedic-chart-api/internal/types"
)

// TzidUnknown is the timezone value returned with every geocode result.
// This service never resolves timezones; natal-chart callers supply a tzid
// from their own source.
const TzidUnknown = "UNKNOWN"

var (
	// ErrPlaceNotFound indicates the provider returned no match for the queried place.
	ErrPlaceNotFound = errors.New("place not found")
	// ErrProviderUnavailable indicates the geocoding provider could not be reached
	// or answered abnormally.
	ErrProviderUnavailable = errors.New("geocoding provider unavailable")
)

// Service resolves free-text place names to coordinates.
type Service interface {
	// Resolve looks up a place name and returns its coordinates and the
	// provider's canonical display string.
	Resolve(place string) (*types.GeocodeResult, error)
}

// ForwardGeocodeProvider fetches candidate matches for a free-text place query.
type ForwardGeocodeProvider interface {
	Search(place string) ([]nominatim.PlaceAPIResponse, error)
}

// geocodeService implements the Service interface
type geocodeService struct {
	provider ForwardGeocodeProvider
	logger   *slog.Logger
}

// NewGeocodeService creates a new geocode service backed by a real Nominatim client.
func NewGeocodeService(cfg config.GeocoderConfig, logger *slog.Logger) Service {
	return NewGeocodeServiceWithProvider(logger, nominatim.NewClient(cfg, logger))
}

// NewGeocodeServiceWithProvider creates a new geocode service with a custom provider.
// This is useful for testing with mock providers.
func NewGeocodeServiceWithProvider(logger *slog.Logger, provider ForwardGeocodeProvider) Service {
	return &geocodeService{
		provider: provider,
		logger:   logger.With("component", "geocode-service"),
	}
}

// Resolve queries the forward geocoding provider and translates the best
// match into a domain result.
func (s *geocodeService) Resolve(place string) (*types.GeocodeResult, error) {
	// The provider rejects empty queries outright; treat them as a miss
	// rather than a provider fault.
	if strings.TrimSpace(place) == "" {
		return nil, ErrPlaceNotFound
	}

	s.logger.Debug("resolving place", "place", place)

	matches, err := s.provider.Search(place)
	if err != nil {
		s.logger.Error("geocoding provider call failed", "place", place, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	if len(matches) == 0 {
		s.logger.Warn("no geocoding match for place", "place", place)
		return nil, ErrPlaceNotFound
	}

	result, err := s.translateMatch(matches[0])
	if err != nil {
		return nil, err
	}

	s.logger.Debug("resolved place",
		"place", place,
		"normalized_place", result.NormalizedPlace,
		"latitude", result.Coordinates.Latitude,
		"longitude", result.Coordinates.Longitude,
	)

	return result, nil
}

// translateMatch converts a Nominatim search hit to the domain result
func (s *geocodeService) translateMatch(match nominatim.PlaceAPIResponse) (*types.GeocodeResult, error) {
	lat, err := strconv.ParseFloat(match.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse latitude %q: %w", match.Lat, err)
	}

	lon, err := strconv.ParseFloat(match.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse longitude %q: %w", match.Lon, err)
	}

	return &types.GeocodeResult{
		Coordinates:     types.NewCoords(lat, lon),
		NormalizedPlace: match.DisplayName,
		Tzid:            TzidUnknown,
	}, nil
}
