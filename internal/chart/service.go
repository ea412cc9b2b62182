package chart

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/imkaran7/vedic-chart-api/internal/providers/swisseph"
	"github.com/imkaran7/vedic-chart-api/internal/types"
)

// AyanamshaLahiri is the only ayanamsha this service computes charts for.
// An empty ayanamsha on a birth event means the same thing.
const AyanamshaLahiri = "lahiri"

// ErrUnsupportedAyanamsha indicates a request for any ayanamsha other than Lahiri.
var ErrUnsupportedAyanamsha = errors.New("only Lahiri ayanamsha is supported")

// BirthEvent describes a birth moment and place as supplied by the caller.
type BirthEvent struct {
	Date      string // calendar date, YYYY-MM-DD
	Time      string // local clock time, HH:MM:SS
	Tzid      string // IANA timezone identifier
	Latitude  float64
	Longitude float64
	Ayanamsha string // empty selects Lahiri
}

// NatalChart is a computed sidereal natal chart.
type NatalChart struct {
	BirthUTC  time.Time
	Ascendant types.PlanetPosition
	Planets   []types.PlanetPosition
}

// Service computes natal charts.
type Service interface {
	// Compute calculates the sidereal natal chart for a birth event.
	Compute(event BirthEvent) (*NatalChart, error)
}

// EphemerisProvider supplies the astronomical quantities a chart is built from.
type EphemerisProvider interface {
	JulianDayUT(t time.Time) float64
	AyanamsaUT(jd float64) float64
	TropicalAscendant(jd, lat, lon float64) (float64, error)
	SiderealLongitude(jd float64, body types.Body) (float64, error)
}

// chartService implements the Service interface
type chartService struct {
	ephemeris EphemerisProvider
	logger    *slog.Logger
}

// NewChartService creates a new chart service backed by the Swiss Ephemeris.
func NewChartService(logger *slog.Logger) Service {
	return NewChartServiceWithProvider(logger, swisseph.NewClient(logger))
}

// NewChartServiceWithProvider creates a new chart service with a custom ephemeris provider.
// This is useful for testing with mock providers.
func NewChartServiceWithProvider(logger *slog.Logger, ephemeris EphemerisProvider) Service {
	return &chartService{
		ephemeris: ephemeris,
		logger:    logger.With("component", "chart-service"),
	}
}

// Compute calculates the sidereal natal chart for a birth event. The
// ayanamsha is validated before any time conversion or ephemeris work, so an
// unsupported request fails without side effects. The result is a pure
// function of the event and the ephemeris data.
func (s *chartService) Compute(event BirthEvent) (*NatalChart, error) {
	if err := validateAyanamsha(event.Ayanamsha); err != nil {
		return nil, err
	}

	birthUTC, err := LocalCivilToUTC(event.Date, event.Time, event.Tzid)
	if err != nil {
		return nil, err
	}

	jd := s.ephemeris.JulianDayUT(birthUTC)

	s.logger.Debug("computing natal chart",
		"birth_utc", birthUTC,
		"julian_day", jd,
		"latitude", event.Latitude,
		"longitude", event.Longitude,
	)

	ascendant, err := s.computeAscendant(jd, event.Latitude, event.Longitude)
	if err != nil {
		return nil, err
	}

	planets, err := s.computePlanets(jd)
	if err != nil {
		return nil, err
	}

	return &NatalChart{
		BirthUTC:  birthUTC,
		Ascendant: ascendant,
		Planets:   planets,
	}, nil
}

// validateAyanamsha accepts Lahiri in any casing; empty selects the default.
func validateAyanamsha(ayanamsha string) error {
	if ayanamsha == "" || strings.EqualFold(ayanamsha, AyanamshaLahiri) {
		return nil
	}
	return fmt.Errorf("%w, got %q", ErrUnsupportedAyanamsha, ayanamsha)
}

// computeAscendant derives the sidereal ascendant: the tropical house
// ascendant minus the ayanamsha at the same instant, normalized to [0, 360).
func (s *chartService) computeAscendant(jd, lat, lon float64) (types.PlanetPosition, error) {
	tropical, err := s.ephemeris.TropicalAscendant(jd, lat, lon)
	if err != nil {
		s.logger.Error("failed to compute ascendant",
			"julian_day", jd,
			"latitude", lat,
			"longitude", lon,
			"error", err,
		)
		return types.PlanetPosition{}, fmt.Errorf("failed to compute ascendant: %w", err)
	}

	sidereal := types.NormalizeLongitude(tropical - s.ephemeris.AyanamsaUT(jd))
	return types.NewPlanetPosition("Ascendant", sidereal), nil
}

// computePlanets queries the ephemeris for the eight primary bodies, derives
// Ketu exactly opposite Rahu, and returns the nine entries sorted by name.
func (s *chartService) computePlanets(jd float64) ([]types.PlanetPosition, error) {
	planets := make([]types.PlanetPosition, 0, len(types.EphemerisBodies)+1)

	var rahuLon float64
	for _, body := range types.EphemerisBodies {
		lon, err := s.ephemeris.SiderealLongitude(jd, body)
		if err != nil {
			s.logger.Error("failed to compute planet position",
				"body", body.String(),
				"julian_day", jd,
				"error", err,
			)
			return nil, fmt.Errorf("failed to compute %s: %w", body, err)
		}
		if body == types.BodyRahu {
			rahuLon = lon
		}
		planets = append(planets, types.NewPlanetPosition(body.String(), lon))
	}

	planets = append(planets, types.NewPlanetPosition(types.BodyKetu.String(), rahuLon+180))

	sort.Slice(planets, func(i, j int) bool {
		return planets[i].Name < planets[j].Name
	})

	return planets, nil
}
