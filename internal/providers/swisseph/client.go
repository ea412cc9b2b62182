package swisseph

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/mshafiee/swephgo"

	"github.com/imkaran7/vedic-chart-api/internal/types"
)

// Library docs: https://www.astro.com/swisseph/swephprg.htm
// The Swiss Ephemeris keeps its calculation mode and data path as process-wide
// state inside the C library; both are set once at startup and never mutated
// afterwards, so concurrent requests need no locking.

// siderealCalcFlags requests Swiss-Ephemeris-backed positions expressed in
// the configured sidereal frame.
const siderealCalcFlags = swephgo.SeflgSwieph | swephgo.SeflgSidereal

const maxErrLen = 256

// planetIDs maps chart bodies to Swiss Ephemeris body numbers. Ketu has no
// entry: it is derived from Rahu, never queried.
var planetIDs = map[types.Body]int{
	types.BodySun:     swephgo.SeSun,
	types.BodyMoon:    swephgo.SeMoon,
	types.BodyMars:    swephgo.SeMars,
	types.BodyMercury: swephgo.SeMercury,
	types.BodyJupiter: swephgo.SeJupiter,
	types.BodyVenus:   swephgo.SeVenus,
	types.BodySaturn:  swephgo.SeSaturn,
	types.BodyRahu:    swephgo.SeTrueNode,
}

// Configure sets the process-wide ephemeris state: the Lahiri sidereal mode
// (the two tuning parameters are unused for predefined modes and stay zero)
// and the search path for supplementary ephemeris data files. An empty path
// means the library's built-in data only. Call once before serving requests.
func Configure(ephePath string) {
	swephgo.SetSidMode(swephgo.SeSidmLahiri, 0, 0)
	swephgo.SetEphePath(cPath(ephePath))
}

// Client wraps the Swiss Ephemeris calls used for natal charts.
type Client struct {
	logger *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		logger: logger.With("component", "swisseph-client"),
	}
}

// JulianDayUT converts an instant to the continuous Julian Day number in
// Universal Time, the sole time input for every ephemeris query.
func (c *Client) JulianDayUT(t time.Time) float64 {
	utc := t.UTC()
	hour := float64(utc.Hour()) +
		float64(utc.Minute())/60.0 +
		float64(utc.Second())/3600.0
	return swephgo.Julday(utc.Year(), int(utc.Month()), utc.Day(), hour, swephgo.SeGregCal)
}

// AyanamsaUT returns the Lahiri ayanamsha, the sidereal offset against the
// tropical frame, at the given Julian Day.
func (c *Client) AyanamsaUT(jd float64) float64 {
	return swephgo.GetAyanamsaUt(jd)
}

// TropicalAscendant computes the ascendant for the given Julian Day and
// geographic position using Placidus houses. The house routine works in
// tropical coordinates; callers subtract the ayanamsha to get the sidereal
// ascendant.
func (c *Client) TropicalAscendant(jd, lat, lon float64) (float64, error) {
	cusps := make([]float64, 13)
	ascmc := make([]float64, 10)
	if swephgo.Houses(jd, lat, lon, 'P', cusps, ascmc) < 0 {
		c.logger.Error("house computation failed", "jd", jd, "lat", lat, "lon", lon)
		return 0, fmt.Errorf("failed to compute houses at jd=%f lat=%f lon=%f", jd, lat, lon)
	}
	return types.NormalizeLongitude(ascmc[0]), nil
}

// SiderealLongitude returns the sidereal ecliptic longitude of an ephemeris
// body at the given Julian Day, reduced to [0, 360).
func (c *Client) SiderealLongitude(jd float64, body types.Body) (float64, error) {
	id, ok := planetIDs[body]
	if !ok {
		return 0, fmt.Errorf("%s is not an ephemeris body", body)
	}

	xx := make([]float64, 6)
	serr := make([]byte, maxErrLen)
	if swephgo.CalcUt(jd, id, siderealCalcFlags, xx, serr) < 0 {
		c.logger.Error("ephemeris computation failed",
			"body", body.String(),
			"jd", jd,
			"error", cString(serr),
		)
		return 0, fmt.Errorf("failed to compute %s at jd=%f: %s", body, jd, cString(serr))
	}

	return types.NormalizeLongitude(xx[0]), nil
}

// cString trims a NUL-terminated C message buffer.
func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}

// cPath builds a NUL-terminated buffer for a C-string parameter. The
// terminator is required even when the path is empty.
func cPath(path string) []byte {
	return append([]byte(path), 0)
}
