package types

import "math"

const SignSpanDegrees = 30.0

// Signs lists the twelve zodiac names in ecliptic order, starting at 0° Aries.
var Signs = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// NormalizeLongitude reduces an ecliptic longitude to [0, 360).
func NormalizeLongitude(lon float64) float64 {
	lon = math.Mod(lon, 360.0)
	if lon < 0 {
		lon += 360.0
	}
	// Adding 360 to a tiny negative remainder rounds to exactly 360.
	if lon == 360.0 {
		lon = 0
	}
	return lon
}

// SignFromLongitude maps an ecliptic longitude to its zodiac sign and the
// degree within that sign. The degree is always in [0, 30).
func SignFromLongitude(lon float64) (string, float64) {
	lon = NormalizeLongitude(lon)
	index := int(lon / SignSpanDegrees)
	degree := lon - float64(index)*SignSpanDegrees
	return Signs[index], degree
}
