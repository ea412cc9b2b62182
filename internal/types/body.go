package types

import "fmt"

// Body identifies a chart point computed for a natal chart.
type Body int

const (
	BodySun Body = iota
	BodyMoon
	BodyMars
	BodyMercury
	BodyJupiter
	BodyVenus
	BodySaturn
	BodyRahu
	BodyKetu
)

// EphemerisBodies lists the bodies queried from the ephemeris, in the fixed
// computation order. Ketu is absent: it is derived from Rahu, never queried.
var EphemerisBodies = [8]Body{
	BodySun, BodyMoon, BodyMars, BodyMercury,
	BodyJupiter, BodyVenus, BodySaturn, BodyRahu,
}

func (b Body) String() string {
	switch b {
	case BodySun:
		return "Sun"
	case BodyMoon:
		return "Moon"
	case BodyMars:
		return "Mars"
	case BodyMercury:
		return "Mercury"
	case BodyJupiter:
		return "Jupiter"
	case BodyVenus:
		return "Venus"
	case BodySaturn:
		return "Saturn"
	case BodyRahu:
		return "Rahu"
	case BodyKetu:
		return "Ketu"
	default:
		return fmt.Sprintf("Unknown (%d)", int(b))
	}
}
