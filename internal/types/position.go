package types

// PlanetPosition is a single chart point: a sidereal ecliptic longitude with
// its derived zodiac sign and degree within the sign.
type PlanetPosition struct {
	Name      string  `json:"name" example:"Sun"`
	Longitude float64 `json:"lon" example:"256.349"`
	Sign      string  `json:"sign" example:"Sagittarius"`
	Degree    float64 `json:"degree" example:"16.349"`
}

// NewPlanetPosition normalizes the longitude and derives sign and degree from
// it, so a position can never carry a conflicting sign/longitude pair.
func NewPlanetPosition(name string, lon float64) PlanetPosition {
	lon = NormalizeLongitude(lon)
	sign, degree := SignFromLongitude(lon)
	return PlanetPosition{
		Name:      name,
		Longitude: lon,
		Sign:      sign,
		Degree:    degree,
	}
}
