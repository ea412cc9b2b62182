package types

// GeocodeResult contains the resolved coordinates and the provider's
// canonical string for a queried place. The timezone is never resolved here;
// Tzid always carries the sentinel value for it.
type GeocodeResult struct {
	Coordinates     Coords
	NormalizedPlace string
	Tzid            string
}
