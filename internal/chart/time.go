package chart

import (
	"errors"
	"fmt"
	"time"
)

// civilLayout matches the concatenated date and clock strings of a birth event.
const civilLayout = "2006-01-02T15:04:05"

var (
	// ErrInvalidTimezone indicates the tzid does not name a known IANA zone.
	ErrInvalidTimezone = errors.New("unknown timezone")
	// ErrInvalidDateTime indicates the date or time string is not parseable.
	ErrInvalidDateTime = errors.New("invalid date or time")
)

// LocalCivilToUTC interprets date (YYYY-MM-DD) and clock (HH:MM:SS) as wall
// time in the named IANA zone and converts the instant to UTC. The zone
// database supplies the offset rules in force on that calendar date, so the
// same tzid can map to different UTC offsets on different dates.
func LocalCivilToUTC(date, clock, tzid string) (time.Time, error) {
	// LoadLocation treats "" as UTC; an absent tzid is a caller error here.
	if tzid == "" {
		return time.Time{}, fmt.Errorf("%w: tzid is empty", ErrInvalidTimezone)
	}

	loc, err := time.LoadLocation(tzid)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidTimezone, tzid, err)
	}

	local, err := time.ParseInLocation(civilLayout, date+"T"+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDateTime, err)
	}

	return local.UTC(), nil
}
