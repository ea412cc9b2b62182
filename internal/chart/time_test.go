package chart

import (
	"errors"
	"testing"
	"time"
)

func TestLocalCivilToUTC(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		clock string
		tzid  string
		want  time.Time
	}{
		{
			name:  "UTC passes through",
			date:  "2000-01-01",
			clock: "12:00:00",
			tzid:  "UTC",
			want:  time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			name:  "fixed offset zone",
			date:  "1990-05-15",
			clock: "14:30:00",
			tzid:  "Asia/Kolkata",
			want:  time.Date(1990, 5, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			name:  "winter standard time",
			date:  "2024-01-15",
			clock: "12:00:00",
			tzid:  "America/New_York",
			want:  time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC),
		},
		{
			name:  "summer daylight time",
			date:  "2024-07-15",
			clock: "12:00:00",
			tzid:  "America/New_York",
			want:  time.Date(2024, 7, 15, 16, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LocalCivilToUTC(tt.date, tt.clock, tt.tzid)
			if err != nil {
				t.Fatalf("LocalCivilToUTC() unexpected error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("LocalCivilToUTC() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocalCivilToUTC_OffsetVariesByDate(t *testing.T) {
	// The same tzid and wall clock must map to different UTC instants across
	// a DST boundary.
	winter, err := LocalCivilToUTC("2024-01-15", "12:00:00", "America/New_York")
	if err != nil {
		t.Fatalf("LocalCivilToUTC() unexpected error = %v", err)
	}
	summer, err := LocalCivilToUTC("2024-07-15", "12:00:00", "America/New_York")
	if err != nil {
		t.Fatalf("LocalCivilToUTC() unexpected error = %v", err)
	}

	if winter.Hour() == summer.Hour() {
		t.Errorf("winter and summer both converted to %02d:00 UTC, want different offsets", winter.Hour())
	}
}

func TestLocalCivilToUTC_InvalidTimezone(t *testing.T) {
	tests := []struct {
		name string
		tzid string
	}{
		{"unknown zone", "Not/AZone"},
		{"empty tzid", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LocalCivilToUTC("2000-01-01", "12:00:00", tt.tzid)
			if !errors.Is(err, ErrInvalidTimezone) {
				t.Errorf("LocalCivilToUTC() error = %v, want %v", err, ErrInvalidTimezone)
			}
		})
	}
}

func TestLocalCivilToUTC_InvalidDateTime(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		clock string
	}{
		{"month out of range", "2000-13-01", "12:00:00"},
		{"day out of range", "2000-01-45", "12:00:00"},
		{"hour out of range", "2000-01-01", "25:00:00"},
		{"minute out of range", "2000-01-01", "12:99:00"},
		{"missing seconds", "2000-01-01", "12:00"},
		{"garbage", "yesterday", "noon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LocalCivilToUTC(tt.date, tt.clock, "UTC")
			if !errors.Is(err, ErrInvalidDateTime) {
				t.Errorf("LocalCivilToUTC() error = %v, want %v", err, ErrInvalidDateTime)
			}
		})
	}
}
