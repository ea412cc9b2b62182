package swisseph

import (
	"bytes"
	"log/slog"
	"math"
	"os"
	"testing"
	"time"

	"github.com/imkaran7/vedic-chart-api/internal/types"
)

func testClient() *Client {
	Configure("")
	return NewClient(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func TestCPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []byte
	}{
		{"empty path is just the terminator", "", []byte{0}},
		{"path gains a trailing NUL", "/usr/share/ephe", append([]byte("/usr/share/ephe"), 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cPath(tt.path)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("cPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestJulianDayUT(t *testing.T) {
	client := testClient()

	tests := []struct {
		name string
		in   time.Time
		want float64
	}{
		{
			// J2000.0 reference epoch
			name: "J2000 noon",
			in:   time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			want: 2451545.0,
		},
		{
			name: "midnight start of day",
			in:   time.Date(1987, 1, 27, 0, 0, 0, 0, time.UTC),
			want: 2446822.5,
		},
		{
			name: "noon mid-year",
			in:   time.Date(1988, 6, 19, 12, 0, 0, 0, time.UTC),
			want: 2447332.0,
		},
		{
			name: "quarter day",
			in:   time.Date(2000, 1, 1, 18, 0, 0, 0, time.UTC),
			want: 2451545.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := client.JulianDayUT(tt.in)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("JulianDayUT(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestJulianDayUTNormalizesZone(t *testing.T) {
	client := testClient()

	// 07:00 in New York (EST, UTC-5) is 12:00 UTC; the JD must come out the
	// same as for the equivalent UTC instant.
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("Failed to load location: %v", err)
	}
	local := time.Date(2000, 1, 1, 7, 0, 0, 0, ny)
	utc := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

	if got, want := client.JulianDayUT(local), client.JulianDayUT(utc); got != want {
		t.Errorf("JulianDayUT(local) = %v, want %v", got, want)
	}
}

func TestAyanamsaUT(t *testing.T) {
	client := testClient()

	// Lahiri ayanamsha near J2000 is about 23°51'.
	ay := client.AyanamsaUT(2451545.0)
	if ay < 23.8 || ay > 23.9 {
		t.Errorf("AyanamsaUT(J2000) = %v, want in [23.8, 23.9]", ay)
	}
}

func TestSiderealLongitude(t *testing.T) {
	client := testClient()
	jd := client.JulianDayUT(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))

	for _, body := range types.EphemerisBodies {
		t.Run(body.String(), func(t *testing.T) {
			lon, err := client.SiderealLongitude(jd, body)
			if err != nil {
				t.Fatalf("SiderealLongitude(%s) error = %v", body, err)
			}
			if lon < 0 || lon >= 360 {
				t.Errorf("SiderealLongitude(%s) = %v, want in [0, 360)", body, lon)
			}
		})
	}

	// Tropical Sun at J2000 noon sits near 280.4°; minus the Lahiri
	// ayanamsha (~23.87°) the sidereal longitude lands near 256.5°.
	sun, err := client.SiderealLongitude(jd, types.BodySun)
	if err != nil {
		t.Fatalf("SiderealLongitude(Sun) error = %v", err)
	}
	if sun < 256.0 || sun > 257.0 {
		t.Errorf("SiderealLongitude(Sun) = %v, want in [256, 257]", sun)
	}
}

func TestSiderealLongitudeRejectsDerivedBody(t *testing.T) {
	client := testClient()

	if _, err := client.SiderealLongitude(2451545.0, types.BodyKetu); err == nil {
		t.Error("SiderealLongitude(Ketu) expected error, got none")
	}
}

func TestTropicalAscendant(t *testing.T) {
	client := testClient()
	jd := client.JulianDayUT(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))

	asc, err := client.TropicalAscendant(jd, 0, 0)
	if err != nil {
		t.Fatalf("TropicalAscendant error = %v", err)
	}
	if asc < 0 || asc >= 360 {
		t.Errorf("TropicalAscendant = %v, want in [0, 360)", asc)
	}

	// Pure function of its inputs.
	again, err := client.TropicalAscendant(jd, 0, 0)
	if err != nil {
		t.Fatalf("TropicalAscendant error = %v", err)
	}
	if asc != again {
		t.Errorf("TropicalAscendant not deterministic: %v then %v", asc, again)
	}
}
