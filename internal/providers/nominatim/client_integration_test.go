//go:build integration

package nominatim

import (
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/imkaran7/vedic-chart-api/internal/config"
)

func TestClient_Search_Integration(t *testing.T) {
	cfg := config.GeocoderConfig{
		BaseURL:        "https://nominatim.openstreetmap.org",
		UserAgent:      "vedic-chart-api",
		TimeoutSeconds: 20,
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	client := NewClient(cfg, logger)

	t.Logf("Making API call to Nominatim search API...")

	places, err := client.Search("Delhi, India")
	if err != nil {
		t.Fatalf("Failed to search place: %v", err)
	}

	rawJSON, err := json.MarshalIndent(places, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal response: %v", err)
	}
	t.Logf("Raw API Response:\n%s", string(rawJSON))

	if len(places) == 0 {
		t.Fatal("Expected at least one match for Delhi, India")
	}

	best := places[0]
	t.Logf("Best match:")
	t.Logf("  Place ID: %d", best.PlaceId)
	t.Logf("  Display Name: %s", best.DisplayName)
	t.Logf("  Coordinates: lat=%s, lon=%s", best.Lat, best.Lon)

	if best.Lat == "" || best.Lon == "" {
		t.Error("Lat/Lon fields are empty")
	}
	if best.DisplayName == "" {
		t.Error("DisplayName is empty")
	}

	t.Log("✓ API call successful, response structure valid")
}

func TestClient_Search_NoMatch_Integration(t *testing.T) {
	cfg := config.GeocoderConfig{
		BaseURL:        "https://nominatim.openstreetmap.org",
		UserAgent:      "vedic-chart-api",
		TimeoutSeconds: 20,
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	client := NewClient(cfg, logger)

	places, err := client.Search("zzzzqqqq nowhere at all")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(places) != 0 {
		t.Errorf("Expected no matches, got %d", len(places))
	}
}
