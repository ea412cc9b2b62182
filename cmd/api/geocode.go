package main

import (
	"errors"
	"net/http"

	"github.com/imkaran7/vedic-chart-api/internal/geocode"

	"github.com/gin-gonic/gin"
)

// GeocodeInput defines the request body for the geocode endpoint.
// Place is deliberately unvalidated here: an empty query is answered by the
// service as a miss, not rejected as malformed.
type GeocodeInput struct {
	Place string `json:"place" example:"Delhi, India"` // Free-text place name
}

// GeocodeResponse is the resolved place. Tzid is always the sentinel
// "UNKNOWN": timezone resolution is out of scope, callers supply their own
// tzid when requesting a chart.
type GeocodeResponse struct {
	Lat             float64 `json:"lat" example:"28.6273928"`
	Lon             float64 `json:"lon" example:"77.1716954"`
	Tzid            string  `json:"tzid" example:"UNKNOWN"`
	NormalizedPlace string  `json:"normalized_place" example:"Delhi, India"`
}

// handleGeocode godoc
// @Summary Geocode a place name
// @Description Resolve a free-text place name to latitude and longitude via the geocoding provider. The timezone is never resolved; tzid in the response is always "UNKNOWN".
// @Tags geocode
// @Accept json
// @Produce json
// @Param request body GeocodeInput true "Place to resolve"
// @Success 200 {object} GeocodeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /geocode [post]
func (app *App) handleGeocode(c *gin.Context) {
	var input GeocodeInput

	// Bind and validate the request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Delegate to business layer
	result, err := app.geocodeService.Resolve(input.Place)
	if err != nil {
		if errors.Is(err, geocode.ErrPlaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "place not found"})
			return
		}
		if errors.Is(err, geocode.ErrProviderUnavailable) {
			app.logger.Error("geocoding provider unavailable", "place", input.Place, "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "geocoding provider unavailable"})
			return
		}

		// Other errors are internal server errors
		app.logger.Error("failed to geocode place", "place", input.Place, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to geocode place"})
		return
	}

	c.JSON(http.StatusOK, GeocodeResponse{
		Lat:             result.Coordinates.Latitude,
		Lon:             result.Coordinates.Longitude,
		Tzid:            result.Tzid,
		NormalizedPlace: result.NormalizedPlace,
	})
}
