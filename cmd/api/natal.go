package main

import (
	"errors"
	"net/http"

	"github.com/imkaran7/vedic-chart-api/internal/chart"
	"github.com/imkaran7/vedic-chart-api/internal/types"

	"github.com/gin-gonic/gin"
)

// birthUTCLayout renders the numeric offset even for UTC ("+00:00", not "Z").
const birthUTCLayout = "2006-01-02T15:04:05-07:00"

// NatalChartInput defines the request body for the natal chart endpoint.
// Lat and Lon carry no required binding: zero is a valid coordinate.
type NatalChartInput struct {
	Date      string  `json:"date" binding:"required" example:"2000-01-01"`   // Calendar date, YYYY-MM-DD
	Time      string  `json:"time" binding:"required" example:"12:00:00"`     // Local clock time, HH:MM:SS
	Tzid      string  `json:"tzid" binding:"required" example:"Asia/Kolkata"` // IANA timezone identifier
	Lat       float64 `json:"lat" example:"28.6273928"`                       // Latitude in decimal degrees
	Lon       float64 `json:"lon" example:"77.1716954"`                       // Longitude in decimal degrees
	Ayanamsha string  `json:"ayanamsha" example:"lahiri"`                     // Only "lahiri" is supported; empty selects it
}

// NatalChartResponse is a computed sidereal natal chart.
type NatalChartResponse struct {
	BirthUTC  string                 `json:"birth_utc" example:"2000-01-01T06:30:00+00:00"`
	Ascendant types.PlanetPosition   `json:"ascendant"`
	Planets   []types.PlanetPosition `json:"planets"`
}

// handleNatalChart godoc
// @Summary Compute a sidereal natal chart
// @Description Convert a birth date, local time, IANA timezone and coordinates into sidereal (Lahiri) positions for the nine classical planets and the ascendant.
// @Tags chart
// @Accept json
// @Produce json
// @Param request body NatalChartInput true "Birth event"
// @Success 200 {object} NatalChartResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /chart/natal [post]
func (app *App) handleNatalChart(c *gin.Context) {
	var input NatalChartInput

	// Bind and validate the request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Delegate to business layer
	natal, err := app.chartService.Compute(chart.BirthEvent{
		Date:      input.Date,
		Time:      input.Time,
		Tzid:      input.Tzid,
		Latitude:  input.Lat,
		Longitude: input.Lon,
		Ayanamsha: input.Ayanamsha,
	})
	if err != nil {
		// Check if it's a validation error from business layer
		if errors.Is(err, chart.ErrUnsupportedAyanamsha) ||
			errors.Is(err, chart.ErrInvalidTimezone) ||
			errors.Is(err, chart.ErrInvalidDateTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Other errors are internal server errors; log the detail, answer opaque
		app.logger.Error("failed to compute natal chart",
			"date", input.Date,
			"time", input.Time,
			"tzid", input.Tzid,
			"latitude", input.Lat,
			"longitude", input.Lon,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute natal chart"})
		return
	}

	c.JSON(http.StatusOK, NatalChartResponse{
		BirthUTC:  natal.BirthUTC.Format(birthUTCLayout),
		Ascendant: natal.Ascendant,
		Planets:   natal.Planets,
	})
}
