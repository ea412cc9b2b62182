package main

import (
	"log/slog"

	"github.com/imkaran7/vedic-chart-api/internal/chart"
	"github.com/imkaran7/vedic-chart-api/internal/config"
	"github.com/imkaran7/vedic-chart-api/internal/geocode"
	"github.com/imkaran7/vedic-chart-api/internal/providers/swisseph"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	geocodeService geocode.Service
	chartService   chart.Service
	cfg            *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Sidereal mode and the ephemeris search path are process-wide library
	// state, set once before any chart is computed.
	swisseph.Configure(cfg.Ephemeris.Path)

	// Create Gin router
	router := gin.New()

	app := &App{
		router:         router,
		logger:         logger,
		geocodeService: geocode.NewGeocodeService(cfg.Geocoder, logger),
		chartService:   chart.NewChartService(logger),
		cfg:            cfg,
	}

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(app.requestID())
	router.Use(app.requestLogger())

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
