package handlers

import (
	"github.com/gigwallet/insights/internal/config"
	"github.com/gigwallet/insights/internal/logging"
	"github.com/gigwallet/insights/internal/services"
)

// Handler contains all HTTP handlers
type Handler struct {
	logger *logging.Logger
	// Services
	analysisService *services.AnalysisService
	forecastService *services.ForecastService
}

// New creates a new handler instance
func New(logger *logging.Logger, engine config.EngineConfig) *Handler {
	return &Handler{
		logger:          logger,
		analysisService: services.NewAnalysisService(logger, engine),
		forecastService: services.NewForecastService(logger, engine),
	}
}
