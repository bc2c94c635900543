package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hydrosense/hydrosense-backend-go/internal/models"
	"github.com/hydrosense/hydrosense-backend-go/pkg/response"
)

// ReferenceHandler serves the static reference data behind the dashboard:
// the monitoring station set and the pollutant descriptions
type ReferenceHandler struct{}

// NewReferenceHandler creates a new reference handler
func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

// GetStations handles GET /api/v1/stations
func (h *ReferenceHandler) GetStations(c *gin.Context) {
	response.Success(c, gin.H{
		"stations": models.Stations(),
		"count":    models.StationCount,
	})
}

// GetPollutants handles GET /api/v1/pollutants
func (h *ReferenceHandler) GetPollutants(c *gin.Context) {
	response.Success(c, gin.H{
		"pollutants": models.PollutantReference,
	})
}
