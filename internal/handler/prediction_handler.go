package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hydrosense/hydrosense-backend-go/internal/models"
	"github.com/hydrosense/hydrosense-backend-go/internal/service"
	"github.com/hydrosense/hydrosense-backend-go/pkg/response"
)

// The UI offers forecast years in this range; requests outside it are
// rejected here, not in the encoder
const (
	minYear = 2000
	maxYear = 2100
)

// PredictionHandler handles HTTP requests for the prediction pipeline
type PredictionHandler struct {
	service *service.PredictionService
}

// NewPredictionHandler creates a new prediction handler
func NewPredictionHandler(service *service.PredictionService) *PredictionHandler {
	return &PredictionHandler{service: service}
}

// Predict handles POST /api/v1/predict
func (h *PredictionHandler) Predict(c *gin.Context) {
	var req models.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: year and station_id are required")
		return
	}

	if req.Year < minYear || req.Year > maxYear {
		response.BadRequest(c, fmt.Sprintf("Year must be between %d and %d", minYear, maxYear))
		return
	}

	if !models.IsValidStation(req.StationID) {
		response.BadRequest(c, fmt.Sprintf("Unknown station %q: choose one of 1-%d", req.StationID, models.StationCount))
		return
	}

	result, err := h.service.Predict(req.Year, req.StationID)
	if err != nil {
		response.InternalError(c, "Prediction failed")
		return
	}

	response.Success(c, result)
}

// History handles GET /api/v1/history
func (h *PredictionHandler) History(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	records, err := h.service.History(limit)
	if err != nil {
		response.InternalError(c, "Failed to load prediction history")
		return
	}

	response.Success(c, gin.H{
		"records": records,
		"count":   len(records),
	})
}

// PurgeHistory handles DELETE /api/v1/history
func (h *PredictionHandler) PurgeHistory(c *gin.Context) {
	n, err := h.service.PurgeHistory()
	if err != nil {
		response.InternalError(c, "Failed to purge prediction history")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"deleted": n,
	})
}
