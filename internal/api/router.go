package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hydrosense/hydrosense-backend-go/internal/config"
	"github.com/hydrosense/hydrosense-backend-go/internal/handler"
	"github.com/hydrosense/hydrosense-backend-go/internal/middleware"
)

// SetupRouter wires middleware and routes
func SetupRouter(cfg *config.Config, predictions *handler.PredictionHandler, reference *handler.ReferenceHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS for the dashboard frontend
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "HydroSense backend is running",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		api.POST("/predict", middleware.RateLimit(cfg.RateLimit, cfg.RateWindow), predictions.Predict)

		api.GET("/stations", reference.GetStations)
		api.GET("/pollutants", reference.GetPollutants)

		api.GET("/history", predictions.History)
		api.DELETE("/history", middleware.RequireAuth(cfg.JWTSecret), predictions.PurgeHistory)
	}

	return r
}
