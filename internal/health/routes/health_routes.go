package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/c14220110/healthcheck-backend/internal/common/middlewares"
	"github.com/c14220110/healthcheck-backend/internal/health/controllers"
)

// RegisterHealthRoutes menghubungkan endpoint self-check dan agregasi status kesehatan.
func RegisterHealthRoutes(api *echo.Group, hc *controllers.HealthController, auth echo.MiddlewareFunc) {
	health := api.Group("/health", auth)
	health.POST("/submit", hc.SubmitHealth)
	health.GET("/employees/:id/temperature", hc.GetTemperatureSeries)
	health.GET("/records", hc.GetHealthRecords)
	health.GET("/status", hc.GetRosterStatus, middlewares.RequireAdmin())
}
