package routes

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/healthcheck-backend/config"
	"github.com/c14220110/healthcheck-backend/internal/common/middlewares"
	"github.com/c14220110/healthcheck-backend/internal/common/response"
	healthControllers "github.com/c14220110/healthcheck-backend/internal/health/controllers"
	healthRoutes "github.com/c14220110/healthcheck-backend/internal/health/routes"
	healthServices "github.com/c14220110/healthcheck-backend/internal/health/services"
	rosterControllers "github.com/c14220110/healthcheck-backend/internal/roster/controllers"
	rosterRoutes "github.com/c14220110/healthcheck-backend/internal/roster/routes"
	rosterServices "github.com/c14220110/healthcheck-backend/internal/roster/services"
	"github.com/c14220110/healthcheck-backend/ws"
)

// Init menginisialisasi semua routes menggunakan Echo framework
func Init(e *echo.Echo, db *sql.DB, hub *ws.Hub, cfg *config.Config) {
	// Inisialisasi service
	employeeService := rosterServices.NewEmployeeService(db)
	departmentService := rosterServices.NewDepartmentService(db)

	var publisher healthServices.Publisher
	if hub != nil {
		publisher = hub
	}
	submissionService := healthServices.NewSubmissionService(db, publisher)
	statusService := healthServices.NewStatusService(employeeService, submissionService)
	seriesService := healthServices.NewSeriesService(employeeService, submissionService)
	recordService := healthServices.NewRecordService(submissionService)

	// Inisialisasi controller dengan service yang sesuai
	employeeController := rosterControllers.NewEmployeeController(employeeService, cfg.JWTSecret, cfg.TokenTTL)
	departmentController := rosterControllers.NewDepartmentController(departmentService)
	healthController := healthControllers.NewHealthController(submissionService, statusService, seriesService, recordService)

	auth := middlewares.JWTMiddleware(cfg.JWTSecret)

	// Grup API utama
	api := e.Group("/api")
	rosterRoutes.RegisterRosterRoutes(api, employeeController, departmentController, auth)
	healthRoutes.RegisterHealthRoutes(api, healthController, auth)

	if hub != nil {
		e.GET("/ws/submissions", ws.ServeWS(hub, cfg.JWTSecret))
	}

	e.GET("/healthz", func(c echo.Context) error {
		if err := db.PingContext(c.Request().Context()); err != nil {
			return response.JSON(c, http.StatusServiceUnavailable, "Database unavailable", nil)
		}
		return response.JSON(c, http.StatusOK, "OK", nil)
	})
}
