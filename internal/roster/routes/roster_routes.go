package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/c14220110/healthcheck-backend/internal/common/middlewares"
	"github.com/c14220110/healthcheck-backend/internal/roster/controllers"
)

// RegisterRosterRoutes menghubungkan endpoint karyawan, departemen, dan dashboard.
func RegisterRosterRoutes(api *echo.Group, ec *controllers.EmployeeController, dc *controllers.DepartmentController, auth echo.MiddlewareFunc) {
	api.POST("/auth/login", ec.Login) // Tidak pakai JWT

	admin := middlewares.RequireAdmin()

	employees := api.Group("/employees", auth)
	employees.GET("", ec.ListEmployees, admin)
	employees.POST("", ec.CreateEmployee, admin)
	employees.GET("/lookup", ec.LookupEmployee, admin)
	employees.GET("/:id", ec.GetEmployee)
	employees.PUT("/:id", ec.UpdateEmployee, admin)
	employees.DELETE("/:id", ec.DeleteEmployee, admin)
	employees.PUT("/:id/password", ec.ChangePassword)

	departments := api.Group("/departments", auth)
	departments.GET("", dc.ListDepartments)
	departments.GET("/:code", dc.GetDepartment)

	api.GET("/dashboard", ec.GetDashboard, auth, admin)
}
