package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/healthcheck-backend/internal/common/middlewares"
	"github.com/c14220110/healthcheck-backend/internal/common/response"
	"github.com/c14220110/healthcheck-backend/internal/roster/models"
	"github.com/c14220110/healthcheck-backend/internal/roster/services"
	"github.com/c14220110/healthcheck-backend/pkg/utils"
)

type EmployeeController struct {
	Service   *services.EmployeeService
	JWTSecret string
	TokenTTL  time.Duration
}

func NewEmployeeController(service *services.EmployeeService, jwtSecret string, tokenTTL time.Duration) *EmployeeController {
	return &EmployeeController{Service: service, JWTSecret: jwtSecret, TokenTTL: tokenTTL}
}

type LoginRequest struct {
	EmployeeNumber string `json:"employee_number" form:"employee_number"`
	Password       string `json:"password" form:"password"`
}

// Login handles POST /api/auth/login
func (ec *EmployeeController) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, "Invalid request payload", nil)
	}
	if strings.TrimSpace(req.EmployeeNumber) == "" || req.Password == "" {
		return response.JSON(c, http.StatusBadRequest, "Employee number and password are required", nil)
	}

	employee, err := ec.Service.Authenticate(c.Request().Context(), req.EmployeeNumber, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	exp := time.Now().Add(ec.TokenTTL)
	token, err := utils.GenerateJWTToken(ec.JWTSecret, employee.ID, employee.EmployeeNumber, employee.Name, employee.IsAdmin, exp)
	if err != nil {
		return response.JSON(c, http.StatusInternalServerError, "Failed to generate token: "+err.Error(), nil)
	}

	return response.JSON(c, http.StatusOK, "Login successful", map[string]interface{}{
		"id":              employee.ID,
		"employee_number": employee.EmployeeNumber,
		"name":            employee.Name,
		"is_admin":        employee.IsAdmin,
		"token":           token,
		"expires_at":      exp.UTC(),
	})
}

// ListEmployees handles GET /api/employees
func (ec *EmployeeController) ListEmployees(c echo.Context) error {
	list, err := ec.Service.ListEmployees(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, http.StatusOK, "Employee list retrieved successfully", list)
}

// CreateEmployee handles POST /api/employees
func (ec *EmployeeController) CreateEmployee(c echo.Context) error {
	var req models.EmployeeInput
	if err := c.Bind(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, "Invalid request payload", nil)
	}

	employee, err := ec.Service.CreateEmployee(c.Request().Context(), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, http.StatusCreated, "Employee registered successfully", employee)
}

// LookupEmployee handles GET /api/employees/lookup?employee_number=
func (ec *EmployeeController) LookupEmployee(c echo.Context) error {
	number := strings.TrimSpace(c.QueryParam("employee_number"))
	if number == "" {
		return response.JSON(c, http.StatusBadRequest, "employee_number parameter is required", nil)
	}
	employee, err := ec.Service.FindByNumber(c.Request().Context(), number)
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, http.StatusOK, "Employee retrieved successfully", employee)
}

// GetEmployee handles GET /api/employees/:id
func (ec *EmployeeController) GetEmployee(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.JSON(c, http.StatusBadRequest, "Invalid employee id", nil)
	}
	claims, _ := middlewares.ClaimsFrom(c)
	if err := middlewares.AuthorizeEmployee(claims, id); err != nil {
		return response.Error(c, err)
	}

	employee, err := ec.Service.GetEmployee(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, http.StatusOK, "Employee retrieved successfully", employee)
}

// UpdateEmployee handles PUT /api/employees/:id
func (ec *EmployeeController) UpdateEmployee(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.JSON(c, http.StatusBadRequest, "Invalid employee id", nil)
	}
	var req models.EmployeeUpdate
	if err := c.Bind(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, "Invalid request payload", nil)
	}

	employee, err := ec.Service.UpdateEmployee(c.Request().Context(), id, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, http.StatusOK, "Employee updated successfully", employee)
}

// DeleteEmployee handles DELETE /api/employees/:id
func (ec *EmployeeController) DeleteEmployee(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.JSON(c, http.StatusBadRequest, "Invalid employee id", nil)
	}

	employee, err := ec.Service.DeleteEmployee(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, http.StatusOK, "Employee deleted successfully", map[string]interface{}{
		"employee_number": employee.EmployeeNumber,
		"department_name": employee.DepartmentName,
		"name":            employee.Name,
	})
}

type ChangePasswordRequest struct {
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

// ChangePassword handles PUT /api/employees/:id/password
func (ec *EmployeeController) ChangePassword(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return response.JSON(c, http.StatusBadRequest, "Invalid employee id", nil)
	}
	claims, _ := middlewares.ClaimsFrom(c)
	if err := middlewares.AuthorizeEmployee(claims, id); err != nil {
		return response.Error(c, err)
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, "Invalid request payload", nil)
	}

	if err := ec.Service.ChangePassword(c.Request().Context(), id, req.NewPassword, req.ConfirmPassword); err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, http.StatusOK, "Password changed successfully", nil)
}

// GetDashboard handles GET /api/dashboard
func (ec *EmployeeController) GetDashboard(c echo.Context) error {
	dash, err := ec.Service.GetDashboard(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, http.StatusOK, "Dashboard retrieved successfully", dash)
}

func parseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
