package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/healthcheck-backend/internal/common/response"
	"github.com/c14220110/healthcheck-backend/internal/roster/services"
)

type DepartmentController struct {
	Service *services.DepartmentService
}

func NewDepartmentController(service *services.DepartmentService) *DepartmentController {
	return &DepartmentController{Service: service}
}

func (dc *DepartmentController) ListDepartments(c echo.Context) error {
	list, err := dc.Service.ListDepartments(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, http.StatusOK, "Department list retrieved successfully", list)
}

// GetDepartment handles GET /api/departments/:code
func (dc *DepartmentController) GetDepartment(c echo.Context) error {
	d, err := dc.Service.GetByAbbreviation(c.Request().Context(), c.Param("code"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, http.StatusOK, "Department retrieved successfully", d)
}
