package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/c14220110/healthcheck-backend/internal/common/middlewares"
	"github.com/c14220110/healthcheck-backend/internal/common/response"
	"github.com/c14220110/healthcheck-backend/internal/health/models"
	"github.com/c14220110/healthcheck-backend/internal/health/services"
)

type HealthController struct {
	Submissions *services.SubmissionService
	Status      *services.StatusService
	Series      *services.SeriesService
	Records     *services.RecordService
}

func NewHealthController(submissions *services.SubmissionService, status *services.StatusService, series *services.SeriesService, records *services.RecordService) *HealthController {
	return &HealthController{
		Submissions: submissions,
		Status:      status,
		Series:      series,
		Records:     records,
	}
}

// flexString menerima angka maupun string JSON, dan nilai form apa adanya.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(data)
	return nil
}

func (f *flexString) UnmarshalParam(param string) error {
	*f = flexString(param)
	return nil
}

// SubmitHealthRequest merepresentasikan body form self-check.
type SubmitHealthRequest struct {
	Temperature   flexString `json:"temperature" form:"temperature"`
	Throat        string     `json:"throat" form:"throat"`
	Fever         string     `json:"fever" form:"fever"`
	Cough         string     `json:"cough" form:"cough"`
	SelectedParts string     `json:"selectedParts" form:"selectedParts"`
}

// SubmitHealth handles POST /api/health/submit
func (hc *HealthController) SubmitHealth(c echo.Context) error {
	claims, ok := middlewares.ClaimsFrom(c)
	if !ok {
		return response.JSON(c, http.StatusUnauthorized, "Invalid or missing token claims", nil)
	}
	employeeID, err := claims.EmployeeID()
	if err != nil {
		return response.JSON(c, http.StatusUnauthorized, "Invalid employee ID in token", nil)
	}

	var req SubmitHealthRequest
	if err := c.Bind(&req); err != nil {
		return response.JSON(c, http.StatusBadRequest, "Invalid request payload", nil)
	}

	result, err := hc.Submissions.Submit(c.Request().Context(), employeeID, models.SubmissionInput{
		Temperature:   string(req.Temperature),
		Throat:        req.Throat,
		Fever:         req.Fever,
		Cough:         req.Cough,
		SelectedParts: req.SelectedParts,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.JSON(c, http.StatusOK, "Health record saved successfully", result)
}

// GetRosterStatus handles GET /api/health/status
func (hc *HealthController) GetRosterStatus(c echo.Context) error {
	search := c.QueryParam("search")
	if search == "" {
		search = c.QueryParam("query")
	}

	rows, date, err := hc.Status.GetRosterStatus(c.Request().Context(), models.StatusQuery{
		Search: search,
		Date:   c.QueryParam("date"),
		Filter: c.QueryParam("filter"),
	})
	if err != nil {
		return response.Error(c, err)
	}

	filter, _ := models.ParseStatusFilter(strings.TrimSpace(c.QueryParam("filter")))
	message := "Roster status retrieved successfully"
	if len(rows) == 0 {
		message = "No matching employees found"
	}
	return response.JSON(c, http.StatusOK, message, map[string]interface{}{
		"date":      date,
		"filter":    filter,
		"employees": rows,
	})
}

// GetTemperatureSeries handles GET /api/health/employees/:id/temperature
func (hc *HealthController) GetTemperatureSeries(c echo.Context) error {
	employeeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || employeeID <= 0 {
		return response.JSON(c, http.StatusBadRequest, "Invalid employee id", nil)
	}

	claims, _ := middlewares.ClaimsFrom(c)
	if err := middlewares.AuthorizeEmployee(claims, employeeID); err != nil {
		return response.Error(c, err)
	}

	period := c.QueryParam("period")
	series, err := hc.Series.GetTemperatureSeries(c.Request().Context(), employeeID, period)
	if err != nil {
		return response.Error(c, err)
	}

	return response.JSON(c, http.StatusOK, "Temperature data retrieved successfully", series)
}

// GetHealthRecords handles GET /api/health/records
func (hc *HealthController) GetHealthRecords(c echo.Context) error {
	q, err := services.ParseRecordQuery(c.QueryParam("user_id"), c.QueryParam("start"), c.QueryParam("end"))
	if err != nil {
		return response.Error(c, err)
	}

	claims, _ := middlewares.ClaimsFrom(c)
	if err := middlewares.AuthorizeEmployee(claims, q.EmployeeID); err != nil {
		return response.Error(c, err)
	}

	records, err := hc.Records.GetHealthRecords(c.Request().Context(), q)
	if err != nil {
		return response.Error(c, err)
	}

	return response.JSON(c, http.StatusOK, "Health records retrieved successfully", records)
}
