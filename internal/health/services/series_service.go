package services

import (
	"context"
	"strings"
	"time"

	"github.com/c14220110/healthcheck-backend/internal/health/models"
)

// EmployeeChecker mengembalikan NotFoundError bila karyawan tidak ada.
type EmployeeChecker interface {
	Exists(ctx context.Context, id int64) error
}

// RangeSubmissionLister menyediakan submission dalam rentang waktu inklusif.
type RangeSubmissionLister interface {
	ListByEmployee(ctx context.Context, employeeID int64, start, end time.Time) ([]models.Submission, error)
	ListAll(ctx context.Context, start, end time.Time) ([]models.Submission, error)
}

type SeriesService struct {
	Employees EmployeeChecker
	Records   RangeSubmissionLister
	Now       func() time.Time
}

func NewSeriesService(employees EmployeeChecker, records RangeSubmissionLister) *SeriesService {
	return &SeriesService{Employees: employees, Records: records, Now: time.Now}
}

func (s *SeriesService) GetTemperatureSeries(ctx context.Context, employeeID int64, period string) (models.TemperatureSeries, error) {
	if err := s.Employees.Exists(ctx, employeeID); err != nil {
		return models.TemperatureSeries{}, err
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	start, end := SeriesWindow(now(), strings.TrimSpace(period))

	own, err := s.Records.ListByEmployee(ctx, employeeID, start, end)
	if err != nil {
		return models.TemperatureSeries{}, err
	}
	all, err := s.Records.ListAll(ctx, start, end)
	if err != nil {
		return models.TemperatureSeries{}, err
	}

	return BuildSeries(start, end, own, all), nil
}
