package services

import (
	"context"
	"testing"
	"time"

	"github.com/c14220110/healthcheck-backend/internal/common/apperror"
	"github.com/c14220110/healthcheck-backend/internal/health/models"
	"github.com/c14220110/healthcheck-backend/pkg/utils"
)

// 12:00 di zona tampilan
var seriesNow = time.Date(2024, 6, 10, 3, 0, 0, 0, time.UTC)

func TestSeriesLabels_Contiguous(t *testing.T) {
	for _, period := range []string{"1w", "2w", "1m", "3m", "1y"} {
		start, end := SeriesWindow(seriesNow, period)
		labels := SeriesLabels(start, end)
		wantLen := int(PeriodDuration(period) / oneDay)
		if len(labels) != wantLen {
			t.Errorf("%s: %d labels, want %d", period, len(labels), wantLen)
		}
		for i := 1; i < len(labels); i++ {
			prev, _ := time.Parse(utils.DateLayout, labels[i-1])
			cur, _ := time.Parse(utils.DateLayout, labels[i])
			if cur.Sub(prev) != oneDay {
				t.Errorf("%s: labels %s and %s are not consecutive", period, labels[i-1], labels[i])
			}
		}
	}
}

func TestPeriodDuration_UnknownFallsBack(t *testing.T) {
	if PeriodDuration("5d") != PeriodDuration(DefaultPeriod) {
		t.Error("unknown period must use default window")
	}
	if PeriodDuration("") != 7*oneDay {
		t.Error("empty period must use 1w window")
	}
}

func TestBuildSeries_OneWeek(t *testing.T) {
	start, end := SeriesWindow(seriesNow, "1w")
	series := BuildSeries(start, end, nil, nil)

	if len(series.Labels) != 6 || len(series.Data) != 6 || len(series.Average) != 6 {
		t.Fatalf("lengths labels=%d data=%d average=%d, want 6", len(series.Labels), len(series.Data), len(series.Average))
	}
	if series.Labels[0] != "2024-06-05" || series.Labels[5] != "2024-06-10" {
		t.Errorf("labels = %v", series.Labels)
	}
	for i := range series.Data {
		if series.Data[i] != nil || series.Average[i] != nil {
			t.Errorf("index %d must be null without submissions", i)
		}
	}
}

func TestBuildSeries_SubmissionThreeDaysAgo(t *testing.T) {
	start, end := SeriesWindow(seriesNow, "1w")
	at := seriesNow.Add(-3 * oneDay)
	own := []models.Submission{{ID: 1, EmployeeID: 7, Temperature: 36.8, SubmittedAt: at}}

	series := BuildSeries(start, end, own, own)
	label := utils.DisplayDate(at)
	found := false
	for i, l := range series.Labels {
		if l != label {
			if series.Data[i] != nil {
				t.Errorf("unexpected value at %s", l)
			}
			continue
		}
		found = true
		if series.Data[i] == nil || *series.Data[i] != 36.8 {
			t.Errorf("data at %s = %v", l, series.Data[i])
		}
		if series.Average[i] == nil || *series.Average[i] != 36.8 {
			t.Errorf("average at %s = %v", l, series.Average[i])
		}
	}
	if !found {
		t.Fatalf("label %s missing from %v", label, series.Labels)
	}
}

func TestBuildSeries_FirstOfDayAndAverage(t *testing.T) {
	start, end := SeriesWindow(seriesNow, "1w")
	base := time.Date(2024, 6, 8, 0, 30, 0, 0, time.UTC) // 09:30 di zona tampilan
	own := []models.Submission{
		{ID: 3, EmployeeID: 1, Temperature: 37.5, SubmittedAt: base.Add(2 * time.Hour)},
		{ID: 2, EmployeeID: 1, Temperature: 36.2, SubmittedAt: base},
	}
	all := append([]models.Submission{
		{ID: 4, EmployeeID: 2, Temperature: 36.9, SubmittedAt: base.Add(time.Hour)},
	}, own...)

	series := BuildSeries(start, end, own, all)
	idx := -1
	for i, l := range series.Labels {
		if l == "2024-06-08" {
			idx = i
		}
	}
	if idx < 0 {
		t.Fatalf("2024-06-08 missing from %v", series.Labels)
	}
	if *series.Data[idx] != 36.2 {
		t.Errorf("data = %v, want first submission of the day", *series.Data[idx])
	}
	want := (37.5 + 36.2 + 36.9) / 3
	if diff := *series.Average[idx] - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("average = %v, want %v", *series.Average[idx], want)
	}
}

type stubEmployees map[int64]bool

func (s stubEmployees) Exists(_ context.Context, id int64) error {
	if !s[id] {
		return apperror.NotFound("employee not found")
	}
	return nil
}

type stubRange struct {
	own, all []models.Submission
}

func (s stubRange) ListByEmployee(context.Context, int64, time.Time, time.Time) ([]models.Submission, error) {
	return s.own, nil
}

func (s stubRange) ListAll(context.Context, time.Time, time.Time) ([]models.Submission, error) {
	return s.all, nil
}

func TestSeriesService_UnknownEmployee(t *testing.T) {
	svc := NewSeriesService(stubEmployees{1: true}, stubRange{})
	_, err := svc.GetTemperatureSeries(context.Background(), 99, "1w")
	if apperror.GetCode(err) != apperror.CodeNotFound {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestSeriesService_UsesClock(t *testing.T) {
	svc := NewSeriesService(stubEmployees{1: true}, stubRange{})
	svc.Now = func() time.Time { return seriesNow }

	series, err := svc.GetTemperatureSeries(context.Background(), 1, "2w")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Labels) != 13 {
		t.Errorf("2w series has %d labels, want 13", len(series.Labels))
	}
	if series.Labels[len(series.Labels)-1] != "2024-06-10" {
		t.Errorf("last label = %s", series.Labels[len(series.Labels)-1])
	}
}
