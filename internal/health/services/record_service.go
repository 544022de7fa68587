package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/c14220110/healthcheck-backend/internal/common/apperror"
	"github.com/c14220110/healthcheck-backend/internal/health/models"
)

// InstantLayout adalah format ISO-8601 UTC dengan sufiks 'Z'; detik pecahan opsional saat parsing.
const InstantLayout = "2006-01-02T15:04:05Z"

// ParseRecordQuery memvalidasi parameter user_id, start, dan end.
func ParseRecordQuery(userID, start, end string) (models.RecordQuery, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(userID), 10, 64)
	if err != nil || id <= 0 {
		return models.RecordQuery{}, apperror.Validation("Invalid parameters: user_id")
	}
	startAt, err := time.Parse(InstantLayout, strings.TrimSpace(start))
	if err != nil {
		return models.RecordQuery{}, apperror.Validation("Invalid parameters: start")
	}
	endAt, err := time.Parse(InstantLayout, strings.TrimSpace(end))
	if err != nil {
		return models.RecordQuery{}, apperror.Validation("Invalid parameters: end")
	}
	if startAt.After(endAt) {
		return models.RecordQuery{}, apperror.Validation("Invalid parameters: start is after end")
	}
	return models.RecordQuery{EmployeeID: id, Start: startAt.UTC(), End: endAt.UTC()}, nil
}

// EmployeeRangeLister menyediakan submission seorang karyawan dalam rentang inklusif.
type EmployeeRangeLister interface {
	ListByEmployee(ctx context.Context, employeeID int64, start, end time.Time) ([]models.Submission, error)
}

type RecordService struct {
	Records EmployeeRangeLister
}

func NewRecordService(records EmployeeRangeLister) *RecordService {
	return &RecordService{Records: records}
}

// GetHealthRecords mengembalikan catatan dengan label tampilan. Tidak ada catatan
// selalu diperlakukan sebagai NotFoundError.
func (s *RecordService) GetHealthRecords(ctx context.Context, q models.RecordQuery) ([]models.LocalizedRecord, error) {
	subs, err := s.Records.ListByEmployee(ctx, q.EmployeeID, q.Start, q.End)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, apperror.NotFound("No health records found")
	}

	records := make([]models.LocalizedRecord, 0, len(subs))
	for _, sub := range subs {
		records = append(records, recordLabels(sub))
	}
	return records, nil
}
