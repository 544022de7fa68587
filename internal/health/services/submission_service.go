package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/c14220110/healthcheck-backend/internal/common/apperror"
	"github.com/c14220110/healthcheck-backend/internal/health/models"
)

// EventHealthSubmitted dikirim ke live feed setiap ada submission baru.
const EventHealthSubmitted = "health_submitted"

// Publisher menerima event untuk disiarkan ke klien yang sedang terhubung.
type Publisher interface {
	Publish(eventType string, data interface{})
}

type SubmissionService struct {
	DB        *sql.DB
	Publisher Publisher
	Now       func() time.Time
}

func NewSubmissionService(db *sql.DB, publisher Publisher) *SubmissionService {
	return &SubmissionService{DB: db, Publisher: publisher, Now: time.Now}
}

// DecodeSelectedParts mem-parsing list bagian tubuh yang di-encode JSON. String kosong berarti tidak ada.
func DecodeSelectedParts(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var parts []string
	if err := json.Unmarshal([]byte(raw), &parts); err != nil {
		return nil, apperror.Validation("selectedParts must be a JSON list of strings")
	}
	cleaned := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return cleaned, nil
}

// Submit menyimpan satu self-check dengan flag yang sudah dihitung dan mengembalikan hasilnya langsung.
func (s *SubmissionService) Submit(ctx context.Context, employeeID int64, input models.SubmissionInput) (models.SubmissionResult, error) {
	if strings.TrimSpace(input.Temperature) == "" {
		return models.SubmissionResult{}, apperror.Validation("temperature is required")
	}
	parts, err := DecodeSelectedParts(input.SelectedParts)
	if err != nil {
		return models.SubmissionResult{}, err
	}

	temperature := ParseTemperature(input.Temperature)
	submission := models.Submission{
		EmployeeID:    employeeID,
		Temperature:   temperature,
		ThroatStatus:  strings.TrimSpace(input.Throat),
		FeverStatus:   strings.TrimSpace(input.Fever),
		CoughStatus:   strings.TrimSpace(input.Cough),
		SelectedParts: joinParts(parts),
		SubmittedAt:   s.now().UTC().Truncate(time.Microsecond),
	}
	submission.Flag = EvaluateFlag(temperature, submission.ThroatStatus, submission.FeverStatus, submission.CoughStatus, parts)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.SubmissionResult{}, err
	}

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees WHERE id = ?", employeeID).Scan(&count); err != nil {
		tx.Rollback()
		return models.SubmissionResult{}, fmt.Errorf("check employee existence: %w", err)
	}
	if count == 0 {
		tx.Rollback()
		return models.SubmissionResult{}, apperror.NotFound("employee not found")
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO health_submissions (employee_id, temperature, throat_status, fever_status, cough_status, selected_parts, submitted_at, flag)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		submission.EmployeeID,
		submission.Temperature,
		submission.ThroatStatus,
		submission.FeverStatus,
		submission.CoughStatus,
		submission.SelectedParts,
		submission.SubmittedAt,
		int(submission.Flag),
	)
	if err != nil {
		tx.Rollback()
		return models.SubmissionResult{}, fmt.Errorf("insert health submission: %w", err)
	}
	submission.ID, err = res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return models.SubmissionResult{}, fmt.Errorf("gagal mendapatkan ID submission: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Printf("commit health submission for employee %d failed: %v", employeeID, err)
		return models.SubmissionResult{}, fmt.Errorf("commit health submission: %w", err)
	}

	if s.Publisher != nil {
		s.Publisher.Publish(EventHealthSubmitted, submission)
	}

	return resultLabels(submission), nil
}

// ListByEmployee mengembalikan submission seorang karyawan dalam [start, end], urut waktu naik.
func (s *SubmissionService) ListByEmployee(ctx context.Context, employeeID int64, start, end time.Time) ([]models.Submission, error) {
	return s.query(ctx, "WHERE employee_id = ? AND submitted_at >= ? AND submitted_at <= ?", employeeID, start.UTC(), end.UTC())
}

// ListAll mengembalikan submission seluruh karyawan dalam [start, end].
func (s *SubmissionService) ListAll(ctx context.Context, start, end time.Time) ([]models.Submission, error) {
	return s.query(ctx, "WHERE submitted_at >= ? AND submitted_at <= ?", start.UTC(), end.UTC())
}

// ListForDay mengembalikan submission dalam [dayStart, dayEnd).
func (s *SubmissionService) ListForDay(ctx context.Context, dayStart, dayEnd time.Time) ([]models.Submission, error) {
	return s.query(ctx, "WHERE submitted_at >= ? AND submitted_at < ?", dayStart.UTC(), dayEnd.UTC())
}

func (s *SubmissionService) query(ctx context.Context, where string, args ...interface{}) ([]models.Submission, error) {
	q := `
		SELECT id, employee_id, temperature, throat_status, fever_status, cough_status, selected_parts, submitted_at, flag
		FROM health_submissions
	` + where + " ORDER BY submitted_at ASC, id ASC"

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("load health submissions: %w", err)
	}
	defer rows.Close()

	var list []models.Submission
	for rows.Next() {
		var (
			sub  models.Submission
			flag int
		)
		if err := rows.Scan(&sub.ID, &sub.EmployeeID, &sub.Temperature, &sub.ThroatStatus, &sub.FeverStatus,
			&sub.CoughStatus, &sub.SelectedParts, &sub.SubmittedAt, &flag); err != nil {
			return nil, err
		}
		sub.SubmittedAt = sub.SubmittedAt.UTC()
		sub.Flag = models.Flag(flag)
		list = append(list, sub)
	}
	return list, rows.Err()
}

func (s *SubmissionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
