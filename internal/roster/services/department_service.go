package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/c14220110/healthcheck-backend/internal/common/apperror"
	"github.com/c14220110/healthcheck-backend/internal/roster/models"
)

type DepartmentService struct {
	DB *sql.DB
}

func NewDepartmentService(db *sql.DB) *DepartmentService {
	return &DepartmentService{DB: db}
}

func (s *DepartmentService) ListDepartments(ctx context.Context) ([]models.Department, error) {
	rows, err := s.DB.QueryContext(ctx, "SELECT id, name, abbreviation FROM departments ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("load departments: %w", err)
	}
	defer rows.Close()

	list := []models.Department{}
	for rows.Next() {
		var d models.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Abbreviation); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// GetByAbbreviation mencari departemen berdasarkan kode singkatan.
func (s *DepartmentService) GetByAbbreviation(ctx context.Context, code string) (models.Department, error) {
	var d models.Department
	err := s.DB.QueryRowContext(ctx,
		"SELECT id, name, abbreviation FROM departments WHERE abbreviation = ?", code,
	).Scan(&d.ID, &d.Name, &d.Abbreviation)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Department{}, apperror.NotFound("department not found")
	}
	if err != nil {
		return models.Department{}, fmt.Errorf("load department: %w", err)
	}
	return d, nil
}

func departmentExists(ctx context.Context, q queryer, code string) error {
	var count int
	if err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM departments WHERE abbreviation = ?", code).Scan(&count); err != nil {
		return fmt.Errorf("check department existence: %w", err)
	}
	if count == 0 {
		return apperror.Validation("department %q does not exist", code)
	}
	return nil
}

// queryer dipenuhi oleh *sql.DB maupun *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
