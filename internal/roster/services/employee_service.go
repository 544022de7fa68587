package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/c14220110/healthcheck-backend/internal/common/apperror"
	"github.com/c14220110/healthcheck-backend/internal/roster/models"
	"github.com/c14220110/healthcheck-backend/pkg/storage"
)

type EmployeeService struct {
	DB *sql.DB
}

func NewEmployeeService(db *sql.DB) *EmployeeService {
	return &EmployeeService{DB: db}
}

const employeeViewQuery = `
	SELECT e.id, e.employee_number, e.department_code, e.name, e.phone, e.email,
		e.password_hash, e.is_admin, e.created_at, d.name
	FROM employees e
	LEFT JOIN departments d ON d.abbreviation = e.department_code
`

// Authenticate memvalidasi login dengan nomor karyawan dan password.
func (s *EmployeeService) Authenticate(ctx context.Context, employeeNumber, password string) (models.Employee, error) {
	view, err := s.FindByNumber(ctx, strings.TrimSpace(employeeNumber))
	if err != nil {
		if apperror.GetCode(err) == apperror.CodeNotFound {
			return models.Employee{}, apperror.New(apperror.CodeUnauthorized, "invalid employee number or password")
		}
		return models.Employee{}, err
	}
	if !CheckPassword(view.PasswordHash, password) {
		return models.Employee{}, apperror.New(apperror.CodeUnauthorized, "invalid employee number or password")
	}
	return view.Employee, nil
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, input models.EmployeeInput) (models.EmployeeView, error) {
	fields, err := normalizeEmployeeFields(input.EmployeeNumber, input.DepartmentCode, input.Name, input.Phone, input.Email)
	if err != nil {
		return models.EmployeeView{}, err
	}
	if err := ValidatePassword(input.Password, input.ConfirmPassword); err != nil {
		return models.EmployeeView{}, err
	}
	hash, err := HashPassword(input.Password)
	if err != nil {
		return models.EmployeeView{}, fmt.Errorf("hash password: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.EmployeeView{}, err
	}

	if err := departmentExists(ctx, tx, fields.DepartmentCode); err != nil {
		tx.Rollback()
		return models.EmployeeView{}, err
	}
	if err := ensureUnique(ctx, tx, fields.EmployeeNumber, fields.Email, 0); err != nil {
		tx.Rollback()
		return models.EmployeeView{}, err
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO employees (employee_number, department_code, name, phone, email, password_hash, is_admin, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, fields.EmployeeNumber, fields.DepartmentCode, fields.Name, fields.Phone, fields.Email, hash, input.IsAdmin, time.Now().UTC())
	if err != nil {
		tx.Rollback()
		return models.EmployeeView{}, mapWriteError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return models.EmployeeView{}, fmt.Errorf("gagal mendapatkan ID karyawan: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.EmployeeView{}, mapWriteError(err)
	}

	return s.GetEmployee(ctx, id)
}

func (s *EmployeeService) GetEmployee(ctx context.Context, id int64) (models.EmployeeView, error) {
	row := s.DB.QueryRowContext(ctx, employeeViewQuery+" WHERE e.id = ?", id)
	return scanEmployeeView(row)
}

// FindByNumber mencari karyawan berdasarkan nomor karyawan.
func (s *EmployeeService) FindByNumber(ctx context.Context, employeeNumber string) (models.EmployeeView, error) {
	row := s.DB.QueryRowContext(ctx, employeeViewQuery+" WHERE e.employee_number = ?", employeeNumber)
	return scanEmployeeView(row)
}

// Exists mengembalikan NotFoundError bila karyawan tidak ada.
func (s *EmployeeService) Exists(ctx context.Context, id int64) error {
	var count int
	if err := s.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees WHERE id = ?", id).Scan(&count); err != nil {
		return fmt.Errorf("check employee existence: %w", err)
	}
	if count == 0 {
		return apperror.NotFound("employee not found")
	}
	return nil
}

func (s *EmployeeService) ListEmployees(ctx context.Context) ([]models.EmployeeView, error) {
	rows, err := s.DB.QueryContext(ctx, employeeViewQuery+" ORDER BY e.id")
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	defer rows.Close()

	list := []models.EmployeeView{}
	for rows.Next() {
		view, err := scanEmployeeView(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, view)
	}
	return list, rows.Err()
}

// ListRoster mengembalikan seluruh karyawan beserta nama departemennya.
func (s *EmployeeService) ListRoster(ctx context.Context) ([]models.RosterEntry, error) {
	views, err := s.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	roster := make([]models.RosterEntry, 0, len(views))
	for _, v := range views {
		roster = append(roster, models.RosterEntry{
			EmployeeID:     v.ID,
			EmployeeNumber: v.EmployeeNumber,
			DepartmentCode: v.DepartmentCode,
			DepartmentName: v.DepartmentName,
			Name:           v.Name,
		})
	}
	return roster, nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, id int64, input models.EmployeeUpdate) (models.EmployeeView, error) {
	fields, err := normalizeEmployeeFields(input.EmployeeNumber, input.DepartmentCode, input.Name, input.Phone, input.Email)
	if err != nil {
		return models.EmployeeView{}, err
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.EmployeeView{}, err
	}

	if err := departmentExists(ctx, tx, fields.DepartmentCode); err != nil {
		tx.Rollback()
		return models.EmployeeView{}, err
	}
	if err := ensureUnique(ctx, tx, fields.EmployeeNumber, fields.Email, id); err != nil {
		tx.Rollback()
		return models.EmployeeView{}, err
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE employees
		SET employee_number = ?, department_code = ?, name = ?, phone = ?, email = ?, is_admin = ?
		WHERE id = ?
	`, fields.EmployeeNumber, fields.DepartmentCode, fields.Name, fields.Phone, fields.Email, input.IsAdmin, id)
	if err != nil {
		tx.Rollback()
		return models.EmployeeView{}, mapWriteError(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// MySQL melaporkan 0 bila nilai tidak berubah, jadi cek keberadaan secara eksplisit.
		var count int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees WHERE id = ?", id).Scan(&count); err != nil {
			tx.Rollback()
			return models.EmployeeView{}, err
		}
		if count == 0 {
			tx.Rollback()
			return models.EmployeeView{}, apperror.NotFound("employee not found")
		}
	}

	if err := tx.Commit(); err != nil {
		return models.EmployeeView{}, mapWriteError(err)
	}
	return s.GetEmployee(ctx, id)
}

// DeleteEmployee menghapus karyawan beserta seluruh catatan kesehatannya.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id int64) (models.EmployeeView, error) {
	existing, err := s.GetEmployee(ctx, id)
	if err != nil {
		return models.EmployeeView{}, err
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.EmployeeView{}, err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM health_submissions WHERE employee_id = ?", id); err != nil {
		tx.Rollback()
		return models.EmployeeView{}, fmt.Errorf("delete health submissions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM employees WHERE id = ?", id); err != nil {
		tx.Rollback()
		return models.EmployeeView{}, fmt.Errorf("delete employee: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return models.EmployeeView{}, err
	}
	return existing, nil
}

func (s *EmployeeService) ChangePassword(ctx context.Context, id int64, newPassword, confirm string) error {
	if err := ValidatePassword(newPassword, confirm); err != nil {
		return err
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	res, err := s.DB.ExecContext(ctx, "UPDATE employees SET password_hash = ? WHERE id = ?", hash, id)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperror.NotFound("employee not found")
	}
	return nil
}

func (s *EmployeeService) GetDashboard(ctx context.Context) (models.DashboardData, error) {
	var d models.DashboardData
	if err := s.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees").Scan(&d.TotalEmployees); err != nil {
		return d, err
	}
	if err := s.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees WHERE is_admin = ?", true).Scan(&d.TotalAdmins); err != nil {
		return d, err
	}
	return d, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployeeView(row rowScanner) (models.EmployeeView, error) {
	var (
		v        models.EmployeeView
		deptName sql.NullString
	)
	err := row.Scan(&v.ID, &v.EmployeeNumber, &v.DepartmentCode, &v.Name, &v.Phone, &v.Email,
		&v.PasswordHash, &v.IsAdmin, &v.CreatedAt, &deptName)
	if errors.Is(err, sql.ErrNoRows) {
		return models.EmployeeView{}, apperror.NotFound("employee not found")
	}
	if err != nil {
		return models.EmployeeView{}, fmt.Errorf("scan employee: %w", err)
	}
	v.DepartmentName = models.UnknownDepartmentName
	if deptName.Valid {
		v.DepartmentName = deptName.String
	}
	return v, nil
}

type employeeFields struct {
	EmployeeNumber string
	DepartmentCode string
	Name           string
	Phone          string
	Email          string
}

func normalizeEmployeeFields(number, department, name, phone, email string) (employeeFields, error) {
	var f employeeFields
	var err error
	if f.EmployeeNumber, err = requiredString(number, "employee_number", 100); err != nil {
		return f, err
	}
	if f.DepartmentCode, err = requiredString(department, "department", 10); err != nil {
		return f, err
	}
	if f.Name, err = requiredString(name, "name", 100); err != nil {
		return f, err
	}
	if f.Phone, err = requiredString(phone, "phone", 15); err != nil {
		return f, err
	}
	if f.Email, err = requiredString(email, "email", 120); err != nil {
		return f, err
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		return f, apperror.Validation("email is not a valid address")
	}
	return f, nil
}

func requiredString(raw, field string, max int) (string, error) {
	value := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(value)
	if length == 0 {
		return "", apperror.Validation("%s is required", field)
	}
	if length > max {
		return "", apperror.Validation("%s must be at most %d characters", field, max)
	}
	return value, nil
}

func ensureUnique(ctx context.Context, q queryer, employeeNumber, email string, excludeID int64) error {
	var count int
	if err := q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM employees WHERE employee_number = ? AND id <> ?", employeeNumber, excludeID,
	).Scan(&count); err != nil {
		return fmt.Errorf("check employee number: %w", err)
	}
	if count > 0 {
		return apperror.Conflict("employee number is already in use")
	}

	if err := q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM employees WHERE email = ? AND id <> ?", email, excludeID,
	).Scan(&count); err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if count > 0 {
		return apperror.Conflict("email address is already in use")
	}
	return nil
}

func mapWriteError(err error) error {
	if storage.IsUniqueViolation(err) {
		return apperror.Conflict("employee number or email address is already in use")
	}
	return err
}
