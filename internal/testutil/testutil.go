// Package testutil menyediakan database SQLite in-memory dan data contoh untuk test.
package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/c14220110/healthcheck-backend/pkg/storage"
	sqlitestore "github.com/c14220110/healthcheck-backend/pkg/storage/sqlite"
	"github.com/c14220110/healthcheck-backend/pkg/utils"
)

// TestSecret adalah kunci JWT yang dipakai oleh test handler.
const TestSecret = "test-secret"

// SetupTestDB membuka database baru yang sudah dimigrasi dan berisi departemen default.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlitestore.Connect(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	if err := storage.Migrate(ctx, db, storage.DriverSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := storage.SeedDepartments(ctx, db); err != nil {
		t.Fatalf("seed departments: %v", err)
	}
	return db
}

// InsertEmployee menambahkan karyawan langsung ke tabel dan mengembalikan ID-nya.
func InsertEmployee(t *testing.T, db *sql.DB, number, name, department string, isAdmin bool) int64 {
	t.Helper()

	res, err := db.Exec(`
		INSERT INTO employees (employee_number, department_code, name, phone, email, password_hash, is_admin, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, number, department, name, "0800000000", number+"@example.com", "x", isAdmin, time.Now().UTC())
	if err != nil {
		t.Fatalf("insert employee %s: %v", number, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("last insert id: %v", err)
	}
	return id
}

// InsertSubmission menambahkan satu submission pada waktu tertentu.
func InsertSubmission(t *testing.T, db *sql.DB, employeeID int64, temperature float64, flag int, at time.Time) int64 {
	t.Helper()

	res, err := db.Exec(`
		INSERT INTO health_submissions (employee_id, temperature, throat_status, fever_status, cough_status, selected_parts, submitted_at, flag)
		VALUES (?, ?, 'normal', 'normal', 'no', '', ?, ?)
	`, employeeID, temperature, at.UTC(), flag)
	if err != nil {
		t.Fatalf("insert submission: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("last insert id: %v", err)
	}
	return id
}

// Token membuat JWT valid untuk test handler.
func Token(t *testing.T, employeeID int64, isAdmin bool) string {
	t.Helper()

	token, err := utils.GenerateJWTToken(TestSecret, employeeID, "E-test", "Tester", isAdmin, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}
