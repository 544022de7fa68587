package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/c14220110/healthcheck-backend/config"
	"github.com/c14220110/healthcheck-backend/pkg/storage/mariadb"
	sqlitestore "github.com/c14220110/healthcheck-backend/pkg/storage/sqlite"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Open memilih driver sesuai DB_DRIVER lalu menjalankan migrasi skema.
func Open(cfg *config.Config) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)
	switch cfg.DBDriver {
	case DriverMySQL, "mariadb":
		db, err = mariadb.Connect(cfg)
	case DriverSQLite:
		db, err = sqlitestore.Connect(cfg.DBPath)
	default:
		return nil, fmt.Errorf("DB_DRIVER tidak dikenal: %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(context.Background(), db, cfg.DBDriver); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// Migrate membuat tabel yang dibutuhkan. Aman dipanggil berulang kali.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	statements := mysqlSchema
	if driver == DriverSQLite {
		statements = sqliteSchema
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("gagal membuat skema: %w", err)
		}
	}
	return nil
}

// DefaultDepartments adalah daftar departemen awal (nama tampilan, kode singkatan).
var DefaultDepartments = [][2]string{
	{"人事部", "hr"},
	{"IT部門", "it"},
	{"営業部", "sales"},
	{"マーケティング部", "marketing"},
	{"財務部", "finance"},
}

// SeedDepartments mengisi tabel departments bila masih kosong.
func SeedDepartments(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM departments").Scan(&count); err != nil {
		return fmt.Errorf("gagal menghitung departemen: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, d := range DefaultDepartments {
		if _, err := tx.ExecContext(ctx, "INSERT INTO departments (name, abbreviation) VALUES (?, ?)", d[0], d[1]); err != nil {
			tx.Rollback()
			return fmt.Errorf("gagal menambahkan departemen %s: %w", d[1], err)
		}
	}
	return tx.Commit()
}

// IsUniqueViolation melaporkan apakah err berasal dari pelanggaran unique constraint
// pada MariaDB/MySQL maupun SQLite.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
		return liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(liteErr.Error(), "UNIQUE")
	}

	return false
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS departments (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE,
		abbreviation VARCHAR(10) NOT NULL UNIQUE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS employees (
		id INT AUTO_INCREMENT PRIMARY KEY,
		employee_number VARCHAR(100) NOT NULL UNIQUE,
		department_code VARCHAR(10) NOT NULL,
		name VARCHAR(100) NOT NULL,
		phone VARCHAR(15) NOT NULL,
		email VARCHAR(120) NOT NULL UNIQUE,
		password_hash VARCHAR(128) NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME(6) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS health_submissions (
		id INT AUTO_INCREMENT PRIMARY KEY,
		employee_id INT NOT NULL,
		temperature DOUBLE NOT NULL,
		throat_status VARCHAR(100) NOT NULL DEFAULT '',
		fever_status VARCHAR(100) NOT NULL DEFAULT '',
		cough_status VARCHAR(100) NOT NULL DEFAULT '',
		selected_parts TEXT NOT NULL,
		submitted_at DATETIME(6) NOT NULL,
		flag TINYINT NOT NULL DEFAULT 0,
		INDEX idx_health_employee_submitted (employee_id, submitted_at),
		INDEX idx_health_submitted (submitted_at),
		CONSTRAINT fk_health_employee FOREIGN KEY (employee_id) REFERENCES employees(id) ON DELETE CASCADE
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS departments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		abbreviation TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_number TEXT NOT NULL UNIQUE,
		department_code TEXT NOT NULL,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS health_submissions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id INTEGER NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		temperature REAL NOT NULL,
		throat_status TEXT NOT NULL DEFAULT '',
		fever_status TEXT NOT NULL DEFAULT '',
		cough_status TEXT NOT NULL DEFAULT '',
		selected_parts TEXT NOT NULL,
		submitted_at DATETIME NOT NULL,
		flag INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_health_employee_submitted ON health_submissions(employee_id, submitted_at)`,
	`CREATE INDEX IF NOT EXISTS idx_health_submitted ON health_submissions(submitted_at)`,
}
