package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/go-sql-driver/mysql"

	"github.com/c14220110/healthcheck-backend/config"
)

func TestOpenSQLiteMigratesAndSeeds(t *testing.T) {
	cfg := &config.Config{DBDriver: DriverSQLite, DBPath: filepath.Join(t.TempDir(), "hc.db")}
	db, err := Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := Migrate(ctx, db, DriverSQLite); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := SeedDepartments(ctx, db); err != nil {
			t.Fatalf("seed #%d: %v", i+1, err)
		}
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM departments").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != len(DefaultDepartments) {
		t.Errorf("departments = %d, want %d", count, len(DefaultDepartments))
	}

	_, err = db.Exec("INSERT INTO departments (name, abbreviation) VALUES (?, ?)", "Dup", "hr")
	if !IsUniqueViolation(err) {
		t.Errorf("duplicate abbreviation: IsUniqueViolation(%v) = false", err)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(&config.Config{DBDriver: "oracle"}); err == nil {
		t.Error("expected error for unknown driver")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if IsUniqueViolation(nil) {
		t.Error("nil error reported as violation")
	}
	if IsUniqueViolation(errors.New("boom")) {
		t.Error("plain error reported as violation")
	}
	if !IsUniqueViolation(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}) {
		t.Error("mysql 1062 not detected")
	}
	if IsUniqueViolation(&mysql.MySQLError{Number: 1452}) {
		t.Error("mysql foreign key error reported as violation")
	}
}
