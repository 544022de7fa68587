package mariadb

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/c14220110/healthcheck-backend/config"
	"github.com/go-sql-driver/mysql"
)

// DSN menyusun data source name dari konfigurasi.
// Semua waktu disimpan dan dibaca dalam UTC; konversi ke zona tampilan dilakukan di aplikasi.
func DSN(cfg *config.Config) string {
	mc := mysql.NewConfig()
	mc.User = cfg.DBUser
	mc.Passwd = cfg.DBPassword
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%s", cfg.DBHost, cfg.DBPort)
	mc.DBName = cfg.DBName
	mc.ParseTime = true
	mc.Loc = time.UTC
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// Connect membuka koneksi ke database MariaDB dan memastikan server dapat dijangkau.
func Connect(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("gagal membuka koneksi ke database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("gagal melakukan ping ke database: %w", err)
	}

	log.Println("Berhasil terhubung ke MariaDB.")
	return db, nil
}
