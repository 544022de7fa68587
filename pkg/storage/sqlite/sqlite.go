package sqlite

import (
	"database/sql"
	"fmt"
	"log"

	_ "modernc.org/sqlite"
)

// Connect membuka database SQLite (file atau ":memory:").
// Hanya satu koneksi yang dibuka supaya database in-memory tidak terpecah per koneksi.
func Connect(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("gagal membuka database sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("gagal melakukan ping ke sqlite: %w", err)
	}

	log.Printf("Berhasil membuka SQLite (%s).", path)
	return db, nil
}
