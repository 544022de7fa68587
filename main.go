package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"

	"github.com/c14220110/healthcheck-backend/config"
	"github.com/c14220110/healthcheck-backend/internal/routes"
	"github.com/c14220110/healthcheck-backend/pkg/storage"
	"github.com/c14220110/healthcheck-backend/ws"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET_KEY belum diatur")
	}

	db, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("Gagal membuka database: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := storage.SeedDepartments(ctx, db); err != nil {
		log.Fatalf("Gagal mengisi data departemen: %v", err)
	}

	hub := ws.NewHub()
	go hub.Run(ctx)

	e := echo.New()
	e.HideBanner = true
	if cfg.AppEnv == "prod" {
		e.Logger.SetLevel(gommonlog.WARN)
	} else {
		e.Logger.SetLevel(gommonlog.DEBUG)
	}
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: cfg.AllowOrigins}))

	routes.Init(e, db, hub, cfg)

	go func() {
		log.Printf("Server berjalan pada port %s...", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server berhenti: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Menghentikan server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown gagal: %v", err)
	}
}
