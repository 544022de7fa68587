package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv       string
	Port         string
	DBDriver     string // mysql atau sqlite
	DBUser       string
	DBPassword   string
	DBHost       string
	DBPort       string
	DBName       string
	DBPath       string // dipakai hanya untuk sqlite
	JWTSecret    string
	TokenTTL     time.Duration
	AllowOrigins []string
}

var (
	cfg  *Config
	once sync.Once
)

func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: .env file not found. Relying on environment variables.")
		}
		cfg = FromEnv()
	})
	return cfg
}

// FromEnv membaca konfigurasi langsung dari environment tanpa cache.
func FromEnv() *Config {
	c := &Config{
		AppEnv:     getEnv("APP_ENV", "dev"),
		Port:       getEnv("PORT", "8080"),
		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", "mysql")),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBName:     os.Getenv("DB_NAME"),
		DBPath:     getEnv("DB_PATH", "healthcheck.db"),
		JWTSecret:  os.Getenv("JWT_SECRET_KEY"),
		TokenTTL:   12 * time.Hour,
	}

	if raw := os.Getenv("TOKEN_TTL_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			c.TokenTTL = time.Duration(hours) * time.Hour
		} else {
			log.Printf("Warning: invalid TOKEN_TTL_HOURS %q, using %s", raw, c.TokenTTL)
		}
	}

	for _, origin := range strings.Split(getEnv("ALLOW_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			c.AllowOrigins = append(c.AllowOrigins, origin)
		}
	}

	return c
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
