package mariadb

import (
	"strings"
	"testing"

	"github.com/c14220110/healthcheck-backend/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(&config.Config{DBUser: "hc", DBPassword: "pw", DBHost: "db", DBPort: "3307", DBName: "healthcheck"})
	for _, part := range []string{"hc:pw@tcp(db:3307)/healthcheck", "parseTime=true", "charset=utf8mb4"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("dsn %q missing %q", dsn, part)
		}
	}
}
