package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"event-board-api/internal/config"
)

// clean blanks every key so the host environment cannot leak in. Empty values
// count as unset.
func clean(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "WEB_PORT", "SHUTDOWN_TIMEOUT", "JWT_SECRET", "ADMIN_ID", "ADMIN_PASSWORD",
		"ADMIN_PASSWORD_HASH", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "LOG_LEVEL", "LOG_FORMAT",
		"STORE_DRIVER", "DATA_DIR", "PENDING_EVENTS_FILE", "EVENTS_FILE", "REGISTRATIONS_FILE",
		"SQLITE_DSN", "DATABASE_URL",
	} {
		t.Setenv(k, "")
	}
}

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "eventboard.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadDefaults(t *testing.T) {
	clean(t)
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("ADMIN_PASSWORD", "123")

	c, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.GRPCPort != "50051" || c.WebPort != "8080" || c.AdminID != "admin" {
		t.Errorf("ports/admin: %+v", c)
	}
	if c.Store.Driver != config.DriverFile {
		t.Errorf("driver: %q", c.Store.Driver)
	}
	p := c.Store.Paths()
	if p.PendingEvents != "pending_events.csv" || p.Events != "events.csv" || p.Registrations != "registrations.csv" {
		t.Errorf("paths: %+v", p)
	}
}

func TestEnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, `
port: "6000"
web_port: "7000"
jwt_secret: from-yaml
admin_password_hash: "$2a$10$abcdefghijklmnopqrstuuF8cGZ1ZJxHc7mJ1GvnmIjw0S8iUWeG"
shutdown_timeout: 3s
store:
  driver: sqlite
  sqlite_dsn: /tmp/board.db
  data_dir: /var/lib/eventboard
`)
	clean(t)
	t.Setenv("WEB_PORT", "9090")
	t.Setenv("EVENTS_FILE", "approved.csv")

	c, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.GRPCPort != "6000" {
		t.Errorf("yaml port lost: %q", c.GRPCPort)
	}
	if c.WebPort != "9090" {
		t.Errorf("env should win: %q", c.WebPort)
	}
	if c.JWTSecret != "from-yaml" || c.ShutdownTimeout != 3*time.Second {
		t.Errorf("yaml values: %+v", c)
	}
	if c.Store.Driver != config.DriverSQLite || c.Store.SQLiteDSN != "/tmp/board.db" {
		t.Errorf("store: %+v", c.Store)
	}
	if got := c.Store.Paths().Events; got != filepath.Join("/var/lib/eventboard", "approved.csv") {
		t.Errorf("events path: %q", got)
	}
	// untouched keys keep their defaults
	if c.RateLimitBurst != 10 {
		t.Errorf("burst: %d", c.RateLimitBurst)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"no secret", map[string]string{"ADMIN_PASSWORD": "1"}, "JWT_SECRET"},
		{"no admin password", map[string]string{"JWT_SECRET": "s"}, "ADMIN_PASSWORD"},
		{"bad driver", map[string]string{"JWT_SECRET": "s", "ADMIN_PASSWORD": "1", "STORE_DRIVER": "mongo"}, "STORE_DRIVER"},
		{"bad level", map[string]string{"JWT_SECRET": "s", "ADMIN_PASSWORD": "1", "LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"bad format", map[string]string{"JWT_SECRET": "s", "ADMIN_PASSWORD": "1", "LOG_FORMAT": "xml"}, "LOG_FORMAT"},
		{"bad rps", map[string]string{"JWT_SECRET": "s", "ADMIN_PASSWORD": "1", "RATE_LIMIT_RPS": "-1"}, "rate limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load("")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %s, got %v", tt.want, err)
			}
		})
	}
}

func TestPostgresNeedsURL(t *testing.T) {
	path := writeYAML(t, "jwt_secret: s\nadmin_password: p\nstore:\n  driver: postgres\n")
	clean(t)
	if _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Errorf("expected DATABASE_URL error, got %v", err)
	}
}

func TestLogger(t *testing.T) {
	clean(t)
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("ADMIN_PASSWORD", "1")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "text")

	c, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	log := c.Logger(&sb)
	log.Info("hidden")
	log.Warn("shown", "k", "v")
	out := sb.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "msg=shown k=v") {
		t.Errorf("log output: %q", out)
	}
}
