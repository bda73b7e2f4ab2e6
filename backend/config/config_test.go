package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, "server:\n  host: 0.0.0.0\n"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.HTTP.Host != "0.0.0.0" {
		t.Fatalf("host = %q", cfg.HTTP.Host)
	}
	if cfg.HTTP.Port != 5000 {
		t.Fatalf("port = %d, want default 5000", cfg.HTTP.Port)
	}
	if cfg.DB.Driver != "mysql" {
		t.Fatalf("db driver = %q, want mysql", cfg.DB.Driver)
	}
	if cfg.JWT.Secret != "dev-secret" || cfg.JWT.Issuer != "ieltsim" || cfg.JWT.ExpHours != 24 {
		t.Fatalf("jwt defaults wrong: %+v", cfg.JWT)
	}
	if cfg.Admin.Username != "admin" || cfg.Admin.Password != "admin123" {
		t.Fatalf("admin defaults wrong: %+v", cfg.Admin)
	}
	if cfg.Leaderboard.Limit != 10 || cfg.Leaderboard.CacheTTL != 30*time.Second {
		t.Fatalf("leaderboard defaults wrong: %+v", cfg.Leaderboard)
	}
	if cfg.Redis.Addr != "" {
		t.Fatalf("redis should be off by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, `server:
  port: 8080
  db:
    driver: sqlite
    path: /tmp/quiz.db
  jwt:
    secret: prod-secret
    exp_hours: 12
  redis:
    addr: 127.0.0.1:6379
  leaderboard:
    limit: 25
    cache_ttl: 2m
`))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.HTTP.Port != 8080 {
		t.Fatalf("port = %d", cfg.HTTP.Port)
	}
	if cfg.DB.Driver != "sqlite" || cfg.DB.Path != "/tmp/quiz.db" {
		t.Fatalf("db = %+v", cfg.DB)
	}
	if cfg.JWT.Secret != "prod-secret" || cfg.JWT.ExpHours != 12 {
		t.Fatalf("jwt = %+v", cfg.JWT)
	}
	if cfg.Redis.Addr != "127.0.0.1:6379" {
		t.Fatalf("redis = %+v", cfg.Redis)
	}
	if cfg.Leaderboard.Limit != 25 || cfg.Leaderboard.CacheTTL != 2*time.Minute {
		t.Fatalf("leaderboard = %+v", cfg.Leaderboard)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
