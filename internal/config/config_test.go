package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATA_BACKEND", "CACHE_TTL", "TRACING_ENABLED", "DEFAULT_TIMEZONE", "ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.DataBackend != BackendStatic {
		t.Errorf("expected static backend, got %q", cfg.DataBackend)
	}
	if cfg.CacheTTL != time.Minute {
		t.Errorf("expected 1m cache TTL, got %s", cfg.CacheTTL)
	}
	if cfg.TracingEnabled {
		t.Error("tracing should be off by default")
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Errorf("unexpected origins %v", cfg.AllowedOrigins)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_BACKEND", "Supabase")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("TRACING_ENABLED", "true")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://m.example.com")
	t.Setenv("MAX_RETRIES", "not-a-number")

	cfg := Load()
	if cfg.Port != 9090 {
		t.Errorf("expected 9090, got %d", cfg.Port)
	}
	if cfg.DataBackend != BackendSupabase {
		t.Errorf("expected supabase, got %q", cfg.DataBackend)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Errorf("expected 30s, got %s", cfg.CacheTTL)
	}
	if !cfg.TracingEnabled {
		t.Error("expected tracing enabled")
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://m.example.com" {
		t.Errorf("unexpected origins %v", cfg.AllowedOrigins)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("invalid value should fall back to default, got %d", cfg.MaxRetries)
	}
}

func TestValidate(t *testing.T) {
	valid := &Config{
		Port:            8080,
		DataBackend:     BackendStatic,
		MaxConcurrency:  10,
		HTTPTimeout:     time.Second,
		DefaultTimezone: "UTC",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	bad := *valid
	bad.Port = 0
	bad.DataBackend = BackendSupabase
	bad.MaxConcurrency = 0
	bad.DefaultTimezone = "Mars/Olympus"

	err := bad.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"PORT", "SUPABASE_URL", "SUPABASE_ANON_KEY", "MAX_CONCURRENCY", "DEFAULT_TIMEZONE"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %s, got: %v", want, err)
		}
	}

	unknown := *valid
	unknown.DataBackend = "mysql"
	if err := unknown.Validate(); err == nil {
		t.Error("expected unknown backend to be rejected")
	}
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# comment\nMONEY_TEST_A=from-file\nMONEY_TEST_B=\"quoted\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MONEY_TEST_A", "from-env")
	t.Setenv("MONEY_TEST_B", "")
	os.Unsetenv("MONEY_TEST_B")

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("MONEY_TEST_A"); got != "from-env" {
		t.Errorf("env must win, got %q", got)
	}
	if got := os.Getenv("MONEY_TEST_B"); got != "quoted" {
		t.Errorf("expected value from file, got %q", got)
	}
}
