package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Port)
	}
	if cfg.DashboardURL != "http://localhost:8501" {
		t.Errorf("dashboard_url = %q", cfg.DashboardURL)
	}
	if cfg.DevMode {
		t.Error("expected dev mode off by default")
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "rems.yaml")
	content := "port: 9090\ndev_mode: true\ndashboard_url: http://charts.local:8501\nallowed_origins:\n  - http://charts.local:8501\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Port)
	}
	if !cfg.DevMode {
		t.Error("expected dev mode on")
	}
	if cfg.DashboardURL != "http://charts.local:8501" {
		t.Errorf("dashboard_url = %q", cfg.DashboardURL)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://charts.local:8501" {
		t.Errorf("allowed_origins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "rems.yaml")
	if err := os.WriteFile(path, []byte("port: 9090\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("REMS_PORT", "7070")
	t.Setenv("REMS_ALLOWED_ORIGINS", "http://a.local, http://b.local,")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != 7070 {
		t.Errorf("port = %d, want 7070", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://b.local" {
		t.Errorf("allowed_origins = %v", cfg.AllowedOrigins)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"non-numeric port", "REMS_PORT", "eighty"},
		{"port too large", "REMS_PORT", "70000"},
		{"bad dashboard url", "REMS_DASHBOARD_URL", "not a url"},
		{"bad origin", "REMS_ALLOWED_ORIGINS", "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			if _, err := Load(""); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.val)
			}
		})
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"REMS_PORT", "REMS_DEV_MODE", "REMS_DASHBOARD_URL", "REMS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}
}
