// Package config loads the rems server configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds server configuration.
type Config struct {
	Port           int      `yaml:"port" validate:"min=1,max=65535"`
	DevMode        bool     `yaml:"dev_mode"`
	DashboardURL   string   `yaml:"dashboard_url" validate:"required,url"` // external visualization dashboard
	AllowedOrigins []string `yaml:"allowed_origins" validate:"dive,url"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Port:           8080,
		DashboardURL:   "http://localhost:8501",
		AllowedOrigins: []string{"http://localhost:8501"},
	}
}

// Load builds a Config from defaults, the optional YAML file at path, and
// REMS_* environment variables, in that order, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("REMS_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing REMS_PORT: %w", err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("REMS_DEV_MODE"); v != "" {
		cfg.DevMode = v == "true"
	}
	if v := os.Getenv("REMS_DASHBOARD_URL"); v != "" {
		cfg.DashboardURL = v
	}
	if v := os.Getenv("REMS_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowedOrigins = origins
	}
	return nil
}
