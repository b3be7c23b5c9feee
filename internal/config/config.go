// Package config provides YAML-based configuration loading for the planner.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"focusplanner/internal/scheduler"
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"

	DefaultTimezone = "Asia/Kolkata"
	DefaultPlanCron = "0 5 * * *"
	ConfigFileName  = "config.yaml"
)

// Config is the top-level planner configuration, loaded from config.yaml.
type Config struct {
	DataDir   string `yaml:"data_dir"`
	Backend   string `yaml:"backend"`
	Timezone  string `yaml:"timezone"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	// PlanCron is the standard five-field schedule used by the watch daemon.
	PlanCron string `yaml:"plan_cron"`
}

// DefaultDir is where the config file and data live unless overridden.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".focusplanner"
	}
	return filepath.Join(home, ".focusplanner")
}

// DefaultPath returns the config file looked up when --config is not given.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), ConfigFileName)
}

// Load reads a YAML config file from path. A missing file yields the defaults.
// Environment overrides are applied on top of the file in both cases.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		data = nil
	}
	return parse(data, os.LookupEnv)
}

// Parse unmarshals YAML bytes into a validated Config without consulting the
// environment.
func Parse(data []byte) (*Config, error) {
	return parse(data, func(string) (string, bool) { return "", false })
}

func parse(data []byte, lookup func(string) (string, bool)) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyEnv(lookup)
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	overrides := []struct {
		key string
		dst *string
	}{
		{"FP_DATA_DIR", &c.DataDir},
		{"FP_BACKEND", &c.Backend},
		{"FP_TIMEZONE", &c.Timezone},
		{"FP_LOG_LEVEL", &c.LogLevel},
		{"FP_LOG_FORMAT", &c.LogFormat},
		{"FP_PLAN_CRON", &c.PlanCron},
	}
	for _, o := range overrides {
		if v, ok := lookup(o.key); ok && strings.TrimSpace(v) != "" {
			*o.dst = strings.TrimSpace(v)
		}
	}
}

// applyDefaults fills in default values.
func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = DefaultDir()
	}
	if c.Backend == "" {
		c.Backend = BackendSQLite
	}
	if c.Timezone == "" {
		c.Timezone = DefaultTimezone
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.PlanCron == "" {
		c.PlanCron = DefaultPlanCron
	}
}

// validate checks that all fields are present and consistent.
func (c *Config) validate() error {
	var errs []string
	switch c.Backend {
	case BackendSQLite, BackendFile:
	default:
		errs = append(errs, fmt.Sprintf("backend %q must be %q or %q", c.Backend, BackendSQLite, BackendFile))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Sprintf("timezone %q: %v", c.Timezone, err))
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err.Error())
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log_format %q must be text or json", c.LogFormat))
	}
	if _, err := scheduler.ParseSpec(c.PlanCron); err != nil {
		errs = append(errs, fmt.Sprintf("plan_cron %q: %v", c.PlanCron, err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Location resolves the reference timezone. validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// NewLogger builds the process logger writing to w.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.LogLevel)
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log_level %q must be debug, info, warn or error", s)
	}
	return level, nil
}
