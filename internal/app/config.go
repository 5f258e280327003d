package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvTable = "FSTACK_TABLE" // path to a YAML table file
	EnvColor = "FSTACK_COLOR" // auto, always or never
	EnvDebug = "FSTACK_DEBUG" // "1"/"true" enables debug logging
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the resolved runtime configuration. Flags override it after
// ConfigFromEnv; Validate should be called once all sources are applied.
type Config struct {
	TablePath string // empty selects the built-in table
	Color     string
	Debug     bool
}

// LoadEnv loads the given env files into the process environment without
// overriding variables that are already set. Every file must exist; use
// Paths.EnvFiles to pick them.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// ConfigFromEnv builds a Config from environment lookups. getenv is usually
// os.Getenv; tests pass a map lookup.
func ConfigFromEnv(getenv func(string) string) Config {
	cfg := Config{
		TablePath: strings.TrimSpace(getenv(EnvTable)),
		Color:     strings.ToLower(strings.TrimSpace(getenv(EnvColor))),
	}
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}
	if v := strings.TrimSpace(getenv(EnvDebug)); v != "" {
		cfg.Debug, _ = strconv.ParseBool(v)
	}
	return cfg
}

// Validate checks field values.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (want %s, %s or %s)", c.Color, ColorAuto, ColorAlways, ColorNever)
	}
}
