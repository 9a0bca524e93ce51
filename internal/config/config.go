package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the settings file looked up in the home directory
const DefaultFile = ".gobbs.yaml"

// Config holds user settings. Maps config file fields through YAML tags.
type Config struct {
	// OutputDir is prepended to relative export paths
	OutputDir string `yaml:"output_dir"`

	Export struct {
		Template   string `yaml:"template"`
		Sheet      string `yaml:"sheet"`
		HeaderRows int    `yaml:"header_rows"`
	} `yaml:"export"`

	Server struct {
		Addr    string `yaml:"addr"`
		Metrics bool   `yaml:"metrics"`
	} `yaml:"server"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Default returns the built-in settings
func Default() *Config {
	cfg := &Config{}
	cfg.Export.Sheet = "BBS"
	cfg.Export.HeaderRows = 5
	cfg.Server.Addr = ":8080"
	cfg.Server.Metrics = true
	cfg.Log.Level = "info"
	cfg.Log.Format = "console"
	return cfg
}

// Load reads settings from path on top of the defaults, then applies .env
// and GOBBS_* environment overrides. An empty path means
// $HOME/.gobbs.yaml, which may be absent.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, DefaultFile)
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("GOBBS_OUTPUT_DIR"); ok {
		c.OutputDir = v
	}
	if v, ok := os.LookupEnv("GOBBS_TEMPLATE"); ok {
		c.Export.Template = v
	}
	if v, ok := os.LookupEnv("GOBBS_SHEET"); ok {
		c.Export.Sheet = v
	}
	if v, ok := os.LookupEnv("GOBBS_HEADER_ROWS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GOBBS_HEADER_ROWS: %w", err)
		}
		c.Export.HeaderRows = n
	}
	if v, ok := os.LookupEnv("GOBBS_SERVER_ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := os.LookupEnv("GOBBS_SERVER_METRICS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("GOBBS_SERVER_METRICS: %w", err)
		}
		c.Server.Metrics = b
	}
	if v, ok := os.LookupEnv("GOBBS_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv("GOBBS_LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	return nil
}

// Validate checks the settings for values the tool cannot use
func (c *Config) Validate() error {
	if c.Export.HeaderRows < 1 {
		return fmt.Errorf("export.header_rows must be at least 1, got %d", c.Export.HeaderRows)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}

// OutputPath resolves an export path against OutputDir
func (c *Config) OutputPath(path string) string {
	if path == "" || filepath.IsAbs(path) || c.OutputDir == "" {
		return path
	}
	return filepath.Join(c.OutputDir, path)
}
