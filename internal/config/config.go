package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for the matching engine CLI.
type Config struct {
	LogLevel         string `yaml:"log_level"`
	LogFormat        string `yaml:"log_format"`
	BookDegree       int    `yaml:"book_degree"`
	MetricsFile      string `yaml:"metrics_file"`
	MetricsNamespace string `yaml:"metrics_namespace"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		LogLevel:         "info",
		LogFormat:        "json",
		BookDegree:       32,
		MetricsNamespace: "clob",
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (or $CONFIG_FILE when path is empty; no file is fine), then environment
// variables. It returns an error for any invalid value.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	cfg.LogLevel = getStr("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getStr("LOG_FORMAT", cfg.LogFormat)
	cfg.MetricsFile = getStr("METRICS_FILE", cfg.MetricsFile)
	cfg.MetricsNamespace = getStr("METRICS_NAMESPACE", cfg.MetricsNamespace)

	degree, err := getInt("BOOK_DEGREE", cfg.BookDegree)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOK_DEGREE: %w", err)
	}
	cfg.BookDegree = degree

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readFile overlays the YAML document at path onto cfg. Environment
// references such as ${HOME} are expanded before parsing.
func (c *Config) readFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	raw = []byte(os.ExpandEnv(string(raw)))
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("invalid LOG_LEVEL: %q, must be one of: debug, info, warn, error", c.LogLevel)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("invalid LOG_FORMAT: %q, must be one of: json, console", c.LogFormat)
	}
	if c.BookDegree < 2 {
		return fmt.Errorf("invalid BOOK_DEGREE: %d, must be >= 2", c.BookDegree)
	}
	if c.MetricsNamespace == "" {
		return fmt.Errorf("invalid METRICS_NAMESPACE: must not be empty")
	}
	return nil
}

func getStr(key, defaultVal string) string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v
}

func getInt(key string, defaultVal int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(v)
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}
