// File: config.go
// Title: Configuration Loading Implementation
// Description: Implements the typed Config structure, file loading for TOML
//              and YAML chosen by extension, discovery across conventional
//              locations, environment overrides, and validation.

package config

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/stdx-go/stdx/core/fault"
	"github.com/stdx-go/stdx/core/hexdump"
	"github.com/stdx-go/stdx/core/log"
)

// EnvPrefix is the prefix of the environment variables that override
// loaded configuration values
const EnvPrefix = "STDX_"

// LogConfig holds the logging settings
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// HexdumpConfig holds the hexdump rendering settings
type HexdumpConfig struct {
	Width     int    `toml:"width" yaml:"width"`
	Delimiter string `toml:"delimiter" yaml:"delimiter"`
	Flat      bool   `toml:"flat" yaml:"flat"`
}

// Config is the complete tool configuration
type Config struct {
	Log     LogConfig     `toml:"log" yaml:"log"`
	Hexdump HexdumpConfig `toml:"hexdump" yaml:"hexdump"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  log.LevelInfo.String(),
			Format: "text",
		},
		Hexdump: HexdumpConfig{
			Width:     hexdump.DefaultWidth,
			Delimiter: hexdump.DefaultDelimiter,
			Flat:      false,
		},
	}
}

// Load reads the configuration file at path on top of the defaults. The
// format is chosen by extension: .toml, or .yaml/.yml. Environment
// overrides are applied after the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fault.Wrap(err, "reading config file").
			WithCode(fault.CodeIO).
			WithDetail("path", path)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fault.Wrap(err, "parsing TOML config").
				WithCode(fault.CodeConfig).
				WithDetail("path", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fault.Wrap(err, "parsing YAML config").
				WithCode(fault.CodeConfig).
				WithDetail("path", path)
		}
	default:
		return nil, fault.Errorf("unsupported config extension %q", ext).
			WithCode(fault.CodeConfig).
			WithDetail("path", path)
	}

	cfg.applyEnv()
	return cfg, nil
}

// Discover looks for a configuration file in the conventional locations and
// loads the first one found: ./stdx.{toml,yaml,yml}, then
// $XDG_CONFIG_HOME/stdx/ (or ~/.config/stdx/). Without a file the defaults
// plus environment overrides are returned.
func Discover() (*Config, error) {
	for _, path := range discoveryPaths() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return Load(path)
		}
	}

	cfg := Default()
	cfg.applyEnv()
	return cfg, nil
}

// discoveryPaths returns the candidate file paths in search order
func discoveryPaths() []string {
	extensions := []string{".toml", ".yaml", ".yml"}

	var dirs []string
	dirs = append(dirs, ".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "stdx"))
	} else if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "stdx"))
	}

	var paths []string
	for _, dir := range dirs {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, "stdx"+ext))
		}
	}
	return paths
}

// applyEnv overrides configuration values from STDX_* environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv(EnvPrefix + "HEXDUMP_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Hexdump.Width = n
		}
	}
	if v := os.Getenv(EnvPrefix + "HEXDUMP_DELIMITER"); v != "" {
		c.Hexdump.Delimiter = v
	}
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fault.Wrap(err, "invalid log level").
			WithCode(fault.CodeConfig).
			WithDetail("level", c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fault.Errorf("invalid log format %q, want text or json", c.Log.Format).
			WithCode(fault.CodeConfig)
	}

	if c.Hexdump.Width <= 0 {
		return fault.Errorf("hexdump width must be positive, got %d", c.Hexdump.Width).
			WithCode(fault.CodeConfig)
	}
	return nil
}

// BuildLogger constructs a logger from the logging settings, writing to out
func (c *Config) BuildLogger(out io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fault.Wrap(err, "building logger").
			WithCode(fault.CodeConfig)
	}

	logger := log.New().WithLevel(level).WithOutput(out)
	if c.Log.Format == "json" {
		logger = logger.WithFormatter(log.NewJSONFormatter())
	}
	return logger, nil
}
