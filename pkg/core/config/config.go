// File: config.go
// Title: CLI Configuration
// Description: Loads the stringops configuration from a TOML or YAML file,
//              an optional .env file and STRINGOPS_* environment variables,
//              then applies defaults and validates the result.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/stringops/foundation/core/error"
	mdwerrors "github.com/msto63/stringops/foundation/core/errors"
	"github.com/msto63/stringops/foundation/core/locale"
	mdwlog "github.com/msto63/stringops/foundation/core/log"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "STRINGOPS_"

// EnvConfigPath names the variable holding an explicit config file path
const EnvConfigPath = EnvPrefix + "CONFIG"

var (
	ErrUnsupportedFormat = errors.New("unsupported config file format")
	ErrInvalidValue      = errors.New("invalid config value")
)

// Config is the stringops configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Locale  LocaleConfig  `toml:"locale" yaml:"locale"`
	Format  FormatConfig  `toml:"format" yaml:"format"`
	URL     URLConfig     `toml:"url" yaml:"url"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel string `toml:"log_level" yaml:"log_level" env:"LOG_LEVEL"`
	// LogFormat is json, text, console, logfmt or auto (console on a terminal)
	LogFormat string `toml:"log_format" yaml:"log_format" env:"LOG_FORMAT"`
}

// LocaleConfig selects the locale used for wide/narrow conversion.
// An empty name means the process environment (LC_ALL, LC_CTYPE, LANG).
type LocaleConfig struct {
	Name string `toml:"name" yaml:"name" env:"LOCALE"`
}

type FormatConfig struct {
	SkipValidation bool `toml:"skip_validation" yaml:"skip_validation" env:"SKIP_VALIDATION"`
}

type URLConfig struct {
	StrictHex bool `toml:"strict_hex" yaml:"strict_hex" env:"URL_STRICT_HEX"`
}

type OutputConfig struct {
	// Copy also puts command output on the system clipboard
	Copy bool `toml:"copy" yaml:"copy" env:"COPY"`
}

var dotenvOnce sync.Once

// Default returns a configuration holding only defaults
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the file at path, then applies environment overrides and defaults
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := decodeFile(path, cfg); err != nil {
		return nil, err
	}
	return finish(cfg)
}

// LoadFromEnv loads the file named by STRINGOPS_CONFIG, or the first of the
// default paths that exists. Without any file the defaults are used.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, path := range DefaultPaths() {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	return finish(&Config{})
}

// DefaultPaths lists the files LoadFromEnv looks for, in order
func DefaultPaths() []string {
	paths := []string{"stringops.toml", "stringops.yaml", "stringops.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "stringops", "config.toml"))
	}
	return paths
}

func decodeFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("Load").
			Message("config file not found: " + path).
			Cause(err).
			Code(mdwerror.CodeConfigError).
			Detail("path", path).
			Build()
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return decodeError(path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return mdwerrors.OperationFailed(mdwerrors.ModuleConfig, "Load", err, mdwerror.CodeIOError)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return decodeError(path, err)
		}
	default:
		return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("Load").
			Cause(ErrUnsupportedFormat).
			Code(mdwerror.CodeInvalidConfig).
			Detail("path", path).
			Build()
	}
	return nil
}

func decodeError(path string, err error) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
		Operation("Load").
		Message("failed to parse config file: " + path).
		Cause(err).
		Code(mdwerror.CodeInvalidConfig).
		Detail("path", path).
		Build()
}

func finish(cfg *Config) (*Config, error) {
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays STRINGOPS_* variables. A .env file in the working
// directory is loaded once and never overrides variables already set.
func (c *Config) applyEnv() error {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
			Operation("Load").
			Message("failed to parse environment overrides").
			Cause(err).
			Code(mdwerror.CodeEnvironmentError).
			Build()
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "auto"
	}
}

// Validate checks the log settings and the locale name
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err)
	}
	if c.General.LogFormat != "auto" {
		if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
			return invalid("general.log_format", c.General.LogFormat, err)
		}
	}
	if c.Locale.Name != "" {
		if _, err := locale.Parse(c.Locale.Name); err != nil {
			return invalid("locale.name", c.Locale.Name, err)
		}
	}
	return nil
}

func invalid(key, value string, cause error) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleConfig).
		Operation("Validate").
		Message("invalid value for " + key + ": " + value).
		Cause(errors.Join(ErrInvalidValue, cause)).
		Code(mdwerror.CodeInvalidConfig).
		Detail("key", key).
		Detail("value", value).
		Build()
}

// LocaleValue resolves the configured locale, falling back to the environment
func (c *Config) LocaleValue() (locale.Locale, error) {
	if c.Locale.Name == "" {
		return locale.FromEnv(), nil
	}
	return locale.Parse(c.Locale.Name)
}
