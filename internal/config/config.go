// Package config loads catalogview settings from defaults, an optional YAML
// file, .env files and CATALOGVIEW_* environment variables, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // display.timezone must resolve on hosts without zoneinfo

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. CATALOGVIEW_LOG_LEVEL.
const EnvPrefix = "CATALOGVIEW"

// Config is the full configuration.
type Config struct {
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Preview  PreviewConfig  `mapstructure:"preview" yaml:"preview"`
	Catalog  CatalogConfig  `mapstructure:"catalog" yaml:"catalog"`
	Display  DisplayConfig  `mapstructure:"display" yaml:"display"`
	Fixtures FixturesConfig `mapstructure:"fixtures" yaml:"fixtures"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// PreviewConfig configures the widget preview server.
type PreviewConfig struct {
	Port            int           `mapstructure:"port" yaml:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// MarshalYAML writes the timeout in time.Duration notation so the dump
// reads back.
func (p PreviewConfig) MarshalYAML() (any, error) {
	return struct {
		Port            int    `yaml:"port"`
		ShutdownTimeout string `yaml:"shutdown_timeout"`
	}{p.Port, p.ShutdownTimeout.String()}, nil
}

// CatalogConfig points at a CUE package overriding the built-in catalog.
// An empty Dir uses the built-in one.
type CatalogConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// DisplayConfig controls how values are formatted.
type DisplayConfig struct {
	Timezone string `mapstructure:"timezone" yaml:"timezone"`
}

// FixturesConfig points at a JSON file of widget inputs. An empty Path
// serves built-in sample data.
type FixturesConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: "info", Format: "json"},
		Preview: PreviewConfig{Port: 8585, ShutdownTimeout: 10 * time.Second},
		Display: DisplayConfig{Timezone: "UTC"},
	}
}

// DefaultFile is read when no config path is given and it exists.
const DefaultFile = "catalogview.yaml"

// envFiles are loaded in order; godotenv never overrides a variable that is
// already set, so earlier files win.
var envFiles = []string{".env.local", ".env"}

// Load reads configuration. path names a YAML file; when empty, DefaultFile
// in the working directory is used if present.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetConfigType("yaml")

	cfg := Default()
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("preview.port", cfg.Preview.Port)
	v.SetDefault("preview.shutdown_timeout", cfg.Preview.ShutdownTimeout)
	v.SetDefault("catalog.dir", cfg.Catalog.Dir)
	v.SetDefault("display.timezone", cfg.Display.Timezone)
	v.SetDefault("fixtures.path", cfg.Fixtures.Path)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnvFiles() {
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return fmt.Errorf("%w: preview.port %d out of range", ErrInvalid, c.Preview.Port)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("%w: display.timezone: %v", ErrInvalid, err)
	}
	return nil
}

// Location resolves display.timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Display.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Display.Timezone)
}

// Addr is the preview server listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Preview.Port)
}

// Dump writes the effective configuration as YAML.
func (c *Config) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}
