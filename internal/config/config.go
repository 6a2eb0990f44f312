// Package config loads resizebox settings from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"resizebox/internal/geom"
	"resizebox/internal/resize"
)

const envPrefix = "RESIZEBOX"

type Config struct {
	Geometry GeometryConfig `mapstructure:"geometry"`
	Resize   ResizeConfig   `mapstructure:"resize"`
	Scale    ScaleConfig    `mapstructure:"scale"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// GeometryConfig is the rectangle's starting placement.
type GeometryConfig struct {
	Top    float64 `mapstructure:"top"`
	Left   float64 `mapstructure:"left"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
}

type ResizeConfig struct {
	Policy string `mapstructure:"policy"` // legacy or strict
}

// ScaleConfig is how many geometry units one terminal cell spans.
type ScaleConfig struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
	File   string `mapstructure:"file"`
}

func (g GeometryConfig) Geometry() geom.Geometry {
	return geom.Geometry{Top: g.Top, Left: g.Left, Width: g.Width, Height: g.Height}
}

// Default returns the built-in configuration.
func Default() *Config {
	d := geom.DefaultGeometry()
	return &Config{
		Geometry: GeometryConfig{Top: d.Top, Left: d.Left, Width: d.Width, Height: d.Height},
		Resize:   ResizeConfig{Policy: resize.PolicyLegacy.String()},
		Scale:    ScaleConfig{X: 10, Y: 20},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   defaultLogFile(),
		},
	}
}

// NewViper prepares a viper instance with defaults, the config search path
// and RESIZEBOX_* environment overrides. An explicit file wins over the
// search path.
func NewViper(file string) *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("geometry.top", d.Geometry.Top)
	v.SetDefault("geometry.left", d.Geometry.Left)
	v.SetDefault("geometry.width", d.Geometry.Width)
	v.SetDefault("geometry.height", d.Geometry.Height)
	v.SetDefault("resize.policy", d.Resize.Policy)
	v.SetDefault("scale.x", d.Scale.X)
	v.SetDefault("scale.y", d.Scale.Y)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.file", d.Logging.File)
	return v
}

// Load reads the config file if there is one, applies the environment and
// validates the result. Finding no file on the search path is not an error;
// an explicit file that does not exist is.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Geometry.Width < geom.MinSize {
		errs = append(errs, fmt.Errorf("geometry.width must be at least %v, got %v", geom.MinSize, c.Geometry.Width))
	}
	if c.Geometry.Height < geom.MinSize {
		errs = append(errs, fmt.Errorf("geometry.height must be at least %v, got %v", geom.MinSize, c.Geometry.Height))
	}
	if c.Scale.X <= 0 || c.Scale.Y <= 0 {
		errs = append(errs, fmt.Errorf("scale.x and scale.y must be positive, got %v and %v", c.Scale.X, c.Scale.Y))
	}
	if _, err := resize.ParsePolicy(c.Resize.Policy); err != nil {
		errs = append(errs, err)
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}

func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "resizebox"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "resizebox"), nil
}

func defaultLogFile() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "resizebox", "resizebox.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "resizebox", "resizebox.log")
}
