package config

// Settings loading follows the usual search order:
//  1. --config path, when given
//  2. ./weather-gauges.yaml
//  3. ~/.config/weather-gauges/weather-gauges.yaml
//
// Environment variables override file values,
// e.g. WEATHER_GAUGES_FPS=60 or WEATHER_GAUGES_LOG_LEVEL=debug.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings is the user-tunable part of the configuration.
type Settings struct {
	FPS          int                      `mapstructure:"fps"           yaml:"fps"`
	Demo         bool                     `mapstructure:"demo"          yaml:"demo"`
	DemoInterval time.Duration            `mapstructure:"demo_interval" yaml:"demo_interval"`
	Log          LogSettings              `mapstructure:"log"           yaml:"log"`
	Gauges       map[string]GaugeOverride `mapstructure:"gauges"        yaml:"gauges"`
}

// LogSettings holds logging settings.
type LogSettings struct {
	File  string `mapstructure:"file"  yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"` // "debug", "info", "warn", "error"
}

// GaugeOverride replaces individual fields of a built-in gauge variant.
// Nil fields keep the variant's value.
type GaugeOverride struct {
	MinValue           *float64       `mapstructure:"min_value"           yaml:"min_value,omitempty"`
	MaxValue           *float64       `mapstructure:"max_value"           yaml:"max_value,omitempty"`
	StartValue         *float64       `mapstructure:"start_value"         yaml:"start_value,omitempty"`
	ValueSpacing       *float64       `mapstructure:"value_spacing"       yaml:"value_spacing,omitempty"`
	TickStep           *float64       `mapstructure:"tick_step"           yaml:"tick_step,omitempty"`
	Unit               *string        `mapstructure:"unit"                yaml:"unit,omitempty"`
	ScaleType          *string        `mapstructure:"scale_type"          yaml:"scale_type,omitempty"`
	TransitionDuration *time.Duration `mapstructure:"transition_duration" yaml:"transition_duration,omitempty"`
}

// Load reads settings from the default search path. A missing file is not
// an error.
func Load() (*Settings, error) {
	v := newViper()
	v.SetConfigName("weather-gauges")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join(homeDir(), ".config", "weather-gauges"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

// LoadFromFile reads settings from a specific file path.
func LoadFromFile(path string) (*Settings, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("fps", TargetFPS)
	v.SetDefault("demo", false)
	v.SetDefault("demo_interval", DemoInterval)
	v.SetDefault("log.file", LogFile)
	v.SetDefault("log.level", "info")
}

func decode(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if s.FPS <= 0 {
		return nil, fmt.Errorf("invalid fps %d: must be positive", s.FPS)
	}
	if s.DemoInterval <= 0 {
		return nil, fmt.Errorf("invalid demo_interval %s: must be positive", s.DemoInterval)
	}
	return &s, nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
