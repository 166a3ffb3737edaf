package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/viper"

	"github.com/psantana5/fibmeter/internal/report"
)

// Settings are the file/env/flag-driven options
type Settings struct {
	Output      string `mapstructure:"output"`
	LogLevel    string `mapstructure:"log_level"`
	LogJSON     bool   `mapstructure:"log_json"`
	MetricsFile string `mapstructure:"metrics_file"`
}

// NewViper returns a viper instance with defaults and FIBMETER_ env binding.
// If cfgFile is empty, $HOME/.fibmeter/config.yaml is used when present.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("output", report.FormatText)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
	v.SetDefault("metrics_file", "")

	v.SetEnvPrefix("FIBMETER")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", cfgFile, err)
		}
		return v, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return v, nil
	}
	v.AddConfigPath(filepath.Join(home, ".fibmeter"))
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return v, nil
}

// Load decodes and validates Settings from v
func Load(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate rejects settings the program cannot act on
func (s *Settings) Validate() error {
	if !slices.Contains(report.Formats(), s.Output) {
		return fmt.Errorf("%w: %q (want one of %v)", report.ErrUnknownFormat, s.Output, report.Formats())
	}
	return nil
}
