package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings are the defaults read from lazyframe.yaml and LAZYFRAME_*
// environment variables. Command-line flags override them.
type Settings struct {
	Pipeline  string
	Input     string
	Output    string
	LogLevel  string
	LogFormat string
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{LogLevel: "info", LogFormat: "text"}
}

// LoadSettings reads lazyframe.yaml from configPath, if present, and
// applies environment overrides such as LAZYFRAME_LOG_LEVEL.
func LoadSettings(configPath string) (Settings, error) {
	cfg := DefaultSettings()

	v := viper.New()
	v.SetConfigName("lazyframe")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.SetEnvPrefix("LAZYFRAME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range []string{"pipeline", "input", "output", "log.level", "log.format"} {
		_ = v.BindEnv(key)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	if v.IsSet("pipeline") {
		cfg.Pipeline = v.GetString("pipeline")
	}
	if v.IsSet("input") {
		cfg.Input = v.GetString("input")
	}
	if v.IsSet("output") {
		cfg.Output = v.GetString("output")
	}
	if v.IsSet("log.level") {
		cfg.LogLevel = strings.ToLower(v.GetString("log.level"))
	}
	if v.IsSet("log.format") {
		cfg.LogFormat = strings.ToLower(v.GetString("log.format"))
	}

	return cfg, nil
}
