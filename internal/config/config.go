package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Port     string `validate:"required,numeric"`
	LogLevel string `validate:"oneof=debug info warn error"`

	// HTTPTimeout bounds every outbound HTTP call.
	HTTPTimeout time.Duration `validate:"gt=0"`
	// FetchTimeout bounds one zone's weather fetch.
	FetchTimeout time.Duration `validate:"gt=0"`

	ForecastBaseURL string `validate:"required,url"`

	// StorePath is the sqlite file for session state; empty keeps it in memory.
	StorePath string

	ReferenceZone string `validate:"required"`

	// ProbeInterval controls the background weather probe (0 = disabled).
	ProbeInterval time.Duration `validate:"gte=0"`
}

var validate = validator.New()

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", "10s")
	v.SetDefault("FETCH_TIMEOUT", "8s")
	v.SetDefault("FORECAST_BASE_URL", "https://api.open-meteo.com")
	v.SetDefault("STORE_PATH", "timezone-weather.db")
	v.SetDefault("REFERENCE_ZONE", "Europe/London")
	v.SetDefault("PROBE_INTERVAL", "15m")
}

// Load reads configuration from .env and the environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	// STORE_PATH= must select the in-memory store rather than the default file.
	v.AllowEmptyEnv(true)
	return v
}

// FromViper builds and validates an AppConfig from v.
func FromViper(v *viper.Viper) (*AppConfig, error) {
	cfg := &AppConfig{
		Port:            v.GetString("PORT"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		ForecastBaseURL: v.GetString("FORECAST_BASE_URL"),
		StorePath:       v.GetString("STORE_PATH"),
		ReferenceZone:   v.GetString("REFERENCE_ZONE"),
	}

	var err error
	if cfg.HTTPTimeout, err = duration(v, "HTTP_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.FetchTimeout, err = duration(v, "FETCH_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.ProbeInterval, err = duration(v, "PROBE_INTERVAL"); err != nil {
		return nil, err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func duration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
