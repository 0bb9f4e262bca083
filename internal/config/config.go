// Package config loads optional viewer settings from a skytrackr.toml
// file. Flags take precedence over file values; both fall back to
// defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the file-configurable settings.
type Config struct {
	// Observer location. NaN-free zero values mean "not set".
	ObserverSet  bool
	LatDeg       float64
	LonDeg       float64
	ObserverName string

	// Catalog source. Path wins over URL when both are set.
	CatalogPath string
	CatalogURL  string

	// Initial time rate multiplier. Zero means "not set".
	TimeRate float64

	// Path of the file actually loaded, empty when none was found.
	Source string
}

// Load reads configuration from the given path, or searches the default
// locations when path is empty. A missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("skytrackr")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "skytrackr"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && (errors.As(err, &notFound) || os.IsNotExist(err)) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Config{
		LatDeg:       v.GetFloat64("observer.lat"),
		LonDeg:       v.GetFloat64("observer.lon"),
		ObserverName: v.GetString("observer.name"),
		CatalogPath:  v.GetString("catalog.path"),
		CatalogURL:   v.GetString("catalog.url"),
		TimeRate:     v.GetFloat64("time.rate"),
		Source:       v.ConfigFileUsed(),
	}
	cfg.ObserverSet = v.IsSet("observer.lat") && v.IsSet("observer.lon")

	if cfg.ObserverSet {
		if cfg.LatDeg < -90 || cfg.LatDeg > 90 {
			return Config{}, fmt.Errorf("config: observer.lat %v out of range [-90, 90]", cfg.LatDeg)
		}
		if cfg.LonDeg < -180 || cfg.LonDeg > 180 {
			return Config{}, fmt.Errorf("config: observer.lon %v out of range [-180, 180]", cfg.LonDeg)
		}
	}

	return cfg, nil
}
