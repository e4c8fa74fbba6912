package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/connectn/internal/builder"
)

type Config struct {
	LogLevel      string           `yaml:"log-level" env:"CONNECTN_LOG_LEVEL" env-default:"info"`
	DefaultPreset string           `yaml:"default-preset" env:"CONNECTN_DEFAULT_PRESET" env-default:"tic-tac-toe"`
	Presets       []builder.Preset `yaml:"presets"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the file at path, or only the environment when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("could not stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	}

	return config, nil
}

// Catalog - builds the preset catalog with the configured presets on top of the built-in ones.
func (that *Config) Catalog() (*builder.Catalog, error) {
	catalog, err := builder.NewCatalog(that.Presets...)
	if err != nil {
		return nil, fmt.Errorf("invalid preset in config: %w", err)
	}

	if _, err = catalog.Lookup(that.DefaultPreset); err != nil {
		return nil, fmt.Errorf("default preset: %w", err)
	}

	return catalog, nil
}
