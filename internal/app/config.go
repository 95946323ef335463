package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v3"
)

// Config holds all application configuration.
type Config struct {
	Catalog CatalogConfig `koanf:"catalog"`
	Noise   NoiseConfig   `koanf:"noise" validate:"required"`
}

// CatalogConfig holds catalog assembly settings. All fields are optional:
// without them the catalog is built from the built-in seed templates alone.
type CatalogConfig struct {
	AugmentPath     string `koanf:"augment_path"`
	AugmentInline   string `koanf:"augment_inline"`
	OverridesPath   string `koanf:"overrides_path"`
	OverridesInline string `koanf:"overrides_inline"`
}

// NoiseConfig holds default noise generator settings.
type NoiseConfig struct {
	Level        string `koanf:"level" validate:"required,oneof=off low medium high"`
	Distribution string `koanf:"distribution" validate:"required,oneof=uniform gaussian"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Noise: NoiseConfig{Level: "medium", Distribution: "uniform"},
	}
}

// Load reads and validates configuration from a YAML file. A missing file is
// not an error: the engine runs from defaults.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// ConfigFrom extracts the Config from the CLI command metadata.
func ConfigFrom(cmd *cli.Command) (*Config, error) {
	v, ok := cmd.Root().Metadata["config"]
	if !ok {
		return nil, fmt.Errorf("config not found in command metadata")
	}
	cfg, ok := v.(*Config)
	if !ok {
		return nil, fmt.Errorf("config has unexpected type %T", v)
	}
	return cfg, nil
}
