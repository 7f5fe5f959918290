package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyCityFallback         = "city.fallback"
	KeyCityCorrections      = "city.corrections"
	KeyImportAutoStats      = "import.auto_stats_after_import"
	KeyImportMergeByDefault = "import.merge_by_default"
	KeyWebListenAddr        = "web.listen_addr"
)

type Config struct {
	City   CityConfig   `mapstructure:"city" validate:"required"`
	Import ImportConfig `mapstructure:"import"`
	Web    WebConfig    `mapstructure:"web"`
}

type CityConfig struct {
	// Fallback is used when no city can be extracted from a filename.
	Fallback string `mapstructure:"fallback" validate:"required"`
	// Corrections extends the built-in city normalization table; keys are
	// letters-only lowercase tokens ("newyork"), values display names.
	Corrections map[string]string `mapstructure:"corrections"`
}

type ImportConfig struct {
	AutoStatsAfterImport bool `mapstructure:"auto_stats_after_import"`
	MergeByDefault       bool `mapstructure:"merge_by_default"`
}

type WebConfig struct {
	ListenAddr string `mapstructure:"listen_addr" validate:"required,hostname_port"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# voyago configuration
city:
  fallback: "New York"
  # Extra city-name corrections, keyed by the letters-only lowercase token
  # extracted from filenames.
  corrections: {}
  # corrections:
  #   kualalumpur: "Kuala Lumpur"

import:
  auto_stats_after_import: true
  merge_by_default: false

web:
  listen_addr: "127.0.0.1:7878"
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateCorrections(cfg.City.Corrections); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyCityFallback, "New York")
	v.SetDefault(KeyCityCorrections, map[string]string{})
	v.SetDefault(KeyImportAutoStats, true)
	v.SetDefault(KeyImportMergeByDefault, false)
	v.SetDefault(KeyWebListenAddr, "127.0.0.1:7878")
}

func validateCorrections(corrections map[string]string) error {
	for key, value := range corrections {
		trimmed := strings.TrimSpace(key)
		if trimmed == "" {
			return fmt.Errorf("validation failed: city.corrections contains an empty key")
		}
		if trimmed != strings.ToLower(trimmed) || strings.ContainsAny(trimmed, " _-") {
			return fmt.Errorf(
				"validation failed: city.corrections key %q must be a letters-only lowercase token",
				key,
			)
		}
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("validation failed: city.corrections[%q] has an empty value", key)
		}
	}
	return nil
}
