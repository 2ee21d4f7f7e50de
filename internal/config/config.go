package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// WeekendRule describes a recurring shore-weekend duty to plan automatically.
// The rrule expands to period start times; each occurrence becomes one
// weekend period of the configured length.
type WeekendRule struct {
	RRule         string `yaml:"rrule" validate:"required"`
	DurationHours int    `yaml:"durationHours" validate:"required,min=1"`
	StartingShift int    `yaml:"startingShift" validate:"required,min=1,max=3"`
	Note          string `yaml:"note,omitempty"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL    string        `yaml:"databaseURL" validate:"required"`
	OffShipNumbers []int         `yaml:"offShipNumbers,omitempty" validate:"dive,min=1,max=63"`
	WeekendRules   []WeekendRule `yaml:"weekendRules,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from vagtplan_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, rule := range cfg.WeekendRules {
		if _, err := rrule.StrToRRule(rule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in weekendRules[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for vagtplan_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "vagtplan_config.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
