// Package config defines the data structures related to configuration and
// includes functions for loading the config and building the jurisdiction
// rate table from it.
package config

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/iwvelando/salarymoon/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for salarymoon.
type Configuration struct {
	Jurisdictions []Jurisdiction `yaml:"jurisdictions"`
	Logging       LoggingConfig  `yaml:"logging,omitempty"`
	Output        OutputConfig   `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Jurisdiction is one configured region and its flat tax rate. EmployeeRate
// and FreelanceRate override Rate for a single mode when set.
type Jurisdiction struct {
	Name          string   `yaml:"name" validate:"required"`
	Rate          float64  `yaml:"rate" validate:"gte=0,lt=1"`
	EmployeeRate  *float64 `yaml:"employeeRate,omitempty" validate:"omitempty,gte=0,lt=1"`
	FreelanceRate *float64 `yaml:"freelanceRate,omitempty" validate:"omitempty,gte=0,lt=1"`
}

// DefaultJurisdictions is the reference rate table used when the
// configuration does not list any jurisdictions.
func DefaultJurisdictions() []Jurisdiction {
	return []Jurisdiction{
		{Name: "Ontario", Rate: 0.4341},
		{Name: "British Columbia", Rate: 0.4370},
		{Name: "Alberta", Rate: 0.3800},
		{Name: "Quebec", Rate: 0.4997},
		{Name: "Nova Scotia", Rate: 0.4750},
	}
}

// DefaultConfiguration returns the configuration used when no file is given.
func DefaultConfiguration() *Configuration {
	return &Configuration{Jurisdictions: DefaultJurisdictions()}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	v := newViper()
	if len(bytes.TrimSpace(data)) > 0 {
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("error reading config data, %s", err)
		}
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Registered so that AutomaticEnv can override them during Unmarshal.
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", "")
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if len(configuration.Jurisdictions) == 0 {
		configuration.Jurisdictions = DefaultJurisdictions()
	}

	if err := configuration.Validate(); err != nil {
		return nil, err
	}

	return &configuration, nil
}

// Validate checks every jurisdiction entry and rejects duplicate names.
func (c *Configuration) Validate() error {
	validate := validator.New()
	seen := make(map[string]struct{}, len(c.Jurisdictions))
	for i, j := range c.Jurisdictions {
		if err := validate.Struct(j); err != nil {
			return fmt.Errorf("invalid jurisdiction at index %d (%q): %w", i, j.Name, err)
		}
		if _, dup := seen[j.Name]; dup {
			return fmt.Errorf("duplicate jurisdiction %q", j.Name)
		}
		seen[j.Name] = struct{}{}
	}
	return nil
}
