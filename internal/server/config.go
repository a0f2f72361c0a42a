package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/iwvelando/salarymoon/internal/config"
	"github.com/iwvelando/salarymoon/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address     string               `yaml:"address"`
	MaxFormSize string               `yaml:"maxFormSize"`
	RatesFile   string               `yaml:"ratesFile"`
	Logging     config.LoggingConfig `yaml:"logging"`
	formBytes   int64
}

// LoadConfig loads the server configuration from YAML. An empty path or a
// missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{Address: constants.DefaultServerAddress}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read server config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse server config: %w", err)
			}
		}
	}

	if cfg.Address == "" {
		cfg.Address = constants.DefaultServerAddress
	}
	if err := cfg.SetMaxFormSize(cfg.MaxFormSize); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FormSizeBytes returns the maximum accepted form body in bytes.
func (c *Config) FormSizeBytes() int64 {
	return c.formBytes
}

// SetMaxFormSize parses size (see ParseSize) and makes it the form limit.
// An empty size restores the default.
func (c *Config) SetMaxFormSize(size string) error {
	n, err := ParseSize(size)
	if err != nil {
		return fmt.Errorf("invalid maxFormSize: %w", err)
	}
	c.formBytes = n
	c.MaxFormSize = strings.TrimSpace(size)
	return nil
}

// ParseSize reads a positive byte count with an optional K or M suffix
// (binary multiples), e.g. "65536", "64K", "1M".
func ParseSize(value string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(value))
	if s == "" {
		return constants.DefaultMaxFormSizeBytes, nil
	}

	multiplier := int64(1)
	if rest, ok := strings.CutSuffix(s, "K"); ok {
		s, multiplier = rest, 1<<10
	} else if rest, ok := strings.CutSuffix(s, "M"); ok {
		s, multiplier = rest, 1<<20
	}

	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("size %q is not a byte count", value)
	}
	if n <= 0 || n > (1<<62)/multiplier {
		return 0, fmt.Errorf("size %q is out of range", value)
	}
	return n * multiplier, nil
}
