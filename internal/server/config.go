package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/ucb-pesa/pesa-dashboard/internal/config"
	"github.com/ucb-pesa/pesa-dashboard/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address        string               `yaml:"address"`
	ReadTimeout    string               `yaml:"readTimeout"`
	MaxHeaderSize  string               `yaml:"maxHeaderSize"`
	Logging        config.LoggingConfig `yaml:"logging"`
	readTimeout    time.Duration
	maxHeaderBytes int64
}

// LoadConfig loads the server configuration from YAML. If the file does not exist,
// defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address:        constants.DefaultServerAddress,
		ReadTimeout:    constants.DefaultReadTimeout,
		MaxHeaderSize:  fmt.Sprintf("%d", constants.DefaultMaxHeaderBytes),
		Logging:        config.LoggingConfig{},
		maxHeaderBytes: constants.DefaultMaxHeaderBytes,
	}

	if path == "" {
		return cfg, cfg.normalize()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, cfg.normalize()
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadTimeoutDuration returns the parsed read timeout.
func (c *Config) ReadTimeoutDuration() time.Duration {
	return c.readTimeout
}

// MaxHeaderBytes returns the configured header size limit in bytes.
func (c *Config) MaxHeaderBytes() int64 {
	return c.maxHeaderBytes
}

func (c *Config) normalize() error {
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}

	timeout := strings.TrimSpace(c.ReadTimeout)
	if timeout == "" {
		timeout = constants.DefaultReadTimeout
		c.ReadTimeout = timeout
	}
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return fmt.Errorf("invalid read timeout %q: %w", c.ReadTimeout, err)
	}
	if d <= 0 {
		return fmt.Errorf("read timeout must be positive, got %s", c.ReadTimeout)
	}
	c.readTimeout = d

	sizeStr := strings.TrimSpace(c.MaxHeaderSize)
	if sizeStr == "" {
		c.maxHeaderBytes = constants.DefaultMaxHeaderBytes
		c.MaxHeaderSize = fmt.Sprintf("%d", constants.DefaultMaxHeaderBytes)
		return nil
	}

	bytes, err := ParseSize(sizeStr)
	if err != nil {
		return err
	}
	if bytes <= 0 {
		bytes = constants.DefaultMaxHeaderBytes
	}
	c.maxHeaderBytes = bytes
	return nil
}

// ParseSize converts a human-friendly byte string (e.g., "256K", "10M") into bytes.
func ParseSize(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return constants.DefaultMaxHeaderBytes, nil
	}

	upper := strings.ToUpper(trimmed)
	idx := len(upper)
	for idx > 0 && !unicode.IsDigit(rune(upper[idx-1])) {
		idx--
	}
	if idx == 0 {
		return 0, fmt.Errorf("invalid size: %s", value)
	}
	numPart := strings.TrimSpace(upper[:idx])
	unitPart := strings.TrimSpace(upper[idx:])

	n, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}

	var multiplier int64
	switch unitPart {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = 1024
	case "M", "MB":
		multiplier = 1024 * 1024
	default:
		return 0, fmt.Errorf("unsupported size unit %q", unitPart)
	}

	result := n * multiplier
	if result < 0 {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return result, nil
}
