package config

import (
	"fmt"
	"os"

	"github.com/iamNilotpal/crc/internal/core/domain"
	"github.com/iamNilotpal/crc/pkg/checksum"
	"github.com/iamNilotpal/crc/pkg/errors"
	"github.com/iamNilotpal/crc/pkg/logger"
	"gopkg.in/yaml.v3"
)

const (
	FormatText   = "text"
	FormatBinary = "binary"
)

type Config struct {
	Checksum       ChecksumConfig    `yaml:"checksum"`
	Compression    CompressionConfig `yaml:"compression"`
	ManifestFormat string            `yaml:"manifest_format"` // text or binary
	LogLevel       string            `yaml:"log_level"`       // zap level name
}

// Holds checksum engine configuration
type ChecksumConfig struct {
	Algorithm   string `yaml:"algorithm"`   // crc32-ieee or crc32c
	Engine      string `yaml:"engine"`      // auto, generic or hardware
	ChunkSize   uint32 `yaml:"chunk_size"`  // Bytes read per step
	Concurrency uint8  `yaml:"concurrency"` // Files checksummed in parallel
}

// Holds decoding configuration for compressed inputs
type CompressionConfig struct {
	Enable             bool  `yaml:"enable"`              // Decode .zst inputs
	DecoderConcurrency uint8 `yaml:"decoder_concurrency"` // Goroutines per decoder
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "info",
		ManifestFormat: FormatText,
		Checksum: ChecksumConfig{
			Algorithm:   string(domain.CRC32C),
			Engine:      checksum.Auto.String(),
			ChunkSize:   1024 * 1024, // 1MB
			Concurrency: 4,
		},
	}
}

// Loads configuration from a YAML file. Keys missing from the file keep
// their default values.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate checks the values that can be checked without building a service.
func (c *Config) Validate() error {
	switch domain.ChecksumAlgorithm(c.Checksum.Algorithm) {
	case domain.CRC32IEEE, domain.CRC32C:
	default:
		return errors.NewValidationError(
			"checksum.algorithm", c.Checksum.Algorithm, fmt.Errorf("must be crc32-ieee or crc32c"),
		)
	}

	if _, ok := checksum.ParseStrategy(c.Checksum.Engine); !ok {
		return errors.NewValidationError(
			"checksum.engine", c.Checksum.Engine, fmt.Errorf("must be auto, generic or hardware"),
		)
	}

	if c.Checksum.Concurrency == 0 {
		return errors.NewValidationError("checksum.concurrency", c.Checksum.Concurrency, fmt.Errorf("must be at least 1"))
	}

	switch c.ManifestFormat {
	case FormatText, FormatBinary:
	default:
		return errors.NewValidationError("manifest_format", c.ManifestFormat, fmt.Errorf("must be text or binary"))
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return errors.NewValidationError("log_level", c.LogLevel, err)
	}

	return nil
}

// Options converts the configuration into service options.
func (c *Config) Options() *domain.ChecksumOptions {
	strategy, _ := checksum.ParseStrategy(c.Checksum.Engine)

	return &domain.ChecksumOptions{
		Strategy:    strategy,
		Algorithm:   domain.ChecksumAlgorithm(c.Checksum.Algorithm),
		ChunkSize:   c.Checksum.ChunkSize,
		Concurrency: c.Checksum.Concurrency,
		CompressionOptions: &domain.CompressionOptions{
			Enable:             c.Compression.Enable,
			DecoderConcurrency: c.Compression.DecoderConcurrency,
		},
	}
}
