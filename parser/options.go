package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/openmgmt/yangtools/internal/options"
)

// defaultMaxFileSize is the maximum document size accepted by default.
const defaultMaxFileSize = 10 * 1024 * 1024 // 10MB

var (
	errNoSource    = errors.New("parser: must specify an input source (use WithFilePath, WithReader, or WithBytes)")
	errMultiSource = errors.New("parser: must specify exactly one input source")
)

// Option is a function that configures a parse operation.
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation.
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	logger Logger

	// Resource limits (0 means use default)
	maxFileSize int64

	// Source identification
	sourceName *string
}

// applyOptions applies option functions and validates configuration.
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := options.SingleSource(errNoSource, errMultiSource,
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil); err != nil {
		return nil, err
	}
	if cfg.maxFileSize == 0 {
		cfg.maxFileSize = defaultMaxFileSize
	}
	return cfg, nil
}

// log returns the configured logger, or a no-op logger if none is set.
func (cfg *parseConfig) log() Logger {
	if cfg.logger != nil {
		return cfg.logger
	}
	return NopLogger{}
}

// source returns the name to report for the input, preferring an explicit
// WithSourceName over the file path.
func (cfg *parseConfig) source() string {
	if cfg.sourceName != nil {
		return *cfg.sourceName
	}
	if cfg.filePath != nil {
		return *cfg.filePath
	}
	return "<memory>"
}

// WithFilePath specifies a file path as the input source.
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source.
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return fmt.Errorf("parser: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source.
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return fmt.Errorf("parser: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithLogger sets the structured logger for debug output.
// Default: logging disabled
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxFileSize sets the maximum document size in bytes.
// Default: 10MB
func WithMaxFileSize(size int64) Option {
	return func(cfg *parseConfig) error {
		if size < 0 {
			return fmt.Errorf("parser: max file size cannot be negative: %d", size)
		}
		cfg.maxFileSize = size
		return nil
	}
}

// WithSourceName overrides the source name reported in errors.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = &name
		return nil
	}
}
