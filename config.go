package mimekit

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Bytes read by DetectReader before classifying
	SniffLimit int `env:"MIMEKIT_SNIFF_LIMIT,default:4096"`

	// Consult the image decoder when Detect finds no signature or extension match
	ImageDecoder bool `env:"MIMEKIT_IMAGE_DECODER,default:true"`

	// Accept extension hints without their leading dot
	LenientExtensions bool `env:"MIMEKIT_LENIENT_EXTENSIONS,default:false"`

	// Registry keys to leave out of the built-in table
	DisabledTypes string `env:"MIMEKIT_DISABLED_TYPES"` // comma-separated

	// Log level for callers that build a logger from config (debug, info, warn, error)
	LogLevel string `env:"MIMEKIT_LOG_LEVEL,default:info"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DisabledKeys returns the trimmed, non-empty entries of DisabledTypes
func (c *Config) DisabledKeys() []string {
	if c.DisabledTypes == "" {
		return nil
	}
	var keys []string
	for _, k := range strings.Split(c.DisabledTypes, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// Level parses LogLevel. An empty level means info.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, nil
}
