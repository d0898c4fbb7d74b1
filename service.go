package mimekit

import (
	"fmt"
	"io"
	"sync"

	"github.com/gobeaver/beaver-kit/config"
)

// Global instance
var (
	defaultResolver *Resolver
	defaultOnce     sync.Once
	defaultErr      error
)

// Builder provides a way to create resolvers from environment variables
// with custom prefixes
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// Init initializes the global resolver using the builder's prefix
func (b *Builder) Init() error {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return err
	}
	return Init(cfg)
}

// New creates a new resolver using the builder's prefix
func (b *Builder) New(opts ...Option) (*Resolver, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// Init initializes the global resolver. Without a config, the config is
// loaded from the environment. If initialization fails the global resolver
// falls back to the built-in defaults and the error is returned.
func Init(configs ...*Config) error {
	defaultOnce.Do(func() {
		var cfg *Config
		if len(configs) > 0 {
			cfg = configs[0]
		} else {
			cfg, defaultErr = GetConfig()
		}

		if defaultErr == nil {
			defaultResolver, defaultErr = New(cfg)
		}
		if defaultErr != nil {
			defaultResolver = NewResolver(GetDefaultRegistry())
		}
	})

	return defaultErr
}

// New creates a resolver over the built-in registry with the given config.
// Options are applied after the config.
func New(cfg *Config, opts ...Option) (*Resolver, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	registry := GetDefaultRegistry()
	if keys := cfg.DisabledKeys(); len(keys) > 0 {
		registry = registry.Without(keys...)
	}

	options := []Option{
		WithDecoderFallback(cfg.ImageDecoder),
		WithLenientExtensions(cfg.LenientExtensions),
	}
	if cfg.SniffLimit > 0 {
		options = append(options, WithSniffLimit(cfg.SniffLimit))
	}
	options = append(options, opts...)

	return NewResolver(registry, options...), nil
}

// validateConfig checks configuration validity
func validateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: config is required", ErrInvalidConfig)
	}

	if cfg.SniffLimit < 0 {
		return fmt.Errorf("%w: negative sniff limit %d", ErrInvalidConfig, cfg.SniffLimit)
	}
	if longest := GetDefaultRegistry().MaxSignatureLen(); cfg.SniffLimit > 0 && cfg.SniffLimit < longest {
		return fmt.Errorf("%w: sniff limit %d is shorter than the longest signature (%d bytes)",
			ErrInvalidConfig, cfg.SniffLimit, longest)
	}

	for _, key := range cfg.DisabledKeys() {
		if _, ok := GetDefaultRegistry().Lookup(key); !ok {
			return fmt.Errorf("%w: unknown type %q", ErrInvalidConfig, key)
		}
	}

	if _, err := cfg.Level(); err != nil {
		return err
	}

	return nil
}

// Instance returns the global resolver, initializing it from the environment
// if needed. It never returns nil.
func Instance() *Resolver {
	_ = Init()
	return defaultResolver
}

// Default returns the global resolver, initializing if needed with error handling
func Default() (*Resolver, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return defaultResolver, nil
}

// NewFromEnv creates a resolver from environment variables (convenience constructor)
func NewFromEnv(opts ...Option) (*Resolver, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// Reset clears the global instance (for testing)
func Reset() {
	defaultResolver = nil
	defaultOnce = sync.Once{}
	defaultErr = nil
}

// ByExtension resolves ext with the global resolver
func ByExtension(ext string) Descriptor {
	return Instance().ByExtension(ext)
}

// BySignature resolves data and an optional extension hint with the global resolver
func BySignature(data []byte, ext string) Descriptor {
	return Instance().BySignature(data, ext)
}

// ByImageDecoder resolves image data with the global resolver
func ByImageDecoder(data []byte) Descriptor {
	return Instance().ByImageDecoder(data)
}

// Detect runs the combined detection with the global resolver
func Detect(data []byte, filename string) Descriptor {
	return Instance().Detect(data, filename)
}

// DetectReader runs the combined detection over the leading bytes of reader
// with the global resolver
func DetectReader(reader io.Reader, filename string) (Descriptor, error) {
	return Instance().DetectReader(reader, filename)
}
