package mimekit

import "log/slog"

// DefaultSniffLimit is the number of leading bytes DetectReader reads when no
// limit is configured. It covers every built-in signature and the headers the
// image decoders need.
const DefaultSniffLimit = 4096

// Option represents a resolver configuration option
type Option func(*Resolver)

// WithImageDecoder sets the decoder used by ByImageDecoder.
// A nil decoder disables decoder-assisted resolution.
func WithImageDecoder(decoder ImageDecoder) Option {
	return func(r *Resolver) {
		r.decoder = decoder
	}
}

// WithDecoderFallback controls whether Detect consults the image decoder when
// signature and extension lookups find nothing
func WithDecoderFallback(enabled bool) Option {
	return func(r *Resolver) {
		r.decoderFallback = enabled
	}
}

// WithLenientExtensions makes extension hints match with or without their
// leading dot, so "png" resolves like ".png"
func WithLenientExtensions(enabled bool) Option {
	return func(r *Resolver) {
		r.lenientExtensions = enabled
	}
}

// WithSniffLimit sets how many leading bytes DetectReader reads.
// Values below the registry's longest signature are raised to it.
func WithSniffLimit(n int) Option {
	return func(r *Resolver) {
		r.sniffLimit = n
	}
}

// WithLogger sets the logger for debug records. Nothing is logged by default.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}
