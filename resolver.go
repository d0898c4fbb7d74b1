package mimekit

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
)

// Resolver classifies content against a Registry.
// Every resolution method returns a concrete descriptor; Unknown and Binary
// stand in for "could not classify". A Resolver is safe for concurrent use.
type Resolver struct {
	registry          *Registry
	decoder           ImageDecoder
	logger            *slog.Logger
	lenientExtensions bool
	decoderFallback   bool
	sniffLimit        int
}

// NewResolver creates a resolver over registry. A nil registry selects the
// global default registry.
func NewResolver(registry *Registry, opts ...Option) *Resolver {
	if registry == nil {
		registry = GetDefaultRegistry()
	}

	r := &Resolver{
		registry:        registry,
		decoder:         StdImageDecoder{},
		logger:          slog.New(slog.DiscardHandler),
		decoderFallback: true,
		sniffLimit:      DefaultSniffLimit,
	}
	for _, opt := range opts {
		opt(r)
	}

	if longest := registry.MaxSignatureLen(); r.sniffLimit < longest {
		r.sniffLimit = longest
	}
	return r
}

// Registry returns the registry the resolver reads from
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// SniffLimit returns the number of bytes DetectReader inspects
func (r *Resolver) SniffLimit() int {
	return r.sniffLimit
}

func (r *Resolver) normalizeHint(ext string) string {
	if !r.lenientExtensions {
		return ext
	}
	ext = strings.TrimSpace(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// ByExtension returns the first descriptor in registry order that owns ext,
// compared case-insensitively. The extension must include its leading dot
// unless lenient extensions are enabled. Returns Unknown if nothing matches.
func (r *Resolver) ByExtension(ext string) Descriptor {
	if matches := r.registry.matchExtension(r.normalizeHint(ext)); len(matches) > 0 {
		return r.registry.at(matches[0])
	}
	return Unknown
}

// BySignature compares the leading bytes of data against the registered
// signatures. When several descriptors share the matching signature, a
// non-blank ext narrows them to the ones owning that extension. When no
// signature matches and ext is non-blank, the result of ByExtension is
// returned. Otherwise the first remaining candidate in registry order wins,
// or Binary if none remain.
//
// Narrowing is a plain filter: if ext matches none of the candidates the
// result is Binary, not an extension-only lookup.
func (r *Resolver) BySignature(data []byte, ext string) Descriptor {
	candidates := r.registry.matchSignature(data)
	hasHint := strings.TrimSpace(ext) != ""

	switch {
	case len(candidates) > 1 && hasHint:
		hint := r.normalizeHint(ext)
		narrowed := make([]int, 0, len(candidates))
		for _, idx := range candidates {
			if r.registry.at(idx).HasExtension(hint) {
				narrowed = append(narrowed, idx)
			}
		}
		if len(narrowed) == 0 {
			r.logger.Debug("extension hint excluded every signature match",
				"extension", ext, "candidates", len(candidates))
		}
		candidates = narrowed

	case len(candidates) == 0 && hasHint:
		return r.ByExtension(ext)
	}

	if len(candidates) == 0 {
		return Binary
	}
	return r.registry.at(candidates[0])
}

// ByImageDecoder identifies image content by decoding its header with the
// installed image decoder. Any failure yields Unknown.
func (r *Resolver) ByImageDecoder(data []byte) Descriptor {
	d, err := r.LookupImage(data)
	if err != nil {
		r.logger.Debug("image decoder could not classify content", "error", err, "size", len(data))
		return Unknown
	}
	return d
}

// LookupImage is ByImageDecoder with the failure reason reported.
// The returned error wraps ErrUnrecognizedImage, ErrNoCodec or ErrNotRegistered.
func (r *Resolver) LookupImage(data []byte) (Descriptor, error) {
	if r.decoder == nil {
		return Unknown, fmt.Errorf("%w: image decoding disabled", ErrNoCodec)
	}

	format, err := r.decoder.DecodeFormat(data)
	if err != nil {
		if !errors.Is(err, ErrUnrecognizedImage) {
			err = fmt.Errorf("%w: %v", ErrUnrecognizedImage, err)
		}
		return Unknown, err
	}

	var codec *Codec
	for _, c := range r.decoder.Codecs() {
		if strings.EqualFold(c.FormatID, format) {
			codec = &c
			break
		}
	}
	if codec == nil {
		return Unknown, fmt.Errorf("%w: %s", ErrNoCodec, format)
	}

	for _, e := range r.registry.entries {
		if strings.EqualFold(e.Descriptor.Name(), codec.MIMEType) {
			return e.Descriptor, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %s", ErrNotRegistered, codec.MIMEType)
}

// Detect combines the strategies for content named filename. The extension
// of filename feeds BySignature; if that yields a sentinel and decoder
// fallback is enabled, ByImageDecoder is tried. Unrecognized non-empty
// content resolves to Binary, empty content to Unknown.
func (r *Resolver) Detect(data []byte, filename string) Descriptor {
	if d := r.BySignature(data, filepath.Ext(filename)); !d.IsSentinel() {
		return d
	}

	if r.decoderFallback && len(data) > 0 {
		if d := r.ByImageDecoder(data); !d.IsUnknown() {
			return d
		}
	}

	if len(data) == 0 {
		return Unknown
	}
	return Binary
}

// DetectReader reads up to the sniff limit from reader and runs Detect on it.
// Short reads are not an error. When that prefix classifies as Binary and
// decoder fallback is enabled, the rest of reader is consumed and the image
// decoder retried on the full content, since formats such as TIFF may keep
// their header metadata past the sniff limit.
func (r *Resolver) DetectReader(reader io.Reader, filename string) (Descriptor, error) {
	buf := make([]byte, r.sniffLimit)
	n, err := io.ReadFull(reader, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return Unknown, fmt.Errorf("%w: %v", ErrRead, err)
	}

	d := r.Detect(buf[:n], filename)
	if n < len(buf) || !d.IsBinary() || !r.decoderFallback || r.decoder == nil {
		return d, nil
	}

	rest, err := io.ReadAll(reader)
	if err != nil {
		return Unknown, fmt.Errorf("%w: %v", ErrRead, err)
	}
	if len(rest) == 0 {
		return d, nil
	}
	if img := r.ByImageDecoder(append(buf, rest...)); !img.IsUnknown() {
		return img, nil
	}
	return d, nil
}
