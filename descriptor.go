package mimekit

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"slices"
	"strings"
)

// Descriptor describes one known content type.
// A Descriptor is immutable: accessors return copies of the underlying slices.
type Descriptor struct {
	category     Category
	name         string
	friendlyName string
	signature    []byte
	extensions   []string
}

// Sentinel descriptors returned when nothing more specific matches.
// Unknown means no information was available, Binary means content was
// present but its format was not recognized.
var (
	Unknown = NewDescriptor(CategoryUnknown, "unknown", "Unknown type", nil)
	Binary  = NewDescriptor(CategoryApplication, "application/octet-stream", "Binary", nil)
)

// NewDescriptor creates a descriptor. The signature and extensions are copied.
// An empty signature is treated as absent.
func NewDescriptor(category Category, name, friendlyName string, signature []byte, extensions ...string) Descriptor {
	d := Descriptor{
		category:     category,
		name:         name,
		friendlyName: friendlyName,
	}
	if len(signature) > 0 {
		d.signature = bytes.Clone(signature)
	}
	for _, ext := range extensions {
		if ext == "" {
			continue
		}
		d.extensions = append(d.extensions, ext)
	}
	return d
}

// Category returns the descriptor category
func (d Descriptor) Category() Category { return d.category }

// Name returns the canonical MIME type, e.g. "image/png"
func (d Descriptor) Name() string { return d.name }

// FriendlyName returns a human-readable label
func (d Descriptor) FriendlyName() string { return d.friendlyName }

// Signature returns a copy of the magic bytes, or nil if the type cannot be
// identified by signature
func (d Descriptor) Signature() []byte { return bytes.Clone(d.signature) }

// Extensions returns a copy of the file extensions, or nil if the type cannot
// be identified by extension
func (d Descriptor) Extensions() []string { return slices.Clone(d.extensions) }

// HasSignature reports whether the descriptor carries magic bytes
func (d Descriptor) HasSignature() bool { return len(d.signature) > 0 }

// MatchesSignature reports whether data starts with the descriptor's signature.
// Data shorter than the signature never matches.
func (d Descriptor) MatchesSignature(data []byte) bool {
	if len(d.signature) == 0 || len(data) < len(d.signature) {
		return false
	}
	return bytes.Equal(data[:len(d.signature)], d.signature)
}

// HasExtension reports whether ext is one of the descriptor's extensions,
// ignoring case
func (d Descriptor) HasExtension(ext string) bool {
	for _, e := range d.extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// IsUnknown reports whether d is the Unknown sentinel
func (d Descriptor) IsUnknown() bool { return d.Equal(Unknown) }

// IsBinary reports whether d is the Binary sentinel
func (d Descriptor) IsBinary() bool { return d.Equal(Binary) }

// IsSentinel reports whether d is one of the fallback descriptors
func (d Descriptor) IsSentinel() bool { return d.IsUnknown() || d.IsBinary() }

// IsImage returns true if the descriptor is an image type
func (d Descriptor) IsImage() bool { return d.category == CategoryImage }

// IsAudio returns true if the descriptor is an audio type
func (d Descriptor) IsAudio() bool { return d.category == CategoryAudio }

// IsVideo returns true if the descriptor is a video type
func (d Descriptor) IsVideo() bool { return d.category == CategoryVideo }

// Equal reports whether two descriptors hold the same values
func (d Descriptor) Equal(other Descriptor) bool {
	return d.category == other.category &&
		d.name == other.name &&
		d.friendlyName == other.friendlyName &&
		bytes.Equal(d.signature, other.signature) &&
		slices.Equal(d.extensions, other.extensions)
}

// String returns the canonical MIME type
func (d Descriptor) String() string { return d.name }

// descriptorView is the serialized form used by MarshalJSON and MarshalYAML
type descriptorView struct {
	Category     string   `json:"category" yaml:"category"`
	Name         string   `json:"name" yaml:"name"`
	FriendlyName string   `json:"friendlyName" yaml:"friendlyName"`
	Signature    string   `json:"signature,omitempty" yaml:"signature,omitempty"`
	Extensions   []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

func (d Descriptor) view() descriptorView {
	v := descriptorView{
		Category:     d.category.String(),
		Name:         d.name,
		FriendlyName: d.friendlyName,
		Extensions:   d.Extensions(),
	}
	if len(d.signature) > 0 {
		v.Signature = hex.EncodeToString(d.signature)
	}
	return v
}

// MarshalJSON implements json.Marshaler. The signature is hex encoded.
func (d Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.view())
}

// MarshalYAML implements yaml.Marshaler
func (d Descriptor) MarshalYAML() (interface{}, error) {
	return d.view(), nil
}
