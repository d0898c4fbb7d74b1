package mimekit

import (
	"errors"
	"fmt"
)

// Registry construction and configuration errors
var (
	ErrInvalidEntry  = errors.New("invalid registry entry")
	ErrDuplicateKey  = errors.New("duplicate registry key")
	ErrInvalidConfig = errors.New("invalid config")
	ErrRead          = errors.New("failed to read content")
)

// Image decoder errors. These never escape ByImageDecoder; they are only
// reported by LookupImage.
var (
	ErrUnrecognizedImage = errors.New("unrecognized image data")
	ErrNoCodec           = errors.New("no installed codec for image format")
	ErrNotRegistered     = errors.New("image type not in registry")
)

// EntryError records an error and the registry key that caused it
type EntryError struct {
	Key string
	Err error
}

// Error implements the error interface
func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %q: %v", e.Key, e.Err)
}

// Unwrap returns the underlying error
func (e *EntryError) Unwrap() error {
	return e.Err
}

// IsDuplicateKey reports whether an error indicates a registry key was
// supplied more than once
func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}
