package mimekit

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"  // Register BMP format
	_ "golang.org/x/image/tiff" // Register TIFF format
	_ "golang.org/x/image/webp" // Register WebP format
)

// Codec describes an installed image decoder
type Codec struct {
	// FormatID is the identifier the decoder reports for content it accepts
	FormatID string

	// MIMEType is the content type handled by the decoder
	MIMEType string
}

// ImageDecoder identifies image content by attempting to decode it.
// DecodeFormat fails for data no installed codec accepts.
type ImageDecoder interface {
	DecodeFormat(data []byte) (string, error)
	Codecs() []Codec
}

var stdCodecs = []Codec{
	{FormatID: "png", MIMEType: "image/png"},
	{FormatID: "jpeg", MIMEType: "image/jpeg"},
	{FormatID: "gif", MIMEType: "image/gif"},
	{FormatID: "bmp", MIMEType: "image/bmp"},
	{FormatID: "tiff", MIMEType: "image/tiff"},
	{FormatID: "webp", MIMEType: "image/webp"},
}

// StdImageDecoder decodes with the image package. GIF, JPEG and PNG come from
// the standard library, BMP, TIFF and WebP from golang.org/x/image.
type StdImageDecoder struct{}

// DecodeFormat reads only the image header via image.DecodeConfig.
// The whole image is never decoded into memory.
func (StdImageDecoder) DecodeFormat(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrUnrecognizedImage
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnrecognizedImage, err)
	}
	return format, nil
}

// Codecs returns the codecs StdImageDecoder can report
func (StdImageDecoder) Codecs() []Codec {
	out := make([]Codec, len(stdCodecs))
	copy(out, stdCodecs)
	return out
}
