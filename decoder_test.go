package mimekit

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 80), B: 128, A: 255})
		}
	}
	return img
}

func encodeImage(t testing.TB, encode func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := encode(&buf, testImage()); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

func pngImage(t testing.TB) []byte {
	return encodeImage(t, func(b *bytes.Buffer, img image.Image) error { return png.Encode(b, img) })
}

// largeTIFF encodes an uncompressed TIFF whose IFD lands after the pixel
// data, well past DefaultSniffLimit
func largeTIFF(t testing.TB) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := tiff.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 64, 64)), nil); err != nil {
		t.Fatalf("encode tiff: %v", err)
	}
	if buf.Len() <= DefaultSniffLimit {
		t.Fatalf("tiff is %d bytes, want more than %d", buf.Len(), DefaultSniffLimit)
	}
	return buf.Bytes()
}

func TestByImageDecoder(t *testing.T) {
	r := NewResolver(DefaultRegistry())

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"png", pngImage(t), "image/png"},
		{"jpeg", encodeImage(t, func(b *bytes.Buffer, img image.Image) error { return jpeg.Encode(b, img, nil) }), "image/jpeg"},
		{"gif", encodeImage(t, func(b *bytes.Buffer, img image.Image) error { return gif.Encode(b, img, nil) }), "image/gif"},
		{"bmp", encodeImage(t, func(b *bytes.Buffer, img image.Image) error { return bmp.Encode(b, img) }), "image/bmp"},
		{"tiff", encodeImage(t, func(b *bytes.Buffer, img image.Image) error { return tiff.Encode(b, img, nil) }), "image/tiff"},
		{"not an image", []byte("definitely not pixels"), "unknown"},
		{"truncated png", pngImage(t)[:10], "unknown"},
		{"empty", nil, "unknown"},
		{"pdf", []byte("%PDF-1.7\n1 0 obj"), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ByImageDecoder(tt.data); got.Name() != tt.want {
				t.Errorf("ByImageDecoder() = %s, want %s", got.Name(), tt.want)
			}
		})
	}
}

func TestByImageDecoderNeedsFullTIFF(t *testing.T) {
	r := NewResolver(DefaultRegistry())
	data := largeTIFF(t)

	if got := r.ByImageDecoder(data); got.Name() != "image/tiff" {
		t.Errorf("ByImageDecoder(full) = %s, want image/tiff", got.Name())
	}
	if got := r.ByImageDecoder(data[:r.SniffLimit()]); !got.IsUnknown() {
		t.Errorf("ByImageDecoder(prefix) = %s, want unknown", got.Name())
	}
}

func TestByImageDecoderMatchesSignatureResult(t *testing.T) {
	r := NewResolver(DefaultRegistry())
	data := pngImage(t)

	byDecoder := r.ByImageDecoder(data)
	bySignature := r.BySignature(data, "")
	if !byDecoder.Equal(bySignature) {
		t.Errorf("ByImageDecoder() = %s, BySignature() = %s", byDecoder.Name(), bySignature.Name())
	}
}

// stubDecoder reports a fixed format for any input
type stubDecoder struct {
	format string
	err    error
	codecs []Codec
}

func (s stubDecoder) DecodeFormat([]byte) (string, error) { return s.format, s.err }
func (s stubDecoder) Codecs() []Codec                     { return s.codecs }

func TestLookupImage(t *testing.T) {
	pngData := pngImage(t)

	tests := []struct {
		name     string
		registry *Registry
		opts     []Option
		data     []byte
		wantName string
		wantErr  error
	}{
		{
			name:     "recognized",
			registry: DefaultRegistry(),
			data:     pngData,
			wantName: "image/png",
		},
		{
			name:     "undecodable",
			registry: DefaultRegistry(),
			data:     []byte("nope"),
			wantName: "unknown",
			wantErr:  ErrUnrecognizedImage,
		},
		{
			name:     "decoded type missing from registry",
			registry: DefaultRegistry().Without("png"),
			data:     pngData,
			wantName: "unknown",
			wantErr:  ErrNotRegistered,
		},
		{
			name:     "decoder disabled",
			registry: DefaultRegistry(),
			opts:     []Option{WithImageDecoder(nil)},
			data:     pngData,
			wantName: "unknown",
			wantErr:  ErrNoCodec,
		},
		{
			name:     "format without codec",
			registry: DefaultRegistry(),
			opts:     []Option{WithImageDecoder(stubDecoder{format: "heic"})},
			data:     pngData,
			wantName: "unknown",
			wantErr:  ErrNoCodec,
		},
		{
			name:     "decoder error is wrapped",
			registry: DefaultRegistry(),
			opts:     []Option{WithImageDecoder(stubDecoder{err: errors.New("codec crashed")})},
			data:     pngData,
			wantName: "unknown",
			wantErr:  ErrUnrecognizedImage,
		},
		{
			name:     "codec mime type compared case-insensitively",
			registry: DefaultRegistry(),
			opts: []Option{WithImageDecoder(stubDecoder{
				format: "ICO",
				codecs: []Codec{{FormatID: "ico", MIMEType: "IMAGE/X-ICON"}},
			})},
			data:     []byte{0x00, 0x00, 0x01, 0x00},
			wantName: "image/x-icon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.registry, tt.opts...)

			got, err := r.LookupImage(tt.data)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("LookupImage() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("LookupImage() error = %v, want %v", err, tt.wantErr)
			}
			if got.Name() != tt.wantName {
				t.Errorf("LookupImage() = %s, want %s", got.Name(), tt.wantName)
			}

			// ByImageDecoder never reports the error
			if byDecoder := r.ByImageDecoder(tt.data); !byDecoder.Equal(got) {
				t.Errorf("ByImageDecoder() = %s, LookupImage() = %s", byDecoder.Name(), got.Name())
			}
		})
	}
}

func TestStdImageDecoderCodecs(t *testing.T) {
	var decoder StdImageDecoder
	codecs := decoder.Codecs()
	codecs[0].MIMEType = "mutated"

	if decoder.Codecs()[0].MIMEType == "mutated" {
		t.Error("Codecs() exposes the shared codec table")
	}

	formats := map[string]bool{}
	for _, c := range decoder.Codecs() {
		formats[c.FormatID] = true
	}
	for _, f := range []string{"png", "jpeg", "gif", "bmp", "tiff", "webp"} {
		if !formats[f] {
			t.Errorf("Codecs() missing %s", f)
		}
	}
}
