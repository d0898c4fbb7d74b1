// Package mimekit identifies the MIME type of a blob from its file extension,
// its leading magic bytes, or by probing it with the installed image decoders.
//
// Every lookup returns a concrete [Descriptor]. When nothing matches, one of
// two sentinels is returned instead of an error: [Unknown] when there was no
// usable information, [Binary] when content was present but unrecognized.
//
// # Basic Usage
//
//	d := mimekit.ByExtension(".PNG")           // image/png
//	d = mimekit.BySignature(data, ".wav")      // RIFF data, disambiguated as WAV
//	d = mimekit.ByImageDecoder(data)           // header decoded by image codecs
//	d = mimekit.Detect(data, "upload.bin")     // all of the above combined
//
//	fmt.Println(d.Name(), d.FriendlyName(), d.Category())
//
// # Registry
//
// Types live in an ordered [Registry]. Order matters: several formats share a
// signature (WAV and AVI both start with "RIFF", the Ogg family shares "OggS")
// and the first registered match wins unless an extension hint narrows the
// candidates. The built-in registry is available through [GetDefaultRegistry]
// and can be derived from without modifying it:
//
//	reg, err := mimekit.GetDefaultRegistry().Extend(mimekit.Entry{
//	    Key:        "webp",
//	    Descriptor: mimekit.NewDescriptor(mimekit.CategoryImage, "image/webp", "WebP Image", nil, ".webp"),
//	})
//	r := mimekit.NewResolver(reg)
//
// # Image Decoders
//
// [StdImageDecoder] reads only the image header via image.DecodeConfig. GIF,
// JPEG and PNG come from the standard library; BMP, TIFF and WebP from
// golang.org/x/image. Supply a different [ImageDecoder] with [WithImageDecoder].
//
// # Configuration
//
// The global resolver used by the package-level functions can be configured
// via environment variables with the BEAVER_MIMEKIT_ prefix, or
// programmatically via the [Config] struct:
//
//	r, err := mimekit.New(&mimekit.Config{
//	    SniffLimit:    8192,
//	    ImageDecoder:  true,
//	    DisabledTypes: "exe,dll",
//	})
package mimekit
