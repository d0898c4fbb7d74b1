package mimekit

// Reserved registry keys for the sentinel descriptors
const (
	KeyBinary  = "binary"
	KeyUnknown = "unknown"
)

var (
	sigOLE  = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
	sigMZ   = []byte{0x4D, 0x5A, 0x90, 0x00, 0x03, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0x00, 0x00}
	sigOggS = []byte{0x4F, 0x67, 0x67, 0x53, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	sigRIFF = []byte("RIFF")
	sigASF  = []byte{0x30, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11, 0xA6, 0xD9, 0x00, 0xAA, 0x00, 0x62, 0xCE, 0x6C}
)

// builtinEntries returns the built-in type table in registry order.
// Several entries share a signature (exe/dll, ogx/oga/ogg, wav/avi, wma/wmv);
// their relative order decides the result when no extension hint is given.
func builtinEntries() []Entry {
	return []Entry{
		{KeyBinary, Binary},

		// Application
		{"doc", NewDescriptor(CategoryApplication, "application/msword", "Word Document", sigOLE, ".doc")},
		{"docx", NewDescriptor(CategoryApplication, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "Word 2007 Document",
			[]byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00, 0x06, 0x00, 0x08, 0x00, 0x00, 0x00, 0x21, 0x00}, ".docx")},
		{"exe", NewDescriptor(CategoryApplication, "application/x-msdownload", "MS Executable", sigMZ, ".exe")},
		{"dll", NewDescriptor(CategoryApplication, "application/x-msdownload", "Dynamic Link Library", sigMZ, ".dll")},
		{"ogx", NewDescriptor(CategoryApplication, "application/ogg", "OGG", sigOggS, ".ogx")},
		{"pdf", NewDescriptor(CategoryApplication, "application/pdf", "PDF Documents", []byte("%PDF-1."), ".pdf")},
		{"rar", NewDescriptor(CategoryApplication, "application/x-rar-compressed", "RAR Archive", []byte("Rar!\x1a\x07\x00"), ".rar")},
		{"swf", NewDescriptor(CategoryApplication, "application/x-shockwave-flash", "Shockwave Flash", []byte("FWS"), ".swf")},
		{"torrent", NewDescriptor(CategoryApplication, "application/x-bittorrent", "Bit Torrent", []byte("d8:announce"), ".torrent")},
		{"ttf", NewDescriptor(CategoryApplication, "application/x-font-ttf", "True Type Font", []byte{0x00, 0x01, 0x00, 0x00, 0x00}, ".ttf")},
		{"zip", NewDescriptor(CategoryApplication, "application/x-zip-compressed", "ZIP Archive", []byte{0x50, 0x4B, 0x03, 0x04, 0x0A}, ".zip")},

		// Images
		{"png", NewDescriptor(CategoryImage, "image/png", "PNG Image",
			[]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}, ".png")},
		{"jpg", NewDescriptor(CategoryImage, "image/jpeg", "JPG Image", []byte{0xFF, 0xD8, 0xFF}, ".jpeg", ".jpg")},
		{"gif", NewDescriptor(CategoryImage, "image/gif", "GIF Image", []byte("GIF8"), ".gif")},
		{"bmp", NewDescriptor(CategoryImage, "image/bmp", "Bitmap Image", []byte("BM"), ".bmp")},
		{"ico", NewDescriptor(CategoryImage, "image/x-icon", "Icon", []byte{0x00, 0x00, 0x01, 0x00}, ".ico")},
		{"tiff", NewDescriptor(CategoryImage, "image/tiff", "TIFF Image", []byte{0x49, 0x49, 0x2A, 0x00}, ".tiff")},

		// Audio
		{"mp3", NewDescriptor(CategoryAudio, "audio/mpeg", "MP3", []byte{0xFF, 0xFB, 0x30}, ".mp3")},
		{"oga", NewDescriptor(CategoryAudio, "audio/ogg", "OGA", sigOggS, ".oga")},
		{"wav", NewDescriptor(CategoryAudio, "audio/x-wav", "WAV", sigRIFF, ".wav")},
		{"wma", NewDescriptor(CategoryAudio, "audio/x-ms-wma", "WMA", sigASF, "wma")},

		// Video
		{"ogg", NewDescriptor(CategoryVideo, "video/ogg", "OGG", sigOggS, ".ogg")},
		{"avi", NewDescriptor(CategoryVideo, "video/x-msvideo", "AVI", sigRIFF, ".avi")},
		{"wmv", NewDescriptor(CategoryVideo, "video/x-ms-wmv", "WMV", sigASF, ".wmv")},

		{KeyUnknown, Unknown},
	}
}
