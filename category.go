package mimekit

import "strings"

// Category is a coarse classification of a content type
type Category int

const (
	CategoryApplication Category = iota
	CategoryAudio
	CategoryImage
	CategoryVideo
	CategoryUnknown
)

var categoryNames = [...]string{
	CategoryApplication: "application",
	CategoryAudio:       "audio",
	CategoryImage:       "image",
	CategoryVideo:       "video",
	CategoryUnknown:     "unknown",
}

// String returns the lower-case category name
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return categoryNames[CategoryUnknown]
	}
	return categoryNames[c]
}

// ParseCategory returns the category for a name, ignoring case.
// The second return value is false if the name is not a known category.
func ParseCategory(name string) (Category, bool) {
	for i, n := range categoryNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Category(i), true
		}
	}
	return CategoryUnknown, false
}
