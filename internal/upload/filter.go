package upload

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// AdvisoryMaxSize is the size printed on the dropzone. It is never enforced.
const AdvisoryMaxSize = 10 * humanize.MByte

// Filter is a hint about which files the picker offers first. Like a
// browser's accept attribute it narrows the default listing but never
// rejects a file that arrives some other way.
type Filter struct {
	Extensions []string
	MIMEPrefix []string
}

// DefaultFilter mirrors ".eml,.msg,.pdf,image/*".
func DefaultFilter() Filter {
	return Filter{
		Extensions: []string{".eml", ".msg", ".pdf"},
		MIMEPrefix: []string{"image/"},
	}
}

// imageExtensions backs the image/* part of the filter for the picker,
// which can only match on suffixes.
var imageExtensions = []string{
	".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".svg", ".tif", ".tiff", ".heic", ".avif", ".ico",
}

// Accepts reports whether the name matches the hint.
func (f Filter) Accepts(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	for _, allowed := range f.Extensions {
		if ext == allowed {
			return true
		}
	}
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		for _, img := range imageExtensions {
			if ext == img {
				contentType = "image/"
				break
			}
		}
	}
	for _, prefix := range f.MIMEPrefix {
		if strings.HasPrefix(contentType, prefix) {
			return true
		}
	}
	return false
}

// PickerTypes returns the suffix list for a filepicker's AllowedTypes.
func (f Filter) PickerTypes() []string {
	types := append([]string(nil), f.Extensions...)
	for _, prefix := range f.MIMEPrefix {
		if prefix != "image/" {
			continue
		}
		for _, ext := range imageExtensions {
			types = append(types, ext, strings.ToUpper(ext))
		}
	}
	for _, ext := range f.Extensions {
		types = append(types, strings.ToUpper(ext))
	}
	return types
}

// Label is the dropzone caption, eg. "EML, MSG, PDF, or image files (MAX. 10 MB)".
func (f Filter) Label() string {
	parts := make([]string, 0, len(f.Extensions)+1)
	for _, ext := range f.Extensions {
		parts = append(parts, strings.ToUpper(strings.TrimPrefix(ext, ".")))
	}
	for _, prefix := range f.MIMEPrefix {
		parts = append(parts, strings.TrimSuffix(prefix, "/")+" files")
	}
	var list string
	switch len(parts) {
	case 0:
		list = "Any file"
	case 1:
		list = parts[0]
	default:
		list = strings.Join(parts[:len(parts)-1], ", ") + ", or " + parts[len(parts)-1]
	}
	return list + " (MAX. " + humanize.Bytes(AdvisoryMaxSize) + ")"
}
