// filepath: internal/storage/sniff.go
package storage

import "bytes"

// Recognized MIME types.
const (
	MimePNG  = "image/png"
	MimeJPEG = "image/jpeg"
)

var (
	pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	jpegSOI      = []byte{0xFF, 0xD8}
	jpegEOI      = []byte{0xFF, 0xD9}
)

// DefaultAllowedTypes maps each accepted MIME type to the extension used for
// the stored file.
func DefaultAllowedTypes() map[string]string {
	return map[string]string{
		MimePNG:  ".png",
		MimeJPEG: ".jpg",
	}
}

// SniffMimeType determines the file type from its bytes alone and returns ""
// when the content is not recognized.
//
// The JPEG check only looks at the SOI marker at the start and the EOI marker
// at the end, so a truncated or concatenated stream that happens to end in
// FF D9 is still reported as image/jpeg.
func SniffMimeType(data []byte) string {
	if bytes.HasPrefix(data, pngSignature) {
		return MimePNG
	}
	if bytes.HasPrefix(data, jpegSOI) && bytes.HasSuffix(data, jpegEOI) {
		return MimeJPEG
	}
	return ""
}
