package constants

import "strings"

// FileTypes holds the allowed file types for the format field in ImportJob.
var FileTypes = []string{"PDF", "TXT"}

const (
	PDF = "PDF"
	TXT = "TXT"
)

// AllowedExtensions holds the allowed file extensions for invoice import.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
	"txt": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to an ImportJob format.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "txt":
		return TXT
	default:
		return ""
	}
}
