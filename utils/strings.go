package utils

import (
	"regexp"
	"strings"
)

var (
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	filenameWhitespace   = regexp.MustCompile(`\s+`)
)

// CleanFileName removes invalid characters from a filename so trip titles can
// be used in export downloads.
func CleanFileName(filename string) string {
	cleaned := invalidFilenameChars.ReplaceAllString(filename, "_")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = filenameWhitespace.ReplaceAllString(cleaned, "_")
	return cleaned
}
