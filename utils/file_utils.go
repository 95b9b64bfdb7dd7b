package utils

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-z0-9._-]+`)

// NewIntakeToken returns the random unique prefix assigned to every stored
// upload. 128 bits of randomness makes collisions effectively impossible.
func NewIntakeToken() string {
	return uuid.NewString()
}

// SanitizeFilename strips path components and unsafe characters from a
// client-supplied filename. Returns "document" with the original extension
// when nothing safe remains.
func SanitizeFilename(name string) string {
	// Drop any path the client sent, both separators.
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	ext := strings.ToLower(filepath.Ext(name))
	base := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))

	base = strings.ReplaceAll(base, " ", "_")
	base = unsafeFilenameChars.ReplaceAllString(base, "")
	base = strings.Trim(base, "._-")
	if base == "" {
		base = "document"
	}

	ext = unsafeFilenameChars.ReplaceAllString(ext, "")
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return base + ext
}

// FileExtension returns the lowercase extension after the last dot, without
// the dot; empty when the name has none.
func FileExtension(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	return strings.TrimPrefix(ext, ".")
}
