// Package validation checks untrusted archive entries before they touch the
// local filesystem.
package validation

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// maxFilenameLength is the common filesystem limit for one path element.
const maxFilenameLength = 255

// dangerousChars must never reach a local file name.
var dangerousChars = map[rune]bool{
	'"':  true,
	'\\': true,
	'/':  true,
	':':  true,
	'\n': true,
	'\r': true,
}

// SanitizeFilename turns one path element into a safe local file name:
//   - dangerous characters and control characters become underscores
//   - Unicode is preserved
//   - names are truncated to 255 bytes keeping the extension
//   - empty, "." and ".." become "file"
func SanitizeFilename(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))

	for _, r := range name {
		if shouldReplace(r) {
			sb.WriteRune('_')
		} else {
			sb.WriteRune(r)
		}
	}

	result := strings.TrimSpace(sb.String())
	if result == "" || result == "." || result == ".." || isOnlyUnderscores(result) {
		return "file"
	}

	if len(result) > maxFilenameLength {
		result = truncatePreservingExtension(result)
	}
	return result
}

// EntryBaseName returns the sanitized last element of a zip entry path. Both
// slash styles are treated as separators since zips built on Windows use '\'.
func EntryBaseName(entry string) string {
	entry = strings.ReplaceAll(entry, "\\", "/")
	entry = strings.TrimRight(entry, "/")
	if i := strings.LastIndex(entry, "/"); i >= 0 {
		entry = entry[i+1:]
	}
	return SanitizeFilename(entry)
}

func shouldReplace(r rune) bool {
	if r < 32 || r == 127 {
		return true
	}
	return dangerousChars[r]
}

func isOnlyUnderscores(s string) bool {
	for _, r := range s {
		if r != '_' {
			return false
		}
	}
	return true
}

func truncatePreservingExtension(name string) string {
	ext := filepath.Ext(name)
	extLen := len(ext)

	if extLen == 0 || extLen >= maxFilenameLength {
		return truncateToBytes(name, maxFilenameLength)
	}

	baseName := name[:len(name)-extLen]
	return truncateToBytes(baseName, maxFilenameLength-extLen) + ext
}

// truncateToBytes cuts s to at most maxBytes without splitting a rune.
func truncateToBytes(s string, maxBytes int) string {
	if len(s) <= maxBytes {
		return s
	}
	for maxBytes > 0 && !utf8.ValidString(s[:maxBytes]) {
		maxBytes--
	}
	return s[:maxBytes]
}
