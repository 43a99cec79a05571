package logger

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SanitizeForLog escapes control characters so untrusted text (client bytes,
// archive entry names, tag values) cannot forge log lines or drive the terminal.
// Printable Unicode is kept as is.
func SanitizeForLog(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	for _, r := range s {
		writeRune(&result, r)
	}
	return result.String()
}

// SanitizePayload is SanitizeForLog for raw network bytes: invalid UTF-8 is
// hex escaped and output is capped at max bytes of input (0 means no cap).
func SanitizePayload(b []byte, max int) string {
	truncated := 0
	if max > 0 && len(b) > max {
		truncated = len(b) - max
		b = b[:max]
	}

	var result strings.Builder
	result.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size <= 1 {
			result.WriteString(fmt.Sprintf("\\x%02x", b[0]))
			b = b[1:]
			continue
		}
		writeRune(&result, r)
		b = b[size:]
	}

	if truncated > 0 {
		result.WriteString(fmt.Sprintf("...(+%d bytes)", truncated))
	}
	return result.String()
}

func writeRune(sb *strings.Builder, r rune) {
	switch r {
	case '\n':
		sb.WriteString("\\n")
	case '\r':
		sb.WriteString("\\r")
	case '\t':
		sb.WriteString("\\t")
	case '\x00':
		sb.WriteString("\\x00")
	default:
		if r < 32 || r == 127 {
			sb.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			sb.WriteRune(r)
		}
	}
}
