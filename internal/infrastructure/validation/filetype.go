package validation

import (
	"net/http"
	"strings"

	"github.com/bnema/mixtaped/internal/domain"
)

// SniffLength is how many leading bytes DetectContentType looks at.
const SniffLength = 512

// DetectContentType sniffs a MIME type from the leading bytes of a file,
// handling audio signatures net/http does not know about.
func DetectContentType(head []byte) string {
	if len(head) > SniffLength {
		head = head[:SniffLength]
	}
	if len(head) == 0 {
		return "application/octet-stream"
	}
	if mime := detectCustomMagicBytes(head); mime != "" {
		return mime
	}
	return http.DetectContentType(head)
}

// MatchesEntryKind reports whether sniffed content agrees with the kind the
// entry name promised. EntrySkip never matches.
func MatchesEntryKind(head []byte, kind domain.EntryKind) bool {
	mime := DetectContentType(head)
	switch kind {
	case domain.EntryAudio:
		return mime == "audio/mpeg"
	case domain.EntryImage:
		return strings.HasPrefix(mime, "image/")
	default:
		return false
	}
}

func detectCustomMagicBytes(buf []byte) string {
	if len(buf) < 3 {
		return ""
	}

	// ID3v2 tag in front of an MP3 stream
	if buf[0] == 'I' && buf[1] == 'D' && buf[2] == '3' {
		return "audio/mpeg"
	}

	if isMPEGFrameHeader(buf) {
		return "audio/mpeg"
	}

	return ""
}

// isMPEGFrameHeader checks for an 11-bit frame sync with a valid version,
// layer and bitrate index. It accepts MPEG-1, 2 and 2.5, layers I to III.
func isMPEGFrameHeader(buf []byte) bool {
	if buf[0] != 0xFF || buf[1]&0xE0 != 0xE0 {
		return false
	}
	version := (buf[1] >> 3) & 0x03
	layer := (buf[1] >> 1) & 0x03
	bitrate := buf[2] >> 4
	return version != 0x01 && layer != 0x00 && bitrate != 0x0F
}
