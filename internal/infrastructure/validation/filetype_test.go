package validation

import (
	"testing"

	"github.com/bnema/mixtaped/internal/domain"
	"github.com/stretchr/testify/assert"
)

var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46}
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	mp3Frame  = []byte{0xFF, 0xFB, 0x90, 0x00}
	mp3ID3    = []byte{0x49, 0x44, 0x33, 0x04, 0x00, 0x00}
	textBytes = []byte("just some liner notes")
)

func padBytes(magic []byte, size int) []byte {
	if len(magic) >= size {
		return magic
	}
	result := make([]byte, size)
	copy(result, magic)
	return result
}

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		name     string
		head     []byte
		expected string
	}{
		{name: "jpeg", head: padBytes(jpegMagic, 64), expected: "image/jpeg"},
		{name: "png", head: padBytes(pngMagic, 64), expected: "image/png"},
		{name: "mp3 frame sync", head: padBytes(mp3Frame, 64), expected: "audio/mpeg"},
		{name: "mp3 with id3", head: padBytes(mp3ID3, 64), expected: "audio/mpeg"},
		{name: "text", head: textBytes, expected: "text/plain; charset=utf-8"},
		{name: "empty", head: nil, expected: "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectContentType(tt.head))
		})
	}
}

func TestMatchesEntryKind(t *testing.T) {
	tests := []struct {
		name     string
		head     []byte
		kind     domain.EntryKind
		expected bool
	}{
		{name: "mp3 as audio", head: padBytes(mp3ID3, 32), kind: domain.EntryAudio, expected: true},
		{name: "jpeg as image", head: padBytes(jpegMagic, 32), kind: domain.EntryImage, expected: true},
		{name: "png as image", head: padBytes(pngMagic, 32), kind: domain.EntryImage, expected: true},
		{name: "jpeg named mp3", head: padBytes(jpegMagic, 32), kind: domain.EntryAudio, expected: false},
		{name: "text named jpg", head: textBytes, kind: domain.EntryImage, expected: false},
		{name: "skip never matches", head: padBytes(mp3ID3, 32), kind: domain.EntrySkip, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchesEntryKind(tt.head, tt.kind))
		})
	}
}

func TestIsMPEGFrameHeader(t *testing.T) {
	tests := []struct {
		name     string
		head     []byte
		expected bool
	}{
		{name: "mpeg1 layer3", head: []byte{0xFF, 0xFB, 0x90}, expected: true},
		{name: "mpeg1 layer2", head: []byte{0xFF, 0xFD, 0x80}, expected: true},
		{name: "mpeg1 layer2 unprotected", head: []byte{0xFF, 0xFC, 0x80}, expected: true},
		{name: "mpeg2 layer3", head: []byte{0xFF, 0xF3, 0x64}, expected: true},
		{name: "mpeg2.5 layer3", head: []byte{0xFF, 0xE3, 0x40}, expected: true},
		{name: "mpeg2.5 layer3 unprotected", head: []byte{0xFF, 0xE2, 0x40}, expected: true},
		{name: "reserved version", head: []byte{0xFF, 0xEB, 0x90}, expected: false},
		{name: "reserved layer (aac adts)", head: []byte{0xFF, 0xF1, 0x50}, expected: false},
		{name: "bad bitrate index", head: []byte{0xFF, 0xFB, 0xF0}, expected: false},
		{name: "jpeg", head: []byte{0xFF, 0xD8, 0xFF}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isMPEGFrameHeader(tt.head))
			if tt.expected {
				assert.True(t, MatchesEntryKind(padBytes(tt.head, 64), domain.EntryAudio))
			}
		})
	}
}
