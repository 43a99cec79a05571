package domain

import (
	"path/filepath"
	"strings"
)

type EntryKind string

const (
	EntryAudio EntryKind = "audio"
	EntryImage EntryKind = "image"
	EntrySkip  EntryKind = "skip"
)

// PlatformMetadataDir is the resource-fork directory macOS adds to zip files.
const PlatformMetadataDir = "__MACOSX"

var audioExts = map[string]bool{
	".mp3": true,
}

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true,
}

// ClassifyEntry decides what to do with an archive entry purely from its name.
func ClassifyEntry(name string) EntryKind {
	name = strings.ReplaceAll(name, "\\", "/")
	if name == "" || strings.HasSuffix(name, "/") {
		return EntrySkip
	}
	for _, segment := range strings.Split(name, "/") {
		if segment == PlatformMetadataDir {
			return EntrySkip
		}
	}

	base := name[strings.LastIndex(name, "/")+1:]
	if strings.HasPrefix(base, ".") {
		return EntrySkip
	}

	ext := strings.ToLower(filepath.Ext(base))
	if audioExts[ext] {
		return EntryAudio
	}
	if imageExts[ext] {
		return EntryImage
	}
	return EntrySkip
}

// ExtractTargets tells the archiver where each entry kind goes.
type ExtractTargets struct {
	AudioDir string
	ImageDir string
}

// Extraction lists what an archive yielded, as absolute local paths.
type Extraction struct {
	Audio   []string
	Images  []string
	Skipped []string
}

// ArchiveName returns the repackaged archive name for an input archive path.
func ArchiveName(input string) string {
	name := filepath.Base(input)
	if !strings.HasSuffix(strings.ToLower(name), ".zip") {
		name += ".zip"
	}
	return name
}
