package domain

import (
	"path"
	"path/filepath"
)

type ArtifactKind string

const (
	ArtifactAudioFull     ArtifactKind = "audio-full"
	ArtifactAudioStripped ArtifactKind = "audio-stripped"
	ArtifactPreview       ArtifactKind = "preview"
	ArtifactVideo         ArtifactKind = "video"
	ArtifactArchive       ArtifactKind = "archive"
)

// Artifact is a local file produced by a stage and destined for the upload
// namespace. RemoteSubpath is relative to the namespace; empty means the root.
type Artifact struct {
	LocalPath     string
	RemoteSubpath string
	Kind          ArtifactKind
}

func NewArtifact(kind ArtifactKind, localPath, remoteSubpath string) Artifact {
	return Artifact{LocalPath: localPath, RemoteSubpath: remoteSubpath, Kind: kind}
}

// RemotePath is the slash-separated destination of the artifact inside namespace.
func (a Artifact) RemotePath(namespace string) string {
	return path.Join(namespace, filepath.ToSlash(a.RemoteSubpath), filepath.Base(a.LocalPath))
}
