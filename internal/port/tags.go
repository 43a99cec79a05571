package port

import "context"

// TagCleaner rewrites the embedded metadata of an audio file in place.
type TagCleaner interface {
	Clean(path string) error
}

// PostUploadHook runs once per job after item uploads, given the namespace location.
type PostUploadHook interface {
	Run(ctx context.Context, location string) error
}
