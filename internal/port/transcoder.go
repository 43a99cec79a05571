package port

import "context"

// Transcoder wraps the external media tool. A nonzero exit is reported as an
// error; callers decide whether it is fatal.
type Transcoder interface {
	Strip(ctx context.Context, inputPath, outputPath string) error
	Preview(ctx context.Context, inputPath, outputPath string) error
	// RenderVideo combines audio with a still image. An empty imagePath
	// renders over a plain background.
	RenderVideo(ctx context.Context, audioPath, imagePath, outputPath string) error
}
