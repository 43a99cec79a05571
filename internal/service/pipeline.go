package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/multierr"

	"github.com/bnema/mixtaped/internal/domain"
	"github.com/bnema/mixtaped/internal/infrastructure/logger"
	"github.com/bnema/mixtaped/internal/port"
)

const (
	DefaultStripSubpath = "128/"
	previewSubpath      = "preview/"
	videoSubpath        = "video/"
)

type PipelineOptions struct {
	// StripSubpath is where stripped copies land inside the namespace.
	StripSubpath   string
	UploadPreviews bool
	RenderVideo    bool
	BaseURL        string
}

// PipelineDeps are the collaborators of a pipeline. Cleaner and Hook are
// optional.
type PipelineDeps struct {
	Archiver   port.Archiver
	Transcoder port.Transcoder
	Cleaner    port.TagCleaner
	Remote     port.RemoteStorage
	Counter    port.NamespaceCounter
	Hook       port.PostUploadHook
}

// Pipeline runs the stages of one job: unpack, per-item transforms and
// uploads, repackage, final upload.
type Pipeline struct {
	deps PipelineDeps
	opts PipelineOptions
}

func NewPipeline(deps PipelineDeps, opts PipelineOptions) *Pipeline {
	if opts.StripSubpath == "" {
		opts.StripSubpath = DefaultStripSubpath
	}
	return &Pipeline{deps: deps, opts: opts}
}

// Run processes the local archive at job.ArchiveLocation inside ws. Item
// failures are collected in the result; only resource failures return an
// error.
func (p *Pipeline) Run(ctx context.Context, job *domain.Job, ws *domain.WorkingSet) (result *domain.Result, err error) {
	start := time.Now()
	result = &domain.Result{}

	extraction, err := p.deps.Archiver.Extract(ctx, job.ArchiveLocation, domain.ExtractTargets{
		AudioDir: ws.Dir(domain.RoleRawExtract),
		ImageDir: ws.Dir(domain.RoleImages),
	})
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	logger.Info.Printf("%s: extracted %d audio, %d images, skipped %d entries",
		job, len(extraction.Audio), len(extraction.Images), len(extraction.Skipped))

	session, err := OpenUploadSession(ctx, p.deps.Counter, p.deps.Remote, p.opts.BaseURL)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, session.Close(ctx))
		if err != nil {
			result = nil
		}
	}()

	items := append([]string(nil), extraction.Audio...)
	sort.Slice(items, func(i, j int) bool { return filepath.Base(items[i]) < filepath.Base(items[j]) })
	images := newImagePool(extraction.Images)

	var packed []string
	for _, full := range items {
		if p.processItem(ctx, session, ws, full, images, result) {
			packed = append(packed, full)
		}
	}

	if p.deps.Hook != nil {
		if hookErr := p.deps.Hook.Run(ctx, session.Location()); hookErr != nil {
			logger.Warn.Printf("%s: post-upload hook failed: %v", job, hookErr)
		}
	}

	archiveName := domain.ArchiveName(job.ArchiveLocation)
	archivePath := filepath.Join(ws.Root, archiveName)
	if err := p.deps.Archiver.Pack(ctx, archivePath, packed); err != nil {
		return nil, fmt.Errorf("repackage: %w", err)
	}
	if info, statErr := os.Stat(archivePath); statErr == nil {
		logger.Info.Printf("%s: repackaged %d items into %s (%s)",
			job, len(packed), archiveName, humanize.Bytes(uint64(info.Size())))
	}

	if err := session.Upload(ctx, domain.NewArtifact(domain.ArtifactArchive, archivePath, "")); err != nil {
		return nil, fmt.Errorf("final upload: %w", err)
	}
	if rmErr := os.Remove(archivePath); rmErr != nil {
		logger.Warn.Printf("%s: remove local archive: %v", job, rmErr)
	}

	result.Processed = len(packed)
	result.PublicURL = session.URL() + archiveName
	logger.Info.Printf("%s: pipeline %s in %s, %d items, %d failures",
		job, result.State(), time.Since(start).Round(time.Millisecond), result.Processed, len(result.Failures))
	return result, nil
}

// processItem runs the per-item chain and reports whether the item made it
// into the stripped set, which decides whether it is repackaged.
func (p *Pipeline) processItem(ctx context.Context, session *UploadSession, ws *domain.WorkingSet, full string, images *imagePool, result *domain.Result) bool {
	item := filepath.Base(full)
	logName := logger.SanitizeForLog(item)

	if p.deps.Cleaner != nil {
		if err := p.deps.Cleaner.Clean(full); err != nil {
			logger.Warn.Printf("clean %s: %v", logName, err)
			result.RecordFailure(item, domain.StageClean, err)
		}
	}

	stripped := filepath.Join(ws.Dir(domain.RoleCleaned), item)
	ok := true
	if err := p.deps.Transcoder.Strip(ctx, full, stripped); err != nil {
		logger.Warn.Printf("strip %s failed, not uploading: %v", logName, err)
		result.RecordFailure(item, domain.StageStrip, err)
		ok = false
	} else {
		p.upload(ctx, session, item, domain.NewArtifact(domain.ArtifactAudioFull, full, ""), result)
		p.upload(ctx, session, item, domain.NewArtifact(domain.ArtifactAudioStripped, stripped, p.opts.StripSubpath), result)
	}

	preview := filepath.Join(ws.Dir(domain.RolePreview), item)
	if err := p.deps.Transcoder.Preview(ctx, full, preview); err != nil {
		logger.Warn.Printf("preview %s: %v", logName, err)
		result.RecordFailure(item, domain.StagePreview, err)
		return ok
	}
	if p.opts.UploadPreviews {
		p.upload(ctx, session, item, domain.NewArtifact(domain.ArtifactPreview, preview, previewSubpath), result)
	}

	if !p.opts.RenderVideo {
		return ok
	}
	video := filepath.Join(ws.Dir(domain.RoleVideo), strings.TrimSuffix(item, filepath.Ext(item))+".mp4")
	if err := p.deps.Transcoder.RenderVideo(ctx, preview, images.take(), video); err != nil {
		logger.Warn.Printf("render video for %s: %v", logName, err)
		result.RecordFailure(item, domain.StageVideo, err)
		return ok
	}
	if p.opts.UploadPreviews {
		p.upload(ctx, session, item, domain.NewArtifact(domain.ArtifactVideo, video, videoSubpath), result)
	}
	return ok
}

func (p *Pipeline) upload(ctx context.Context, session *UploadSession, item string, artifact domain.Artifact, result *domain.Result) {
	if err := session.Upload(ctx, artifact); err != nil {
		logger.Warn.Printf("upload %s of %s: %v", artifact.Kind, logger.SanitizeForLog(item), err)
		result.RecordFailure(item, domain.StageUpload, err)
	}
}

// imagePool hands out each extracted image at most once.
type imagePool struct {
	images []string
}

func newImagePool(images []string) *imagePool {
	return &imagePool{images: append([]string(nil), images...)}
}

// take returns the next image, or "" when the pool is empty.
func (p *imagePool) take() string {
	if len(p.images) == 0 {
		return ""
	}
	img := p.images[0]
	p.images = p.images[1:]
	return img
}
