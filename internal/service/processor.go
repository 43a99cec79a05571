package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/bnema/mixtaped/internal/domain"
	"github.com/bnema/mixtaped/internal/infrastructure/logger"
	"github.com/bnema/mixtaped/internal/port"
)

type ProcessorOptions struct {
	// DataDir is where source archives are found by basename.
	DataDir         string
	KeepDirectories bool
	// KeepOriginal leaves the source archive in DataDir after the run.
	KeepOriginal bool
	// SaveRest leaves non-archive files in DataDir alone after the run.
	SaveRest bool
}

// Processor runs one job end to end: lookup, prepare, pipeline, publish,
// teardown.
type Processor struct {
	store       port.MetadataStore
	workingSets *WorkingSetManager
	pipeline    *Pipeline
	publisher   *StatusPublisher
	opts        ProcessorOptions
}

func NewProcessor(
	store port.MetadataStore,
	workingSets *WorkingSetManager,
	pipeline *Pipeline,
	publisher *StatusPublisher,
	opts ProcessorOptions,
) *Processor {
	return &Processor{
		store:       store,
		workingSets: workingSets,
		pipeline:    pipeline,
		publisher:   publisher,
		opts:        opts,
	}
}

func (p *Processor) Process(ctx context.Context, jobID int64) error {
	runID := uuid.NewString()

	job, err := p.store.Lookup(ctx, jobID)
	if err != nil {
		return fmt.Errorf("[run %s] lookup job %d: %w", runID, jobID, err)
	}
	local := *job
	local.ArchiveLocation = ResolveArchivePath(p.opts.DataDir, job.ArchiveLocation)
	logger.Info.Printf("[run %s] processing %s from %s", runID, job, logger.SanitizeForLog(local.ArchiveLocation))

	result, err := p.run(ctx, &local)
	if err != nil {
		logger.Error.Printf("[run %s] %s failed: %v", runID, job, err)
		if markErr := p.publisher.MarkFailed(ctx, job.ID, err.Error()); markErr != nil {
			logger.Warn.Printf("[run %s] could not record failure: %v", runID, markErr)
		}
		return fmt.Errorf("[run %s] %s: %w", runID, job, err)
	}

	for _, f := range result.Failures {
		logger.Warn.Printf("[run %s] %s: %s failed at %s: %s",
			runID, job, logger.SanitizeForLog(f.Item), f.Stage, f.Reason)
	}
	if err := p.publisher.Publish(ctx, job.ID, result.PublicURL); err != nil {
		return fmt.Errorf("[run %s] %w", runID, err)
	}
	logger.Info.Printf("[run %s] %s %s: %s", runID, job, result.State(), result.PublicURL)
	return nil
}

// ProcessArchive runs the pipeline on a local archive without touching the
// metadata store.
func (p *Processor) ProcessArchive(ctx context.Context, archivePath string) (*domain.Result, error) {
	job := &domain.Job{
		ArchiveLocation: archivePath,
		DisplayName:     filepath.Base(archivePath),
	}
	return p.run(ctx, job)
}

func (p *Processor) run(ctx context.Context, job *domain.Job) (result *domain.Result, err error) {
	ws, prepErr := p.workingSets.Prepare(job)
	defer func() {
		err = multierr.Combine(err,
			p.workingSets.Teardown(ws, p.opts.KeepDirectories),
			p.cleanupDataDir(job.ArchiveLocation),
		)
		if err != nil {
			result = nil
		}
	}()
	if prepErr != nil {
		return nil, fmt.Errorf("prepare working set: %w", prepErr)
	}

	return p.pipeline.Run(ctx, job, ws)
}

func (p *Processor) cleanupDataDir(archivePath string) error {
	var err error
	if !p.opts.KeepOriginal {
		if rmErr := os.Remove(archivePath); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			err = multierr.Append(err, fmt.Errorf("remove source archive: %w", rmErr))
		}
	}
	if !p.opts.SaveRest && p.opts.DataDir != "" {
		err = multierr.Append(err, ClearDataDir(p.opts.DataDir))
	}
	return err
}

// ResolveArchivePath maps a stored archive location, a URL or a path, to the
// file of the same name in dataDir.
func ResolveArchivePath(dataDir, location string) string {
	if u, err := url.Parse(location); err == nil && u.Scheme != "" && u.Host != "" {
		location = u.Path
	}
	name := path.Base(filepath.ToSlash(location))
	if dataDir == "" {
		return location
	}
	return filepath.Join(dataDir, name)
}

// ClearDataDir removes every regular file in dir that is neither a zip
// archive waiting to be processed nor hidden.
func ClearDataDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read data dir: %w", err)
	}
	var errs error
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() || strings.HasPrefix(name, ".") || strings.HasSuffix(strings.ToLower(name), ".zip") {
			continue
		}
		if rmErr := os.Remove(filepath.Join(dir, name)); rmErr != nil {
			errs = multierr.Append(errs, rmErr)
		}
	}
	return errs
}
