package main

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/bnema/mixtaped/config"
	"github.com/bnema/mixtaped/internal/adapter/archive"
	"github.com/bnema/mixtaped/internal/adapter/converter/ffmpeg"
	"github.com/bnema/mixtaped/internal/adapter/hook"
	"github.com/bnema/mixtaped/internal/adapter/remote/localfs"
	"github.com/bnema/mixtaped/internal/adapter/remote/s3"
	"github.com/bnema/mixtaped/internal/adapter/storage/counterfile"
	"github.com/bnema/mixtaped/internal/adapter/storage/rediscounter"
	sqlitestore "github.com/bnema/mixtaped/internal/adapter/storage/sqlite"
	"github.com/bnema/mixtaped/internal/adapter/tags/id3"
	"github.com/bnema/mixtaped/internal/infrastructure/logger"
	"github.com/bnema/mixtaped/internal/port"
	"github.com/bnema/mixtaped/internal/service"
)

// counter is what the commands need from a namespace counter backend.
type counter interface {
	port.NamespaceCounter
	Ensure(ctx context.Context) error
}

// app holds the adapters and services built from one config.
type app struct {
	cfg       *config.Config
	store     *sqlitestore.Store
	counter   counter
	processor *service.Processor
	closers   []func() error
}

func newApp(ctx context.Context, cfg *config.Config) (_ *app, err error) {
	a := &app{cfg: cfg}
	defer func() {
		if err != nil {
			err = multierr.Append(err, a.Close())
		}
	}()

	a.store, err = sqlitestore.NewStore(cfg.Store.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	a.closers = append(a.closers, a.store.Close)

	a.counter, err = buildCounter(ctx, cfg, a)
	if err != nil {
		return nil, err
	}

	remote, err := buildRemote(cfg)
	if err != nil {
		return nil, err
	}

	cleaner, err := buildCleaner(cfg)
	if err != nil {
		return nil, err
	}

	deps := service.PipelineDeps{
		Archiver: archive.NewZip(cfg.Pipeline.VerifyContent),
		Transcoder: ffmpeg.NewConverter(ffmpeg.Options{
			Binary:          cfg.Transcoder.Binary,
			Bitrate:         cfg.Transcoder.Bitrate,
			PreviewDuration: cfg.Transcoder.PreviewDuration(),
			Timeout:         cfg.Transcoder.Timeout(),
		}),
		Cleaner: cleaner,
		Remote:  remote,
		Counter: a.counter,
	}
	if h := hook.New(cfg.Hook.Command, cfg.Hook.Timeout()); h != nil {
		deps.Hook = h
	}

	pipeline := service.NewPipeline(deps, service.PipelineOptions{
		StripSubpath:   cfg.Pipeline.StripSubpath,
		UploadPreviews: cfg.Pipeline.UploadPreviews,
		RenderVideo:    cfg.Pipeline.RenderVideo,
		BaseURL:        cfg.Upload.BaseURL,
	})
	publisher := service.NewStatusPublisher(a.store, service.RetryPolicy{
		MaxAttempts: cfg.Publish.MaxAttempts,
		MinBackoff:  cfg.Publish.MinBackoff(),
		MaxBackoff:  cfg.Publish.MaxBackoff(),
	})
	a.processor = service.NewProcessor(
		a.store,
		service.NewWorkingSetManager(cfg.Paths.WorkDir),
		pipeline,
		publisher,
		service.ProcessorOptions{
			DataDir:         cfg.Paths.DataDir,
			KeepDirectories: cfg.Pipeline.KeepDirectories,
			KeepOriginal:    cfg.Pipeline.KeepOriginal,
			SaveRest:        cfg.Pipeline.SaveRest,
		},
	)
	return a, nil
}

func (a *app) Close() error {
	var err error
	for i := len(a.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, a.closers[i]())
	}
	a.closers = nil
	return err
}

func buildCounter(ctx context.Context, cfg *config.Config, a *app) (counter, error) {
	switch cfg.Counter.Backend {
	case config.BackendRedis:
		c, err := rediscounter.Dial(ctx, rediscounter.Options{
			Addr:     cfg.Counter.Redis.Addr,
			Password: cfg.Counter.Redis.Password,
			DB:       cfg.Counter.Redis.DB,
			Key:      cfg.Counter.Redis.Key,
		})
		if err != nil {
			return nil, fmt.Errorf("connect counter: %w", err)
		}
		a.closers = append(a.closers, c.Close)
		return c, nil
	default:
		return counterfile.New(cfg.Counter.Path), nil
	}
}

func buildRemote(cfg *config.Config) (port.RemoteStorage, error) {
	switch cfg.Upload.Backend {
	case config.BackendS3:
		s, err := s3.New(s3.Options{
			Endpoint:  cfg.Upload.S3.Endpoint,
			AccessKey: cfg.Upload.S3.AccessKey,
			SecretKey: cfg.Upload.S3.SecretKey,
			Region:    cfg.Upload.S3.Region,
			Bucket:    cfg.Upload.S3.Bucket,
			Prefix:    cfg.Upload.S3.Prefix,
			UseSSL:    cfg.Upload.S3.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("s3 remote: %w", err)
		}
		return s, nil
	default:
		return localfs.New(cfg.Upload.LocalRoot), nil
	}
}

func buildCleaner(cfg *config.Config) (port.TagCleaner, error) {
	var filters []id3.Substitution
	if cfg.Tags.FilterList != "" {
		var err error
		filters, err = id3.LoadFilterList(cfg.Tags.FilterList)
		if err != nil {
			return nil, fmt.Errorf("load filter list: %w", err)
		}
		logger.Debug.Printf("loaded %d tag filters from %s", len(filters), cfg.Tags.FilterList)
	}
	return id3.NewCleaner(filters, cfg.Tags.Comment), nil
}
