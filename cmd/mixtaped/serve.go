package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/mixtaped/internal/adapter/tcp"
	"github.com/bnema/mixtaped/internal/infrastructure/logger"
	"github.com/bnema/mixtaped/internal/service"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var listen string
	var resume bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Accept job ids over TCP and process them one at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if listen == "" {
				listen = cfg.Server.Listen
			}
			if cmd.Flags().Changed("resume") {
				cfg.Server.ResumePending = resume
			}

			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := a.Close(); err != nil {
					logger.Error.Printf("close: %v", err)
				}
			}()

			if err := a.counter.Ensure(cmd.Context()); err != nil {
				return fmt.Errorf("initialise namespace counter: %w", err)
			}

			scheduler := service.NewScheduler(a.processor)
			if err := scheduler.Start(context.Background()); err != nil {
				return err
			}

			if cfg.Server.ResumePending {
				ids, err := a.store.PendingJobs(cmd.Context())
				if err != nil {
					logger.Warn.Printf("list pending jobs: %v", err)
				}
				for _, id := range ids {
					scheduler.Submit(id)
				}
				if len(ids) > 0 {
					logger.Info.Printf("resubmitted %d pending jobs", len(ids))
				}
			}

			sigCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := tcp.NewServer(scheduler, tcp.Options{
				MaxRequestSize: cfg.Server.MaxRequestBytes,
				ReadTimeout:    cfg.Server.ReadTimeout(),
			})
			logger.Info.Printf("starting mixtaped on %s, upload=%s, counter=%s",
				listen, cfg.Upload.Backend, cfg.Counter.Backend)
			serveErr := server.ListenAndServe(sigCtx, listen)
			if serveErr == nil {
				logger.Info.Printf("shutting down")
			}

			// The running job finishes; queued ones are dropped.
			scheduler.Shutdown(cfg.Server.ShutdownGrace())
			logger.Info.Printf("shutdown complete")
			return serveErr
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "Listen address (overrides server.listen)")
	cmd.Flags().BoolVar(&resume, "resume", false, "Resubmit posts still pending from a previous run")
	return cmd
}
