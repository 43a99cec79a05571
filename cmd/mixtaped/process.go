package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/mixtaped/internal/domain"
	"github.com/bnema/mixtaped/internal/infrastructure/logger"
	"github.com/bnema/mixtaped/internal/service"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	var keepDirs, keepOrig, saveRest, byID bool

	cmd := &cobra.Command{
		Use:   "process <archive|post-id>",
		Short: "Run the pipeline once in the foreground",
		Long: "Process one archive without the server. With --id the argument is a post id " +
			"and the post is published on success; otherwise it is a path to a zip archive.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("keep-dirs") {
				cfg.Pipeline.KeepDirectories = keepDirs
			}
			if flags.Changed("keep-orig") {
				cfg.Pipeline.KeepOriginal = keepOrig
			}
			if flags.Changed("save-rest") {
				cfg.Pipeline.SaveRest = saveRest
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

			if byID {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid post id %q", args[0])
				}
				scheduler := service.NewScheduler(a.processor)
				return scheduler.Run(cmd.Context(), id)
			}

			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			result, err := a.processor.ProcessArchive(cmd.Context(), path)
			if err != nil {
				return err
			}
			printResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&keepDirs, "keep-dirs", "k", false, "Keep the working directories")
	cmd.Flags().BoolVarP(&keepOrig, "keep-orig", "r", false, "Keep the original archive in the data directory")
	cmd.Flags().BoolVarP(&saveRest, "save-rest", "s", false, "Keep other files in the data directory")
	cmd.Flags().BoolVar(&byID, "id", false, "Treat the argument as a post id")
	return cmd
}

func printResult(cmd *cobra.Command, result *domain.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, result.PublicURL)
	if len(result.Failures) == 0 {
		return
	}
	rows := make([][]string, 0, len(result.Failures))
	for _, f := range result.Failures {
		rows = append(rows, []string{f.Item, string(f.Stage), f.Reason})
	}
	fmt.Fprintln(cmd.ErrOrStderr(), renderTable([]string{"Item", "Stage", "Reason"}, rows, nil))
}
