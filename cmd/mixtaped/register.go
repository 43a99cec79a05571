package main

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/cobra"

	sqlitestore "github.com/bnema/mixtaped/internal/adapter/storage/sqlite"
)

func newRegisterCommand(ctx *commandContext) *cobra.Command {
	var title string
	var submit bool
	var addr string

	cmd := &cobra.Command{
		Use:   "register <archive-url>",
		Short: "Create a pending post pointing at an uploaded archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			location := strings.TrimSpace(args[0])
			if location == "" {
				return fmt.Errorf("archive url is required")
			}

			if title == "" {
				title = strings.TrimSuffix(path.Base(location), path.Ext(location))
			}

			store, err := sqlitestore.NewStore(cfg.Store.DatabasePath)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer func() { _ = store.Close() }()

			id, err := store.Register(cmd.Context(), title, location)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)

			if !submit {
				return nil
			}
			if addr == "" {
				addr = dialAddr(cfg.Server.Listen)
			}
			return submitID(cmd, addr, id)
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "Post title (defaults to the archive name)")
	cmd.Flags().BoolVar(&submit, "submit", false, "Submit the new post to a running server")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Server address for --submit")
	return cmd
}
