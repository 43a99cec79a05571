package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/mixtaped/internal/adapter/tcp"
)

func newSubmitCommand(ctx *commandContext) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "submit <post-id>",
		Short: "Send a job id to a running server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid post id %q", args[0])
			}
			if addr == "" {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				addr = dialAddr(cfg.Server.Listen)
			}
			return submitID(cmd, addr, id)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Server address (defaults to server.listen)")
	return cmd
}

// dialAddr turns a listen address like ":8000" into one a client can dial.
func dialAddr(listen string) string {
	if len(listen) > 0 && listen[0] == ':' {
		return "127.0.0.1" + listen
	}
	return listen
}

func submitID(cmd *cobra.Command, addr string, id int64) error {
	reply, err := tcp.Submit(cmd.Context(), addr, id)
	if reply != "" {
		fmt.Fprintln(cmd.OutOrStdout(), reply)
	}
	return err
}
