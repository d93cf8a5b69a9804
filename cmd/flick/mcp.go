package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve MCP over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// Logs go to stderr to keep stdout clean for JSON-RPC.
			a, cleanup, err := bootstrap(ctx, opts, os.Stderr)
			if err != nil {
				return err
			}
			defer cleanup()

			a.Logger.Info("starting stdio transport")
			if err := a.MCP.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && ctx.Err() == nil {
				return fmt.Errorf("stdio server error: %w", err)
			}
			return nil
		},
	}
}
