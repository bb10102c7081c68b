package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/xdg/aliasgate/internal/alog"
	"github.com/xdg/aliasgate/internal/runtime"
	"github.com/xdg/aliasgate/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	Long: `Run the aliasgate MCP server, speaking JSON-RPC over stdin/stdout.

The server exposes the alias catalog as MCP tools and resources. Logs go
to stderr so they never interleave with the protocol stream. The server
runs until stdin closes or an interrupt signal arrives.`,
	RunE: runServe,
}

func init() {
	registerOverlayFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt := runtime.New(cfg)
	go func() {
		if err := rt.Watch(ctx); err != nil {
			alog.Warnw("alias file watcher stopped", "error", err)
		}
	}()

	alog.Infow("starting aliasgate MCP server",
		"aliases", len(rt.ListAliases()),
		"aliasFiles", cfg.AliasFiles,
		"hotReload", cfg.HotReload())
	defer alog.Sync()

	return server.New(rt).Serve(ctx)
}
