// Package cmd implements the CLI commands for aliasgate.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/aliasgate/internal/alog"
	"github.com/xdg/aliasgate/internal/version"
)

var (
	flagConfig  string
	flagJSONLog bool
	flagDebug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "aliasgate",
	Short: "MCP gateway for shell aliases",
	Long: `Aliasgate exposes a user's shell aliases to MCP clients as a curated
command catalog with guarded execution.

Alias-definition files are parsed into a catalog, each expansion is
classified safe or unsafe against configurable allow and deny patterns,
and approved commands run under guard rails: a scrubbed environment,
working-directory containment, a wall-clock timeout, and per-stream
output truncation. Every execution is appended to a redacted JSON-lines
audit log.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return alog.Initialize(flagJSONLog, flagDebug)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"path to config file (default: XDG config location)")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLog, "json-log", false,
		"emit logs as JSON instead of console format")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"enable debug logging")
}

// Execute runs the root command and returns any error.
func Execute() error {
	return rootCmd.Execute()
}
