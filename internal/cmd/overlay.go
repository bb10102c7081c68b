package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/aliasgate/internal/config"
)

// registerOverlayFlags adds the config-override flags shared by the
// commands that load a full configuration.
func registerOverlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("alias-file", nil,
		"alias-definition file to load (repeatable, replaces configured list)")
	cmd.Flags().StringArray("allow-pattern", nil,
		"regex marking expansions as safe (repeatable, replaces configured list)")
	cmd.Flags().StringArray("deny-pattern", nil,
		"regex marking expansions as unsafe (repeatable, replaces configured list)")
	cmd.Flags().String("default-cwd", "",
		"working directory used when a call requests none")
	cmd.Flags().StringArray("allow-cwd-root", nil,
		"root a requested cwd must fall under (repeatable, replaces configured list)")
	cmd.Flags().String("audit-log", "",
		"path to the JSON-lines audit log")
	cmd.Flags().Bool("hot-reload", true,
		"rebuild the catalog from disk before each list/get")
	cmd.Flags().Int("max-stdout-bytes", 0,
		"truncate captured stdout to this many bytes")
	cmd.Flags().Int("max-stderr-bytes", 0,
		"truncate captured stderr to this many bytes")
	cmd.Flags().Int("timeout", 0,
		"default execution timeout in seconds")
}

// cliOverrides builds a config overlay from the flags the user actually
// set. Unset flags leave the corresponding field zero so the merge in
// config.Load ignores them.
func cliOverrides(cmd *cobra.Command) *config.Config {
	overlay := &config.Config{}
	flags := cmd.Flags()

	if flags.Changed("alias-file") {
		overlay.AliasFiles, _ = flags.GetStringArray("alias-file")
	}
	if flags.Changed("allow-pattern") {
		overlay.AllowPatterns, _ = flags.GetStringArray("allow-pattern")
	}
	if flags.Changed("deny-pattern") {
		overlay.DenyPatterns, _ = flags.GetStringArray("deny-pattern")
	}
	if flags.Changed("default-cwd") {
		overlay.DefaultCwd, _ = flags.GetString("default-cwd")
	}
	if flags.Changed("allow-cwd-root") {
		overlay.AllowCwdRoots, _ = flags.GetStringArray("allow-cwd-root")
	}
	if flags.Changed("audit-log") {
		overlay.AuditLogPath, _ = flags.GetString("audit-log")
	}
	if flags.Changed("hot-reload") {
		hot, _ := flags.GetBool("hot-reload")
		overlay.EnableHotReload = &hot
	}
	if flags.Changed("max-stdout-bytes") {
		overlay.Execution.MaxStdoutBytes, _ = flags.GetInt("max-stdout-bytes")
	}
	if flags.Changed("max-stderr-bytes") {
		overlay.Execution.MaxStderrBytes, _ = flags.GetInt("max-stderr-bytes")
	}
	if flags.Changed("timeout") {
		overlay.Execution.DefaultTimeoutSeconds, _ = flags.GetInt("timeout")
	}

	return overlay
}

// loadConfig resolves the effective configuration for a command.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	return config.Load(flagConfig, cliOverrides(cmd))
}
