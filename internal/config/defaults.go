package config

import "github.com/xdg/aliasgate/internal/pathutil"

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// DefaultConfig returns a Config with all defaults populated.
//
// Security philosophy for the default patterns:
//   - AllowPatterns cover read-only commands with no side effects.
//   - DenyPatterns block destructive commands outright and take
//     precedence, so `git` stays broadly allowed while its destructive
//     subcommands are denied. (Go's regexp has no negative lookahead;
//     the deny list expresses what a lookahead would have excluded.)
//   - With no alias files configured, the catalog is simply empty.
func DefaultConfig() *Config {
	home := pathutil.ExpandHome("~")
	return &Config{
		AliasFiles: []string{},
		AllowPatterns: []string{
			`^ls\b`,
			`^cat\b`,
			`^git\b`,
			`^grep\b`,
			`^rg\b`,
		},
		DenyPatterns: []string{
			`^rm\b`,
			`^dd\b`,
			`^shutdown\b`,
			`^reboot\b`,
			`^sudo\b`,
			`^git\s+(push|reset|rebase|clean)\b`,
		},
		DefaultCwd:      home,
		AuditLogPath:    pathutil.ExpandHome("~/.local/state/aliasgate/audit.log"),
		EnableHotReload: boolPtr(true),
		Execution: ExecutionLimits{
			MaxStdoutBytes:        10_000,
			MaxStderrBytes:        10_000,
			DefaultTimeoutSeconds: 20,
		},
		AllowCwdRoots: []string{home},
	}
}
