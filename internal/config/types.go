// Package config provides configuration types and loading for aliasgate.
// Settings merge with precedence: CLI overrides > environment variables >
// config file > defaults.
package config

// Config is the runtime configuration for the aliasgate server.
type Config struct {
	// AliasFiles lists alias-definition files in load order. Later files
	// override earlier ones subject to the availability heuristic.
	AliasFiles []string `yaml:"alias_files,omitempty"`

	// AllowPatterns are regex patterns that mark an expansion as safe.
	AllowPatterns []string `yaml:"allow_patterns,omitempty"`

	// DenyPatterns are regex patterns that mark an expansion as unsafe,
	// taking precedence over AllowPatterns.
	DenyPatterns []string `yaml:"deny_patterns,omitempty"`

	// DefaultCwd is the working directory used when a call requests none.
	DefaultCwd string `yaml:"default_cwd,omitempty"`

	// AuditLogPath is the JSON-lines audit log location.
	AuditLogPath string `yaml:"audit_log_path,omitempty"`

	// EnableHotReload rebuilds the catalog before each list/get when true.
	EnableHotReload *bool `yaml:"enable_hot_reload,omitempty"`

	// Execution holds the per-execution guard rails.
	Execution ExecutionLimits `yaml:"execution,omitempty"`

	// AllowCwdRoots are the canonical roots a requested cwd must fall
	// under. Defaults to DefaultCwd when empty.
	AllowCwdRoots []string `yaml:"allow_cwd_roots,omitempty"`
}

// ExecutionLimits bounds resource consumption of a single execution.
type ExecutionLimits struct {
	MaxStdoutBytes        int `yaml:"max_stdout_bytes,omitempty"`
	MaxStderrBytes        int `yaml:"max_stderr_bytes,omitempty"`
	DefaultTimeoutSeconds int `yaml:"default_timeout_seconds,omitempty"`
}

// HotReload reports the effective hot-reload setting.
func (c *Config) HotReload() bool {
	if c.EnableHotReload == nil {
		return true
	}
	return *c.EnableHotReload
}
