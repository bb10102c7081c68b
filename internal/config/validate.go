package config

import "github.com/cockroachdb/errors"

// Validate checks that a merged Config contains workable values.
// Pattern compilation is deliberately not validated here: the classifier
// drops invalid patterns leniently at build time, and failing startup for
// one bad pattern would contradict that policy.
func Validate(cfg *Config) error {
	if cfg.Execution.MaxStdoutBytes <= 0 {
		return errors.Newf("execution.max_stdout_bytes: must be positive, got %d", cfg.Execution.MaxStdoutBytes)
	}
	if cfg.Execution.MaxStderrBytes <= 0 {
		return errors.Newf("execution.max_stderr_bytes: must be positive, got %d", cfg.Execution.MaxStderrBytes)
	}
	if cfg.Execution.DefaultTimeoutSeconds <= 0 {
		return errors.Newf("execution.default_timeout_seconds: must be positive, got %d", cfg.Execution.DefaultTimeoutSeconds)
	}
	if cfg.DefaultCwd == "" {
		return errors.New("default_cwd: must not be empty")
	}
	if cfg.AuditLogPath == "" {
		return errors.New("audit_log_path: must not be empty")
	}
	if len(cfg.AllowCwdRoots) == 0 {
		return errors.New("allow_cwd_roots: must not be empty")
	}
	return nil
}
