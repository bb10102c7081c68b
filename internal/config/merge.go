package config

// merge overlays src onto dst. Set fields in src replace the
// corresponding dst fields wholesale; list values replace rather than
// append, matching how a more specific configuration layer is expected
// to take full control of a key.
func merge(dst, src *Config) {
	if src == nil {
		return
	}
	if src.AliasFiles != nil {
		dst.AliasFiles = src.AliasFiles
	}
	if src.AllowPatterns != nil {
		dst.AllowPatterns = src.AllowPatterns
	}
	if src.DenyPatterns != nil {
		dst.DenyPatterns = src.DenyPatterns
	}
	if src.DefaultCwd != "" {
		dst.DefaultCwd = src.DefaultCwd
	}
	if src.AuditLogPath != "" {
		dst.AuditLogPath = src.AuditLogPath
	}
	if src.EnableHotReload != nil {
		dst.EnableHotReload = src.EnableHotReload
	}
	if src.Execution.MaxStdoutBytes != 0 {
		dst.Execution.MaxStdoutBytes = src.Execution.MaxStdoutBytes
	}
	if src.Execution.MaxStderrBytes != 0 {
		dst.Execution.MaxStderrBytes = src.Execution.MaxStderrBytes
	}
	if src.Execution.DefaultTimeoutSeconds != 0 {
		dst.Execution.DefaultTimeoutSeconds = src.Execution.DefaultTimeoutSeconds
	}
	if src.AllowCwdRoots != nil {
		dst.AllowCwdRoots = src.AllowCwdRoots
	}
}
