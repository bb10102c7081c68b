package config

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// EnvPrefix is prepended to every environment override variable.
const EnvPrefix = "ALIASGATE_"

// fromEnv builds a Config overlay from environment variables.
// List values are colon-separated; booleans accept 1/true/yes/on.
// The lookup function is injected so tests can supply a fixed map.
func fromEnv(lookup func(string) (string, bool)) (*Config, error) {
	var cfg Config

	if v, ok := lookup(EnvPrefix + "ALIAS_FILES"); ok {
		cfg.AliasFiles = splitList(v)
	}
	if v, ok := lookup(EnvPrefix + "ALLOW_PATTERNS"); ok {
		cfg.AllowPatterns = splitList(v)
	}
	if v, ok := lookup(EnvPrefix + "DENY_PATTERNS"); ok {
		cfg.DenyPatterns = splitList(v)
	}
	if v, ok := lookup(EnvPrefix + "DEFAULT_CWD"); ok {
		cfg.DefaultCwd = v
	}
	if v, ok := lookup(EnvPrefix + "AUDIT_LOG_PATH"); ok {
		cfg.AuditLogPath = v
	}
	if v, ok := lookup(EnvPrefix + "ENABLE_HOT_RELOAD"); ok {
		cfg.EnableHotReload = boolPtr(parseBool(v))
	}
	if v, ok := lookup(EnvPrefix + "ALLOW_CWD_ROOTS"); ok {
		cfg.AllowCwdRoots = splitList(v)
	}

	intFields := []struct {
		key  string
		dest *int
	}{
		{"MAX_STDOUT_BYTES", &cfg.Execution.MaxStdoutBytes},
		{"MAX_STDERR_BYTES", &cfg.Execution.MaxStderrBytes},
		{"DEFAULT_TIMEOUT_SECONDS", &cfg.Execution.DefaultTimeoutSeconds},
	}
	for _, f := range intFields {
		v, ok := lookup(EnvPrefix + f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Newf("environment value %s%s must be an integer, got %q", EnvPrefix, f.key, v)
		}
		*f.dest = n
	}

	return &cfg, nil
}

// splitList splits a colon-separated list, dropping empty items.
func splitList(raw string) []string {
	parts := strings.Split(raw, ":")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseBool interprets common truthy spellings; anything else is false.
func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
