package config

import (
	"os"

	"github.com/cockroachdb/errors"

	"github.com/xdg/aliasgate/internal/alog"
	"github.com/xdg/aliasgate/internal/pathutil"
)

// Load assembles the effective configuration with precedence:
// cliOverrides > environment > config file > defaults.
//
// configPath selects an explicit config file; when empty, the default
// path is used if it exists and a missing file is not an error.
// An explicitly named file that cannot be read or parsed is fatal.
// cliOverrides may be nil. All paths are home-expanded before return.
func Load(configPath string, cliOverrides *Config) (*Config, error) {
	cfg := DefaultConfig()

	fileCfg, err := loadFile(configPath)
	if err != nil {
		return nil, err
	}
	merge(cfg, fileCfg)

	envCfg, err := fromEnv(os.LookupEnv)
	if err != nil {
		return nil, err
	}
	merge(cfg, envCfg)

	merge(cfg, cliOverrides)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	expandPaths(cfg)
	return cfg, nil
}

// loadFile reads and parses the config file. A missing default-location
// file yields a nil overlay; a missing explicitly requested file is an
// error.
func loadFile(configPath string) (*Config, error) {
	explicit := configPath != ""
	if !explicit {
		configPath = Path()
	}
	configPath = pathutil.ExpandHome(configPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			alog.Debugw("no config file found, using defaults", "path", configPath)
			return nil, nil
		}
		return nil, errors.Wrapf(err, "read config file %s", configPath)
	}

	alog.Debugw("loaded config file", "path", configPath)
	return Parse(data)
}

// expandPaths home-expands every path-valued field in place.
func expandPaths(cfg *Config) {
	for i, p := range cfg.AliasFiles {
		cfg.AliasFiles[i] = pathutil.ExpandHome(p)
	}
	for i, p := range cfg.AllowCwdRoots {
		cfg.AllowCwdRoots[i] = pathutil.ExpandHome(p)
	}
	cfg.DefaultCwd = pathutil.ExpandHome(cfg.DefaultCwd)
	cfg.AuditLogPath = pathutil.ExpandHome(cfg.AuditLogPath)
}
