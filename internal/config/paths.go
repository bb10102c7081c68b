package config

import (
	"os"

	"github.com/xdg/aliasgate/internal/pathutil"
)

// Dir returns the aliasgate configuration directory path.
// By default, this is ~/.config/aliasgate/. If the XDG_CONFIG_HOME
// environment variable is set, it uses $XDG_CONFIG_HOME/aliasgate/
// instead. The returned path always has a trailing slash.
func Dir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = "~/.config"
	}
	return pathutil.ExpandHome(base) + "/aliasgate/"
}

// Path returns the full path to the configuration file.
// This is Dir() + "config.yaml".
func Path() string {
	return Dir() + "config.yaml"
}
