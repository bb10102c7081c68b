package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func overlayCmd(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	registerOverlayFlags(cmd)
	return cmd
}

func TestCliOverrides_UnsetFlagsLeaveZeroValues(t *testing.T) {
	cmd := overlayCmd(t)

	overlay := cliOverrides(cmd)

	require.Nil(t, overlay.AliasFiles)
	require.Nil(t, overlay.AllowPatterns)
	require.Nil(t, overlay.DenyPatterns)
	require.Empty(t, overlay.DefaultCwd)
	require.Nil(t, overlay.EnableHotReload)
	require.Zero(t, overlay.Execution.DefaultTimeoutSeconds)
}

func TestCliOverrides_ChangedFlagsCopied(t *testing.T) {
	cmd := overlayCmd(t)
	require.NoError(t, cmd.Flags().Parse([]string{
		"--alias-file", "/tmp/a",
		"--alias-file", "/tmp/b",
		"--allow-pattern", `^ls\b`,
		"--default-cwd", "/work",
		"--hot-reload=false",
		"--timeout", "30",
	}))

	overlay := cliOverrides(cmd)

	require.Equal(t, []string{"/tmp/a", "/tmp/b"}, overlay.AliasFiles)
	require.Equal(t, []string{`^ls\b`}, overlay.AllowPatterns)
	require.Equal(t, "/work", overlay.DefaultCwd)
	require.NotNil(t, overlay.EnableHotReload)
	require.False(t, *overlay.EnableHotReload)
	require.Equal(t, 30, overlay.Execution.DefaultTimeoutSeconds)
}

func TestCliOverrides_ExplicitHotReloadTrueIsCarried(t *testing.T) {
	cmd := overlayCmd(t)
	require.NoError(t, cmd.Flags().Parse([]string{"--hot-reload=true"}))

	overlay := cliOverrides(cmd)

	require.NotNil(t, overlay.EnableHotReload)
	require.True(t, *overlay.EnableHotReload)
}
