package executor

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xdg/aliasgate/internal/catalog"
	"github.com/xdg/aliasgate/internal/config"
	"github.com/xdg/aliasgate/internal/pathutil"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		DefaultCwd:   dir,
		AuditLogPath: filepath.Join(dir, "audit.log"),
		Execution: config.ExecutionLimits{
			MaxStdoutBytes:        10_000,
			MaxStderrBytes:        10_000,
			DefaultTimeoutSeconds: 20,
		},
		AllowCwdRoots: []string{dir},
	}
}

func alias(expansion string) catalog.Alias {
	return catalog.Alias{Name: "t", Expansion: expansion, Safe: true, SourceFile: "test"}
}

func TestDryRunSpawnsNothing(t *testing.T) {
	g := New(testConfig(t))

	res, err := g.Execute(context.Background(), alias("rm -rf /"), Options{DryRun: true})
	require.NoError(t, err)

	assert.True(t, res.DryRun)
	assert.Nil(t, res.ExitCode)
	assert.False(t, res.TimedOut)
	assert.False(t, res.TruncatedStdout)
	assert.False(t, res.TruncatedStderr)
	assert.Contains(t, res.Stdout, "rm -rf /")
	assert.Contains(t, res.Stdout, res.Cwd)
	assert.Empty(t, res.Stderr)
}

func TestExecuteCapturesOutputAndExitCode(t *testing.T) {
	g := New(testConfig(t))

	res, err := g.Execute(context.Background(), alias("echo hello; echo oops >&2"), Options{})
	require.NoError(t, err)

	require.NotNil(t, res.ExitCode)
	assert.Equal(t, 0, *res.ExitCode)
	assert.Equal(t, "hello\n", res.Stdout)
	assert.Equal(t, "oops\n", res.Stderr)
	assert.False(t, res.TimedOut)
	assert.False(t, res.DryRun)
}

func TestExecuteNonZeroExitIsNotAnError(t *testing.T) {
	g := New(testConfig(t))

	res, err := g.Execute(context.Background(), alias("exit 3"), Options{})
	require.NoError(t, err)
	require.NotNil(t, res.ExitCode)
	assert.Equal(t, 3, *res.ExitCode)
}

func TestExecuteTimeout(t *testing.T) {
	g := New(testConfig(t))

	res, err := g.Execute(context.Background(), alias("sleep 2"), Options{TimeoutOverride: 1})
	require.NoError(t, err)

	assert.True(t, res.TimedOut)
	assert.Nil(t, res.ExitCode)
}

func TestExecuteTruncatesStdout(t *testing.T) {
	cfg := testConfig(t)
	cfg.Execution.MaxStdoutBytes = 1000
	g := New(cfg)

	// head -c keeps the output exact: 5000 bytes of 'x'.
	res, err := g.Execute(context.Background(), alias("yes x | head -c 5000"), Options{})
	require.NoError(t, err)

	assert.Len(t, res.Stdout, 1000)
	assert.True(t, res.TruncatedStdout)
	assert.False(t, res.TruncatedStderr)
}

func TestExecuteCwdContainment(t *testing.T) {
	cfg := testConfig(t)
	g := New(cfg)

	_, err := g.Execute(context.Background(), alias("pwd"), Options{RequestedCwd: "/"})
	var cwdErr *CwdNotAllowedError
	require.ErrorAs(t, err, &cwdErr)
	assert.Equal(t, "/", cwdErr.Path)
}

func TestExecuteCwdSubdirectoryAllowed(t *testing.T) {
	cfg := testConfig(t)
	sub := filepath.Join(cfg.DefaultCwd, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	g := New(cfg)

	res, err := g.Execute(context.Background(), alias("pwd"), Options{RequestedCwd: sub})
	require.NoError(t, err)

	canonical, err := pathutil.Canonicalize(sub)
	require.NoError(t, err)
	assert.Equal(t, canonical, res.Cwd)
	assert.Equal(t, canonical+"\n", res.Stdout)
}

func TestExecuteSpawnFailureIsAnError(t *testing.T) {
	cfg := testConfig(t)
	// A regular file inside the allow root canonicalizes and passes
	// containment, but cannot serve as a process working directory, so
	// the spawn itself fails.
	file := filepath.Join(cfg.DefaultCwd, "notadir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	g := New(cfg)

	res, err := g.Execute(context.Background(), alias("pwd"), Options{RequestedCwd: file})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "spawn")
}

func TestExecuteCwdMissingInsideRootReportsUnresolvable(t *testing.T) {
	cfg := testConfig(t)
	g := New(cfg)

	_, err := g.Execute(context.Background(), alias("pwd"),
		Options{RequestedCwd: filepath.Join(cfg.DefaultCwd, "not-yet-created")})
	var cwdErr *CwdNotAllowedError
	require.ErrorAs(t, err, &cwdErr)
	assert.Contains(t, cwdErr.Error(), "cannot be resolved")
	assert.NotContains(t, cwdErr.Error(), "outside allowed roots")
}

func TestExecuteCwdTraversalEscapeBlocked(t *testing.T) {
	cfg := testConfig(t)
	g := New(cfg)

	_, err := g.Execute(context.Background(), alias("pwd"),
		Options{RequestedCwd: filepath.Join(cfg.DefaultCwd, "..", "..")})
	var cwdErr *CwdNotAllowedError
	require.ErrorAs(t, err, &cwdErr)
}

func TestExecuteCwdSymlinkEscapeBlocked(t *testing.T) {
	cfg := testConfig(t)
	outside := t.TempDir()
	link := filepath.Join(cfg.DefaultCwd, "escape")
	require.NoError(t, os.Symlink(outside, link))
	g := New(cfg)

	_, err := g.Execute(context.Background(), alias("pwd"), Options{RequestedCwd: link})
	var cwdErr *CwdNotAllowedError
	require.ErrorAs(t, err, &cwdErr)
}

func TestExecuteEnvironmentScrubbed(t *testing.T) {
	t.Setenv("ALIASGATE_TEST_SECRET", "leaky")
	cfg := testConfig(t)
	g := New(cfg)

	res, err := g.Execute(context.Background(),
		alias(`echo "home=$HOME secret=$ALIASGATE_TEST_SECRET"`), Options{})
	require.NoError(t, err)

	// The login shell may extend PATH from /etc/profile, but host
	// variables outside the allowlist must never be visible.
	assert.Contains(t, res.Stdout, "home="+pathutil.ExpandHome(cfg.DefaultCwd))
	assert.Contains(t, res.Stdout, "secret=\n")
}

func TestTruncate(t *testing.T) {
	text, cut := truncate([]byte("hello"), 10)
	assert.Equal(t, "hello", text)
	assert.False(t, cut)

	text, cut = truncate([]byte("hello world"), 5)
	assert.Equal(t, "hello", text)
	assert.True(t, cut)

	// A multi-byte rune split at the limit decodes with replacement.
	text, cut = truncate([]byte("héllo"), 2)
	assert.True(t, cut)
	assert.True(t, strings.HasPrefix(text, "h"))
}
