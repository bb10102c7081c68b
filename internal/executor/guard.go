package executor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/xdg/aliasgate/internal/catalog"
	"github.com/xdg/aliasgate/internal/config"
	"github.com/xdg/aliasgate/internal/pathutil"
)

// killGrace bounds how long the kill path waits for an uncooperative
// child to release its output pipes after forced termination.
const killGrace = 5 * time.Second

// Options are the per-call execution parameters.
type Options struct {
	Args Args

	// DryRun synthesizes a result without spawning a process.
	DryRun bool

	// RequestedCwd selects a working directory; empty uses the
	// configured default.
	RequestedCwd string

	// TimeoutOverride replaces the configured default timeout when
	// positive. Units are seconds.
	TimeoutOverride int
}

// Guard executes aliases under the configured guard rails. It holds no
// state beyond the config; every call is a pure function of its inputs
// plus the filesystem and process environment.
type Guard struct {
	cfg *config.Config
}

// New returns a Guard using the given configuration.
func New(cfg *config.Config) *Guard {
	return &Guard{cfg: cfg}
}

// Execute assembles and runs the alias command, or simulates it for dry
// runs. It fails with CwdNotAllowedError when containment fails and with
// a wrapped spawn error when the subprocess cannot start at all; a
// non-zero exit status is a normal result, not an error. Execute never
// writes the audit log — that is the caller's explicit step.
func (g *Guard) Execute(ctx context.Context, alias catalog.Alias, opts Options) (*Result, error) {
	command := assemble(alias.Expansion, opts.Args)

	cwd, err := g.resolveCwd(opts.RequestedCwd)
	if err != nil {
		return nil, err
	}

	if opts.DryRun {
		return &Result{
			Command: command,
			Cwd:     cwd,
			Stdout:  fmt.Sprintf("Dry run: would execute `%s` in %s", command, cwd),
			DryRun:  true,
		}, nil
	}

	timeout := time.Duration(g.cfg.Execution.DefaultTimeoutSeconds) * time.Second
	if opts.TimeoutOverride > 0 {
		timeout = time.Duration(opts.TimeoutOverride) * time.Second
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Login-style shell invocation so aliases behave as they would in
	// the user's interactive environment, minus the inherited variables.
	cmd := exec.CommandContext(runCtx, "/bin/bash", "-lc", command)
	cmd.Dir = cwd
	cmd.Env = scrubbedEnv(g.cfg, cwd)
	cmd.WaitDelay = killGrace

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, errors.Wrapf(err, "spawn %q", command)
	}

	waitErr := cmd.Wait()
	timedOut := errors.Is(runCtx.Err(), context.DeadlineExceeded)

	outText, outTruncated := truncate(stdout.Bytes(), g.cfg.Execution.MaxStdoutBytes)
	errText, errTruncated := truncate(stderr.Bytes(), g.cfg.Execution.MaxStderrBytes)

	result := &Result{
		Command:         command,
		Cwd:             cwd,
		Stdout:          outText,
		Stderr:          errText,
		TruncatedStdout: outTruncated,
		TruncatedStderr: errTruncated,
		TimedOut:        timedOut,
	}

	// A timed-out execution reports no exit code, even though the
	// killed process technically has one.
	if !timedOut {
		code := 0
		if waitErr != nil {
			var exitErr *exec.ExitError
			if !errors.As(waitErr, &exitErr) {
				return nil, errors.Wrapf(waitErr, "wait for %q", command)
			}
			code = exitErr.ExitCode()
		}
		result.ExitCode = &code
	}

	return result, nil
}

// resolveCwd canonicalizes the requested directory and enforces
// containment within the configured allow roots. An empty request uses
// the configured default directory without a containment check.
func (g *Guard) resolveCwd(requested string) (string, error) {
	if requested == "" {
		resolved, err := pathutil.Canonicalize(g.cfg.DefaultCwd)
		if err != nil {
			return "", errors.Wrap(err, "resolve default cwd")
		}
		return resolved, nil
	}

	resolved, err := pathutil.Canonicalize(requested)
	if err != nil {
		// An unresolvable path cannot be proven inside an allow root,
		// but the caller should hear "missing", not "forbidden".
		return "", &CwdNotAllowedError{Path: requested, Reason: "cannot be resolved"}
	}

	for _, root := range g.cfg.AllowCwdRoots {
		canonicalRoot, err := pathutil.Canonicalize(root)
		if err != nil {
			continue
		}
		if pathutil.IsWithin(resolved, canonicalRoot) {
			return resolved, nil
		}
	}
	return "", &CwdNotAllowedError{Path: resolved}
}

// scrubbedEnv builds the minimal child environment. Only locale
// variables are forwarded from the host; everything else is fixed so
// credentials and host configuration never leak into guarded commands.
func scrubbedEnv(cfg *config.Config, cwd string) []string {
	env := []string{
		"PATH=/usr/bin:/bin",
		"LANG=" + envOrDefault("LANG", "C.UTF-8"),
		"LC_ALL=" + envOrDefault("LC_ALL", "C.UTF-8"),
		"HOME=" + pathutil.ExpandHome(cfg.DefaultCwd),
		"PWD=" + cwd,
	}
	for _, key := range []string{"LC_CTYPE", "LC_NUMERIC", "LANGUAGE"} {
		if v, ok := os.LookupEnv(key); ok {
			env = append(env, key+"="+v)
		}
	}
	return env
}

func envOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// truncate cuts data at limit bytes and decodes with invalid-UTF-8
// replacement rather than failing. The returned flag reports whether
// anything was cut.
func truncate(data []byte, limit int) (string, bool) {
	if len(data) <= limit {
		return strings.ToValidUTF8(string(data), "�"), false
	}
	return strings.ToValidUTF8(string(data[:limit]), "�"), true
}
