package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/xdg/aliasgate/internal/executor"
	"github.com/xdg/aliasgate/internal/runtime"
)

var (
	flagExecDryRun  bool
	flagExecConfirm bool
	flagExecCwd     string
	flagExecTimeout int
)

var execCmd = &cobra.Command{
	Use:   "exec <alias> [args...]",
	Short: "Execute an alias under guard rails",
	Long: `Execute an alias through the same policy gates as the MCP tool.

By default this is a dry run that prints the command which would be
executed. Pass --confirm --dry-run=false to actually run it. Unsafe
aliases can only be dry-run. The process exits with the alias command's
exit code, or 124 on timeout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func init() {
	registerOverlayFlags(execCmd)
	execCmd.Flags().BoolVar(&flagExecDryRun, "dry-run", true,
		"preview the command instead of running it")
	execCmd.Flags().BoolVar(&flagExecConfirm, "confirm", false,
		"confirm a real execution")
	execCmd.Flags().StringVar(&flagExecCwd, "cwd", "",
		"working directory for the execution (containment-checked)")
	execCmd.Flags().IntVar(&flagExecTimeout, "exec-timeout", 0,
		"timeout override in seconds for this execution")
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	rt := runtime.New(cfg)
	req := runtime.ExecRequest{
		Name:           args[0],
		Args:           executor.TokenArgs(args[1:]...),
		DryRun:         flagExecDryRun,
		Confirm:        flagExecConfirm,
		Cwd:            flagExecCwd,
		TimeoutSeconds: flagExecTimeout,
	}

	_, res, err := rt.ExecuteAlias(cmd.Context(), req)
	if err != nil {
		var cwdErr *executor.CwdNotAllowedError
		switch {
		case errors.Is(err, runtime.ErrAliasNotFound),
			errors.Is(err, runtime.ErrUnsafeAlias),
			errors.Is(err, runtime.ErrConfirmRequired),
			errors.Is(err, runtime.ErrInvalidTimeout):
			return fmt.Errorf("%s", err.Error())
		case errors.As(err, &cwdErr):
			return fmt.Errorf("%s", cwdErr.Error())
		}
		return fmt.Errorf("execution failed: %w", err)
	}

	return writeExecResult(os.Stdout, os.Stderr, res)
}

// writeExecResult relays captured output and maps the execution outcome
// to the process exit code: 124 on timeout, the subprocess code on a
// non-zero exit, nil otherwise. A dry-run preview gets its own trailing
// newline since the preview text carries none.
func writeExecResult(stdout, stderr io.Writer, res *executor.Result) error {
	if res.DryRun {
		fmt.Fprintln(stdout, res.Stdout)
		return nil
	}

	fmt.Fprint(stdout, res.Stdout)
	fmt.Fprint(stderr, res.Stderr)

	if res.TimedOut {
		fmt.Fprintf(stderr, "aliasgate: command timed out\n")
		return NewExitCodeError(124)
	}
	if res.ExitCode != nil && *res.ExitCode != 0 {
		return NewExitCodeError(*res.ExitCode)
	}
	return nil
}
