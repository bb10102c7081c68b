// Package executor runs cataloged aliases under strict guard rails:
// working-directory containment, environment scrubbing, timeout
// cancellation, and independent per-stream output truncation.
package executor

import (
	"fmt"
	"strings"
)

// Args carries the optional arguments of an execution call. A call may
// pass nothing, a single string appended verbatim after trimming, or an
// ordered token list joined with single spaces.
type Args struct {
	text   string
	tokens []string
	kind   argsKind
}

type argsKind int

const (
	argsNone argsKind = iota
	argsString
	argsTokens
)

// NoArgs returns an empty Args value.
func NoArgs() Args {
	return Args{}
}

// StringArgs wraps a single argument string.
func StringArgs(s string) Args {
	return Args{text: s, kind: argsString}
}

// TokenArgs wraps an ordered argument token list.
func TokenArgs(tokens ...string) Args {
	return Args{tokens: tokens, kind: argsTokens}
}

// Join serializes the arguments to a single string for audit records:
// token lists join with spaces, strings pass through verbatim.
func (a Args) Join() string {
	switch a.kind {
	case argsString:
		return a.text
	case argsTokens:
		return strings.Join(a.tokens, " ")
	default:
		return ""
	}
}

// assemble builds the command string from an expansion and arguments.
// A single string argument is trimmed and appended if non-empty; a token
// list drops empty tokens and appends the rest space-separated.
func assemble(expansion string, args Args) string {
	switch args.kind {
	case argsString:
		suffix := strings.TrimSpace(args.text)
		if suffix == "" {
			return expansion
		}
		return expansion + " " + suffix
	case argsTokens:
		kept := make([]string, 0, len(args.tokens))
		for _, tok := range args.tokens {
			if tok != "" {
				kept = append(kept, tok)
			}
		}
		if len(kept) == 0 {
			return expansion
		}
		return expansion + " " + strings.Join(kept, " ")
	default:
		return expansion
	}
}

// Result is the outcome of one execution call. It is created once and
// never mutated; the caller and the audit logger both consume it.
type Result struct {
	// Command is the fully assembled command string.
	Command string

	// Cwd is the resolved canonical working directory.
	Cwd string

	// ExitCode is the subprocess exit status, nil when the execution
	// timed out or was a dry run.
	ExitCode *int

	// Stdout and Stderr hold the captured output, possibly truncated.
	Stdout string
	Stderr string

	// TruncatedStdout and TruncatedStderr flag per-stream truncation.
	TruncatedStdout bool
	TruncatedStderr bool

	// TimedOut reports that the timeout expired and the process was
	// forcibly terminated. Timeouts are not errors.
	TimedOut bool

	// DryRun reports that no subprocess was spawned.
	DryRun bool
}

// CwdNotAllowedError reports a rejected working-directory request:
// either the resolved path is outside every configured allow root, or
// the path could not be resolved at all. Reason distinguishes the two
// in the message; empty means the containment case.
type CwdNotAllowedError struct {
	Path   string
	Reason string
}

func (e *CwdNotAllowedError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "is outside allowed roots"
	}
	return fmt.Sprintf("requested cwd %s %s", e.Path, reason)
}
