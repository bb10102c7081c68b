package catalog

import (
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// Resolver answers whether a command name would resolve when the alias
// expansion runs. The override heuristic depends on the live host's
// search path, so the capability sits behind an interface that tests can
// replace with a deterministic fake.
type Resolver interface {
	Available(cmd string) bool
}

// shellBuiltins lists builtins that are valid in non-interactive shells
// and so never appear on PATH.
var shellBuiltins = map[string]struct{}{
	"echo":   {},
	"printf": {},
	"source": {},
	".":      {},
	"test":   {},
	"true":   {},
	"false":  {},
}

// execResolver resolves commands against the executing host's PATH.
type execResolver struct{}

// NewExecResolver returns a Resolver backed by exec.LookPath plus the
// fixed shell-builtin allowlist.
func NewExecResolver() Resolver {
	return execResolver{}
}

func (execResolver) Available(cmd string) bool {
	if cmd == "" {
		return false
	}
	if _, ok := shellBuiltins[cmd]; ok {
		return true
	}
	_, err := exec.LookPath(cmd)
	return err == nil
}

// headCommand extracts the first shell word of an expansion using
// quote-aware tokenization. Unterminated quoting or an empty expansion
// yields the empty string, which resolvers treat as unavailable.
func headCommand(expansion string) string {
	words, err := shellquote.Split(expansion)
	if err != nil || len(words) == 0 {
		return ""
	}
	return words[0]
}

// canOverride decides whether a duplicate alias definition replaces the
// existing one. A candidate with an available head command always wins;
// an unavailable candidate wins only when the existing head command is
// also unavailable (last-definition-wins fallback).
func canOverride(existing, candidate Alias, res Resolver) bool {
	if res.Available(headCommand(candidate.Expansion)) {
		return true
	}
	return !res.Available(headCommand(existing.Expansion))
}
