// Package runtime owns the live alias catalog and enforces call policy
// before delegating to the guarded executor and the audit log.
package runtime

import (
	"context"
	"sync/atomic"

	"github.com/cockroachdb/errors"

	"github.com/xdg/aliasgate/internal/alog"
	"github.com/xdg/aliasgate/internal/audit"
	"github.com/xdg/aliasgate/internal/catalog"
	"github.com/xdg/aliasgate/internal/config"
	"github.com/xdg/aliasgate/internal/executor"
	"github.com/xdg/aliasgate/internal/safety"
)

// Policy errors surfaced to callers as user-facing tool errors.
var (
	// ErrAliasNotFound marks requests for names the catalog does not define.
	ErrAliasNotFound = errors.New("alias not found")

	// ErrUnsafeAlias marks non-dry-run requests for unsafe aliases.
	ErrUnsafeAlias = errors.New("alias is not marked safe")

	// ErrConfirmRequired marks non-dry-run requests without explicit confirmation.
	ErrConfirmRequired = errors.New("execution requires confirmation")

	// ErrInvalidTimeout marks timeout overrides that are non-positive or
	// exceed the allowed ceiling.
	ErrInvalidTimeout = errors.New("invalid timeout override")
)

// timeoutCeilingFactor bounds a caller's timeout override relative to
// the configured default.
const timeoutCeilingFactor = 5

// Runtime holds the configuration, the compiled classifier, and the
// current catalog snapshot. The catalog is an atomically replaceable
// immutable value: a refresh builds a whole new catalog and swaps the
// pointer, so in-flight readers see either the old or the new catalog in
// full, never a partially built one.
type Runtime struct {
	cfg        *config.Config
	classifier *safety.Classifier
	resolver   catalog.Resolver
	guard      *executor.Guard
	catalog    atomic.Pointer[catalog.Catalog]
}

// New builds a Runtime, compiling the configured patterns and loading
// the initial catalog.
func New(cfg *config.Config) *Runtime {
	r := &Runtime{
		cfg:        cfg,
		classifier: safety.FromPatterns(cfg.AllowPatterns, cfg.DenyPatterns),
		resolver:   catalog.NewExecResolver(),
		guard:      executor.New(cfg),
	}
	r.Refresh()
	return r
}

// Refresh rebuilds the catalog from the configured files and swaps it in.
func (r *Runtime) Refresh() {
	built := catalog.Build(r.cfg.AliasFiles, r.classifier, r.resolver)
	r.catalog.Store(built)
	alog.Debugw("alias catalog refreshed", "aliases", built.Len())
}

// refreshIfHot rebuilds the catalog when hot reload is enabled, so
// long-lived servers pick up alias file edits on the next call.
func (r *Runtime) refreshIfHot() {
	if r.cfg.HotReload() {
		r.Refresh()
	}
}

// ListAliases returns every cataloged alias sorted by name.
func (r *Runtime) ListAliases() []catalog.Alias {
	r.refreshIfHot()
	return r.catalog.Load().All()
}

// GetAlias returns the alias with the given name, or an error marked
// ErrAliasNotFound.
func (r *Runtime) GetAlias(name string) (catalog.Alias, error) {
	r.refreshIfHot()
	alias, ok := r.catalog.Load().Get(name)
	if !ok {
		return catalog.Alias{}, errors.Mark(errors.Newf("alias %q is not defined", name), ErrAliasNotFound)
	}
	return alias, nil
}

// ExecRequest carries the parameters of one executeAlias call.
type ExecRequest struct {
	Name    string
	Args    executor.Args
	DryRun  bool
	Confirm bool

	// Cwd optionally selects a working directory (containment-checked).
	Cwd string

	// TimeoutSeconds optionally overrides the default timeout; zero
	// means unset.
	TimeoutSeconds int
}

// ExecuteAlias applies the call policy, runs the guarded execution, and
// records the attempt in the audit log. Policy order: confirmation
// first, then alias resolution, then safety, then timeout bounds.
// Every completed execution is audited, dry runs included.
//
// The returned Alias is the exact definition that was executed, so
// callers building payloads never need a second catalog lookup (which
// could observe a different definition after a hot reload).
func (r *Runtime) ExecuteAlias(ctx context.Context, req ExecRequest) (catalog.Alias, *executor.Result, error) {
	if !req.DryRun && !req.Confirm {
		return catalog.Alias{}, nil, errors.Mark(
			errors.New("execution requires confirm=true; use dryRun to preview"),
			ErrConfirmRequired)
	}

	alias, err := r.GetAlias(req.Name)
	if err != nil {
		return catalog.Alias{}, nil, err
	}

	if !alias.Safe && !req.DryRun {
		return catalog.Alias{}, nil, errors.Mark(
			errors.Newf("alias %q is not marked safe; only dry runs are permitted unless it matches allow patterns", req.Name),
			ErrUnsafeAlias)
	}

	timeoutOverride := 0
	if req.TimeoutSeconds != 0 {
		ceiling := max(r.cfg.Execution.DefaultTimeoutSeconds, 1) * timeoutCeilingFactor
		if req.TimeoutSeconds < 0 {
			return catalog.Alias{}, nil, errors.Mark(errors.New("timeoutSeconds must be positive"), ErrInvalidTimeout)
		}
		if req.TimeoutSeconds > ceiling {
			return catalog.Alias{}, nil, errors.Mark(
				errors.Newf("timeoutSeconds may not exceed %d seconds", ceiling),
				ErrInvalidTimeout)
		}
		timeoutOverride = req.TimeoutSeconds
	}

	result, err := r.guard.Execute(ctx, alias, executor.Options{
		Args:            req.Args,
		DryRun:          req.DryRun,
		RequestedCwd:    req.Cwd,
		TimeoutOverride: timeoutOverride,
	})
	if err != nil {
		return catalog.Alias{}, nil, err
	}

	if err := audit.Record(r.cfg, alias, req.Args, result.Cwd, result); err != nil {
		return catalog.Alias{}, nil, errors.Wrap(err, "record audit entry")
	}
	return alias, result, nil
}
