// Package audit appends a redacted JSON record of every execution
// attempt to a durable newline-delimited log. Entries are write-only:
// nothing in aliasgate reads them back.
package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/xdg/aliasgate/internal/catalog"
	"github.com/xdg/aliasgate/internal/config"
	"github.com/xdg/aliasgate/internal/executor"
)

// Entry is one audit record. Field names are part of the on-disk format.
type Entry struct {
	Timestamp   string `json:"timestamp"`
	ExecutionID string `json:"executionId"`
	Alias       string `json:"alias"`
	Safe        bool   `json:"safe"`
	Args        string `json:"args"`
	Cwd         string `json:"cwd"`
	Command     string `json:"command"`
	ExitCode    *int   `json:"exitCode"`
	TimedOut    bool   `json:"timedOut"`
	DryRun      bool   `json:"dryRun"`
}

// redactionMarker replaces secret-looking substrings in persisted fields.
const redactionMarker = "<redacted>"

// secretPattern matches token/secret/password immediately followed by
// non-whitespace. A coarse heuristic, not a guarantee: secrets split
// across words or under other names pass through.
var secretPattern = regexp.MustCompile(`(?i)(token|secret|password)\S*`)

// appendMu serializes appends within the process. Cross-process appends
// rely on O_APPEND, which is atomic for writes under the pipe buffer
// size — audit lines stay well below it.
var appendMu sync.Mutex

// Record appends one entry for an execution attempt. Any failure to
// create the log directory or append the line propagates as an error;
// audit failures are never swallowed.
func Record(cfg *config.Config, alias catalog.Alias, args executor.Args, cwd string, result *executor.Result) error {
	entry := Entry{
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		ExecutionID: uuid.NewString(),
		Alias:       redact(alias.Name),
		Safe:        alias.Safe,
		Args:        redact(args.Join()),
		Cwd:         redact(cwd),
		Command:     redact(result.Command),
		ExitCode:    result.ExitCode,
		TimedOut:    result.TimedOut,
		DryRun:      result.DryRun,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "marshal audit entry")
	}

	path := cfg.AuditLogPath
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return errors.Wrap(err, "create audit log directory")
	}

	appendMu.Lock()
	defer appendMu.Unlock()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		return errors.Wrap(err, "open audit log")
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return errors.Wrap(err, "append audit entry")
	}
	return nil
}

// redact replaces secret-looking substrings with the redaction marker.
func redact(s string) string {
	return secretPattern.ReplaceAllString(s, redactionMarker)
}
