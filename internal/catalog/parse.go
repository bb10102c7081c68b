package catalog

import (
	"bufio"
	"os"
	"regexp"
	"strings"

	"github.com/xdg/aliasgate/internal/alog"
	"github.com/xdg/aliasgate/internal/safety"
)

// Go's regexp has no backreferences, so the single- and double-quoted
// forms of the alias grammar compile separately. The close quote must
// match the open quote; trailing whitespace is tolerated.
var (
	singleQuoted = regexp.MustCompile(`^alias\s+([A-Za-z0-9_-]+)='(.*)'\s*$`)
	doubleQuoted = regexp.MustCompile(`^alias\s+([A-Za-z0-9_-]+)="(.*)"\s*$`)

	// Extra validation pass beyond the grammar capture: names carrying
	// shell metacharacters are rejected even if a future grammar change
	// were to admit them.
	invalidName = regexp.MustCompile("[\\s!$`\\\\]")
)

// parseLine matches one trimmed line against the alias grammar.
// It returns the name, the unescaped expansion, and whether the line
// matched at all. Non-matching lines are not errors.
func parseLine(line string) (name, expansion string, ok bool) {
	if m := singleQuoted.FindStringSubmatch(line); m != nil {
		return m[1], strings.ReplaceAll(m[2], `\'`, `'`), true
	}
	if m := doubleQuoted.FindStringSubmatch(line); m != nil {
		return m[1], strings.ReplaceAll(m[2], `\"`, `"`), true
	}
	return "", "", false
}

// parseFile reads one alias file and returns its parsed aliases in file
// order. A missing file logs a warning and contributes zero aliases so
// the remaining configured files still load. Blank lines, comment lines,
// and lines that do not match the grammar are skipped silently.
func parseFile(path string, cls *safety.Classifier) []Alias {
	f, err := os.Open(path)
	if err != nil {
		alog.Warnw("alias file not readable", "path", path, "error", err)
		return nil
	}
	defer f.Close()

	var aliases []Alias
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, expansion, ok := parseLine(line)
		if !ok {
			continue
		}
		if invalidName.MatchString(name) {
			alog.Debugw("skipping alias with invalid name", "name", name, "path", path, "line", lineNo)
			continue
		}

		aliases = append(aliases, Alias{
			Name:       name,
			Expansion:  expansion,
			Safe:       cls.IsSafe(expansion),
			SourceFile: path,
		})
	}
	if err := scanner.Err(); err != nil {
		alog.Warnw("error reading alias file", "path", path, "error", err)
	}
	return aliases
}
