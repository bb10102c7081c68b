// Package safety classifies alias expansions as safe or unsafe using
// allow/deny regular expression sets. Classification is deterministic and
// happens once at catalog-build time; there is no default-allow state.
package safety

import (
	"regexp"
	"strings"

	"github.com/xdg/aliasgate/internal/alog"
)

// Classifier holds compiled allow and deny patterns.
// It is immutable after construction.
type Classifier struct {
	allow []*regexp.Regexp
	deny  []*regexp.Regexp
}

// FromPatterns compiles the given pattern strings into a Classifier.
// Invalid patterns are logged and skipped, not fatal, so one bad config
// entry cannot disable the whole classifier.
func FromPatterns(allow, deny []string) *Classifier {
	return &Classifier{
		allow: compilePatterns(allow, "allow"),
		deny:  compilePatterns(deny, "deny"),
	}
}

// IsSafe reports whether the expansion is permitted for real execution.
// Deny patterns take precedence over allow patterns. With no allow
// patterns configured, everything is unsafe.
func (c *Classifier) IsSafe(expansion string) bool {
	for _, re := range c.deny {
		if re.MatchString(expansion) {
			return false
		}
	}
	for _, re := range c.allow {
		if re.MatchString(expansion) {
			return true
		}
	}
	return false
}

// AllowCount returns the number of compiled allow patterns.
func (c *Classifier) AllowCount() int { return len(c.allow) }

// DenyCount returns the number of compiled deny patterns.
func (c *Classifier) DenyCount() int { return len(c.deny) }

// normalizePattern undoes host-level double escaping. Config layers that
// re-escape backslashes produce strings like `\\b` where the author meant
// the regex `\b`; collapsing doubled backslashes restores the intent.
// Patterns without doubled backslashes pass through untouched so regex
// classes like \b and \s survive as written.
func normalizePattern(pattern string) string {
	if !strings.Contains(pattern, `\\`) {
		return pattern
	}
	return strings.ReplaceAll(pattern, `\\`, `\`)
}

// compilePatterns compiles a slice of regex pattern strings with
// unanchored search semantics. A pattern that fails to compile in
// normalized form is retried raw before being dropped.
func compilePatterns(patterns []string, category string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, raw := range patterns {
		re, err := regexp.Compile(normalizePattern(raw))
		if err != nil {
			re, err = regexp.Compile(raw)
		}
		if err != nil {
			alog.Warnw("skipping invalid pattern", "category", category, "pattern", raw, "error", err)
			continue
		}
		compiled = append(compiled, re)
	}
	return compiled
}
