package catalog

import (
	"github.com/xdg/aliasgate/internal/alog"
	"github.com/xdg/aliasgate/internal/safety"
)

// Build parses the configured files in order and returns a new immutable
// catalog. When a name repeats across files, the later definition
// overrides the earlier one only per the availability heuristic: prefer
// any definition whose head command resolves on this host, and fall back
// to last-wins when neither resolves. This approximates the intent of
// OS-conditional dotfile aliases (gls on macOS, ls elsewhere) without
// evaluating shell conditionals.
func Build(files []string, cls *safety.Classifier, res Resolver) *Catalog {
	aliases := make(map[string]Alias)

	for _, path := range files {
		for _, alias := range parseFile(path, cls) {
			existing, found := aliases[alias.Name]
			if !found {
				aliases[alias.Name] = alias
				continue
			}
			if canOverride(existing, alias, res) {
				alog.Debugw("alias overridden",
					"name", alias.Name,
					"source", alias.SourceFile,
					"previous", existing.SourceFile)
				aliases[alias.Name] = alias
			}
		}
	}

	return &Catalog{aliases: aliases}
}
