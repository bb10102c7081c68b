// Package catalog parses alias-definition files into an immutable catalog
// of named shell command shortcuts. Name collisions across files resolve
// through an availability heuristic on each expansion's head command.
package catalog

import "sort"

// Alias is a parsed shell alias. Values are immutable once built; a
// refresh produces a brand-new catalog rather than mutating entries.
type Alias struct {
	// Name is the alias identifier, unique within a built catalog.
	Name string

	// Expansion is the literal command string the alias stands for.
	Expansion string

	// Safe records the classifier's verdict on Expansion at build time.
	Safe bool

	// SourceFile is the path of the file that defined this alias.
	SourceFile string
}

// Catalog maps alias names to their resolved definitions.
// It is immutable after Build; concurrent readers need no locking.
type Catalog struct {
	aliases map[string]Alias
}

// Get returns the alias with the given name.
func (c *Catalog) Get(name string) (Alias, bool) {
	a, ok := c.aliases[name]
	return a, ok
}

// All returns every alias sorted by name for stable listings.
func (c *Catalog) All() []Alias {
	out := make([]Alias, 0, len(c.aliases))
	for _, a := range c.aliases {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of aliases in the catalog.
func (c *Catalog) Len() int {
	return len(c.aliases)
}
