// Package enzyme resolves restriction-enzyme names to recognition patterns.
// A Catalog can come from the embedded table, a YAML document or a TSV file.
package enzyme

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"nucleo-core/site"
)

// Enzyme is one catalog entry. Recognition may carry a "^" cut mark; when it
// does not, CutIndex is used if set, else the cut falls mid-site.
type Enzyme struct {
	Name        string `yaml:"name"`
	Recognition string `yaml:"site"`
	CutIndex    *int   `yaml:"cut,omitempty"`
}

// Pattern compiles the entry into a scanner pattern.
func (e Enzyme) Pattern() (site.Pattern, error) {
	if e.CutIndex != nil && !strings.Contains(e.Recognition, "^") {
		return site.NewPatternAt(e.Name, e.Recognition, *e.CutIndex)
	}
	return site.NewPattern(e.Name, e.Recognition)
}

// ErrPatternNotFound is returned when no enzyme matches a name.
var ErrPatternNotFound = errors.New("enzyme pattern not found")

// AmbiguousNameError is returned when a name fragment matches several
// enzymes and none exactly.
type AmbiguousNameError struct {
	Query      string
	Candidates []string
}

func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf("enzyme name %q is ambiguous: %s", e.Query, strings.Join(e.Candidates, ", "))
}

// Catalog is an immutable name → enzyme table; lookups are case-insensitive.
type Catalog struct {
	byKey map[string]Enzyme
}

// NewCatalog validates entries and builds a catalog. Later duplicates (by
// case-insensitive name) replace earlier ones.
func NewCatalog(entries []Enzyme) (*Catalog, error) {
	c := &Catalog{byKey: make(map[string]Enzyme, len(entries))}
	for i, e := range entries {
		e.Name = strings.TrimSpace(e.Name)
		if e.Name == "" {
			return nil, fmt.Errorf("entry %d: missing name", i+1)
		}
		if _, err := e.Pattern(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		c.byKey[strings.ToLower(e.Name)] = e
	}
	return c, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.byKey) }

// Names returns every enzyme name, sorted.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.byKey))
	for _, e := range c.byKey {
		out = append(out, e.Name)
	}
	sort.Strings(out)
	return out
}

// Enzymes returns every entry sorted by name.
func (c *Catalog) Enzymes() []Enzyme {
	out := make([]Enzyme, 0, len(c.byKey))
	for _, n := range c.Names() {
		out = append(out, c.byKey[strings.ToLower(n)])
	}
	return out
}

// Get resolves a name fragment to exactly one enzyme. An exact
// (case-insensitive) name wins; otherwise the fragment must be a substring of
// exactly one name.
func (c *Catalog) Get(query string) (Enzyme, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if key == "" {
		return Enzyme{}, fmt.Errorf("%w: empty name", ErrPatternNotFound)
	}
	if e, ok := c.byKey[key]; ok {
		return e, nil
	}
	var hits []string
	for k, e := range c.byKey {
		if strings.Contains(k, key) {
			hits = append(hits, e.Name)
		}
	}
	switch len(hits) {
	case 0:
		return Enzyme{}, fmt.Errorf("%w: %q", ErrPatternNotFound, query)
	case 1:
		return c.byKey[strings.ToLower(hits[0])], nil
	}
	sort.Strings(hits)
	return Enzyme{}, &AmbiguousNameError{Query: query, Candidates: hits}
}

// Lookup resolves query and compiles its pattern.
func (c *Catalog) Lookup(query string) (site.Pattern, error) {
	e, err := c.Get(query)
	if err != nil {
		return site.Pattern{}, err
	}
	return e.Pattern()
}

// LookupAll resolves every query in order, failing on the first miss.
func (c *Catalog) LookupAll(queries []string) ([]site.Pattern, error) {
	out := make([]site.Pattern, 0, len(queries))
	for _, q := range queries {
		p, err := c.Lookup(q)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Merge returns a catalog holding c's entries overlaid by other's.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	out := &Catalog{byKey: make(map[string]Enzyme, len(c.byKey))}
	for k, e := range c.byKey {
		out.byKey[k] = e
	}
	if other != nil {
		for k, e := range other.byKey {
			out.byKey[k] = e
		}
	}
	return out
}

//go:embed enzymes.yaml
var builtinYAML []byte

var (
	builtinOnce sync.Once
	builtin     *Catalog
)

// Builtin returns the embedded catalog. It panics if the embedded table is
// malformed, which the package tests rule out.
func Builtin() *Catalog {
	builtinOnce.Do(func() {
		c, err := ParseYAML(builtinYAML)
		if err != nil {
			panic(fmt.Sprintf("enzyme: embedded catalog: %v", err))
		}
		builtin = c
	})
	return builtin
}
