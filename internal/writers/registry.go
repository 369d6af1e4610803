package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"
)

// Options are shared by every format.
type Options struct {
	Header bool // column header in text/table output
}

// WriteFunc renders a batch of rows in one format.
type WriteFunc[T any] func(w io.Writer, rows []T, opt Options) error

// Registry maps format names to writers for one row type.
type Registry[T any] struct {
	kind    string
	writers map[string]WriteFunc[T]
}

func newRegistry[T any](kind string, cols Columns[T]) *Registry[T] {
	r := &Registry[T]{kind: kind, writers: map[string]WriteFunc[T]{}}
	r.Register(FormatText, textWriter(cols))
	r.Register(FormatTable, tableWriter(cols))
	r.Register(FormatJSON, jsonWriter[T])
	r.Register(FormatJSONL, jsonlWriter[T])
	return r
}

// Register adds or replaces (last wins) the writer for format.
func (r *Registry[T]) Register(format string, fn WriteFunc[T]) { r.writers[format] = fn }

// Formats returns the registered format names, sorted.
func (r *Registry[T]) Formats() []string {
	out := make([]string, 0, len(r.writers))
	for f := range r.writers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func (r *Registry[T]) Write(format string, w io.Writer, rows []T, opt Options) error {
	fn, ok := r.writers[format]
	if !ok {
		return fmt.Errorf("unknown %s format %q (no writer registered)", r.kind, format)
	}
	if err := fn(w, rows, opt); err != nil && !IsBrokenPipe(err) {
		return err
	}
	return nil
}

const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Registries for each payload the CLI emits.
var (
	Sites       = newRegistry("site", siteColumns)
	Fragments   = newRegistry("fragment", fragmentColumns)
	Complements = newRegistry("complement", complementColumns)
	Enzymes     = newRegistry("enzyme", enzymeColumns)
)

// IsBrokenPipe reports whether err is a broken or closed pipe, which happens
// when a downstream consumer such as `head` exits early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
