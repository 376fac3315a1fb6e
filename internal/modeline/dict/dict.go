// Package dict provides the mode dictionary: the alias table that maps
// Emacs mode names to native language identifiers.
//
// The dictionary is built once at startup by merging user-supplied
// aliases first and built-in defaults second. Merging is additive only,
// so user entries are never replaced by built-ins.
package dict

import (
	"maps"
	"strings"
	"sync"
)

// Builtins returns the default alias entries for Emacs mode names whose
// native language identifier differs from the mode name itself.
func Builtins() map[string]string {
	return map[string]string{
		"c++":          "cpp",
		"shell-script": "sh",
		"makefile":     "make",
		"js":           "javascript",
		"protobuf":     "proto",
	}
}

// Table is the alias table. Lookups are case-insensitive. After the
// startup merges it is read-mostly; the lock exists so a runtime merge
// never races a concurrent lookup.
type Table struct {
	mu      sync.RWMutex
	aliases map[string]string
}

// New creates an empty table.
func New() *Table {
	return &Table{aliases: make(map[string]string)}
}

// NewWithDefaults creates a table holding only the built-in aliases.
func NewWithDefaults() *Table {
	t := New()
	t.Merge(Builtins())
	return t
}

// Merge inserts each alias whose key is not already present. Existing
// entries always win, which is what makes user overrides stick when the
// built-ins are merged after them. Keys are stored lowercase.
func (t *Table) Merge(aliases map[string]string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for name, id := range aliases {
		key := strings.ToLower(name)
		if _, exists := t.aliases[key]; !exists {
			t.aliases[key] = id
		}
	}
}

// Lookup returns the native identifier for a mode name. Absence is a
// normal result, not an error.
func (t *Table) Lookup(name string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	id, ok := t.aliases[strings.ToLower(name)]
	return id, ok
}

// Resolve returns the native identifier for a mode name, falling back
// to the lowercased name itself when no alias exists. Modes like
// "python" need no alias entry.
func (t *Table) Resolve(name string) string {
	if id, ok := t.Lookup(name); ok {
		return id
	}
	return strings.ToLower(name)
}

// All returns a copy of the alias table.
func (t *Table) All() map[string]string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return maps.Clone(t.aliases)
}

// Len returns the number of aliases in the table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.aliases)
}
