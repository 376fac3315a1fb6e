package settings

import (
	"fmt"
	"sync"

	"github.com/dshills/modeline/internal/modeline/apply"
)

// OptLanguage is where SetLanguage lands; the other option names come
// from the applier's dispatch table.
const OptLanguage = "editor.language"

// Store holds current setting values and implements the typed
// settings-apply surface the mode-line engine drives.
type Store struct {
	mu      sync.RWMutex
	defs    map[string]*Setting
	values  map[string]any
	applied []Change
}

var _ apply.Settings = (*Store)(nil)

// Change records one applied settings call.
type Change struct {
	Path  string
	Value any
}

// NewStore creates a store with the built-in setting definitions.
func NewStore() *Store {
	s := &Store{
		defs:   make(map[string]*Setting),
		values: make(map[string]any),
	}
	s.registerDefaults()
	return s
}

// Register adds a setting definition. Duplicate paths are an error.
func (s *Store) Register(def Setting) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.defs[def.Path]; exists {
		return fmt.Errorf("settings: %s already registered", def.Path)
	}
	d := &def
	s.defs[def.Path] = d
	if def.Default != nil {
		s.values[def.Path] = def.Default
	}
	return nil
}

// MustRegister registers a setting and panics on error. Used for the
// built-in definitions at construction time.
func (s *Store) MustRegister(def Setting) {
	if err := s.Register(def); err != nil {
		panic(err)
	}
}

// SetLanguage sets the buffer's language identifier.
func (s *Store) SetLanguage(id string) {
	s.set(OptLanguage, id)
}

// SetNumericOption sets an integer option by name.
func (s *Store) SetNumericOption(name string, value int) {
	s.set(name, value)
}

// SetBooleanOption sets a toggle option by name.
func (s *Store) SetBooleanOption(name string, value bool) {
	s.set(name, value)
}

// SetStringOption sets a string option by name.
func (s *Store) SetStringOption(name, value string) {
	s.set(name, value)
}

// set stores a validated value. Unknown names and out-of-range values
// are skipped: a directive that fails its target is a no-op, never an
// error surfaced to the user.
func (s *Store) set(path string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	def, ok := s.defs[path]
	if !ok {
		return
	}
	if err := def.Validate(value); err != nil {
		return
	}
	s.values[path] = value
	s.applied = append(s.applied, Change{Path: path, Value: value})
}

// Get returns the current value of a setting.
func (s *Store) Get(path string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[path]
	return v, ok
}

// Changes returns every applied settings call in application order.
// Repeated writes to the same path appear once each, so last-writer
// ordering is observable.
func (s *Store) Changes() []Change {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Change, len(s.applied))
	copy(out, s.applied)
	return out
}

// registerDefaults defines the settings the mode-line engine targets.
// Defaults are nil: only directive-applied values show up in Changes.
func (s *Store) registerDefaults() {
	s.MustRegister(Setting{
		Path:        OptLanguage,
		Type:        TypeString,
		Description: "Language identifier for syntax features",
	})
	s.MustRegister(Setting{
		Path:        apply.OptTextWidth,
		Type:        TypeInt,
		Description: "Column at which text is wrapped",
		Minimum:     MinValue(1),
		Maximum:     MaxValue(500),
	})
	s.MustRegister(Setting{
		Path:        apply.OptTabStop,
		Type:        TypeInt,
		Description: "The number of spaces a tab is equal to",
		Minimum:     MinValue(1),
		Maximum:     MaxValue(16),
	})
	s.MustRegister(Setting{
		Path:        apply.OptShiftWidth,
		Type:        TypeInt,
		Description: "Indent width; 0 follows the tab stop",
		Minimum:     MinValue(apply.FollowTabStop),
		Maximum:     MaxValue(16),
	})
	s.MustRegister(Setting{
		Path:        apply.OptSoftTabStop,
		Type:        TypeInt,
		Description: "Soft tab stop; -1 follows the indent width",
		Minimum:     MinValue(apply.FollowShiftWidth),
		Maximum:     MaxValue(16),
	})
	s.MustRegister(Setting{
		Path:        apply.OptReadOnly,
		Type:        TypeBool,
		Description: "Reject edits to the buffer",
	})
	s.MustRegister(Setting{
		Path:        apply.OptInsertSpaces,
		Type:        TypeBool,
		Description: "Insert spaces when pressing Tab",
	})
	s.MustRegister(Setting{
		Path:        apply.OptEncoding,
		Type:        TypeString,
		Description: "File encoding used when saving",
	})
}
