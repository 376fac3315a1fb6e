// Package settings implements the native settings surface the
// mode-line engine writes to.
//
// Each setting the engine may target is registered with its type,
// default, and range. The store validates on set and silently skips
// values that do not fit: mode-line input is untrusted file content,
// and absence of effect is the contract for anything malformed.
package settings

import "fmt"

// Type is a setting's value type.
type Type int

const (
	// TypeString holds free-form text such as a language identifier.
	TypeString Type = iota

	// TypeInt holds an integer, optionally range-checked.
	TypeInt

	// TypeBool holds a toggle.
	TypeBool
)

// Setting defines one native editor setting.
type Setting struct {
	// Path is the dot-separated option name, e.g. "editor.tabStop".
	Path string

	// Type is the setting's value type.
	Type Type

	// Default is the value before any directive applies.
	Default any

	// Description is human-readable documentation.
	Description string

	// Minimum and Maximum bound integer settings (nil means unbounded).
	Minimum *int
	Maximum *int
}

// Validate checks a value against the setting's type and range.
func (s *Setting) Validate(value any) error {
	switch s.Type {
	case TypeString:
		if _, ok := value.(string); !ok {
			return fmt.Errorf("%s: expected string, got %T", s.Path, value)
		}
	case TypeBool:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("%s: expected boolean, got %T", s.Path, value)
		}
	case TypeInt:
		n, ok := value.(int)
		if !ok {
			return fmt.Errorf("%s: expected integer, got %T", s.Path, value)
		}
		if s.Minimum != nil && n < *s.Minimum {
			return fmt.Errorf("%s: %d below minimum %d", s.Path, n, *s.Minimum)
		}
		if s.Maximum != nil && n > *s.Maximum {
			return fmt.Errorf("%s: %d above maximum %d", s.Path, n, *s.Maximum)
		}
	}
	return nil
}

// MinValue returns a pointer for use as a Setting minimum.
func MinValue(v int) *int { return &v }

// MaxValue returns a pointer for use as a Setting maximum.
func MaxValue(v int) *int { return &v }
