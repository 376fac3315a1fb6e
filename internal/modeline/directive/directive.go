// Package directive extracts single named values from a raw mode-line
// string.
//
// A mode line is a semicolon-separated list of "name: value" pairs, e.g.
// "mode: c++; tab-width: 4". Extract pulls out one named value under a
// bounded value grammar chosen from a closed set of character classes.
//
// The closed set is deliberate. Extracted values end up in editor
// settings, and a grammar loose enough to capture a semicolon or
// whitespace would let a crafted file smuggle trailing content past the
// parser. ValueClass makes an unconstrained wildcard inexpressible.
package directive

import (
	"fmt"
	"regexp"
	"sync"
)

// ValueClass identifies one of the bounded grammars a directive value
// may match.
type ValueClass int

const (
	// Digits matches a run of decimal digits.
	Digits ValueClass = iota

	// ModeName matches letters, digits, and the "_+-" set that appears
	// in Emacs mode names such as "c++" and "shell-script".
	ModeName

	// WordHyphen matches word characters and hyphens, the shape of
	// coding system names such as "utf-8-unix".
	WordHyphen

	// Bareword matches any run free of whitespace and semicolons, used
	// for boolean-ish values such as "t" and "nil".
	Bareword
)

// expr returns the regular expression fragment for the class. Every
// class is a bounded character class: none can match a semicolon or
// whitespace, so a captured value can never carry trailing directives
// or shell metacharacter runs.
func (c ValueClass) expr() string {
	switch c {
	case Digits:
		return `[0-9]+`
	case ModeName:
		return `[A-Za-z0-9_+-]+`
	case WordHyphen:
		return `[0-9A-Za-z_-]+`
	case Bareword:
		return `[^ \t;]+`
	default:
		panic(fmt.Sprintf("directive: unknown value class %d", c))
	}
}

var (
	patternMu sync.Mutex
	patterns  = make(map[string]*regexp.Regexp)
)

// pattern returns the compiled matcher for (name, class). The directive
// vocabulary is a small fixed table, so compiled patterns are cached.
func pattern(name string, class ValueClass) *regexp.Regexp {
	key := fmt.Sprintf("%s\x00%d", name, class)

	patternMu.Lock()
	defer patternMu.Unlock()

	if re, ok := patterns[key]; ok {
		return re
	}

	// Optional leading text must end in ";" so a name can never match
	// in the middle of another directive's value. The value must be
	// followed by end-of-string or a ";" opening the next directive.
	expr := fmt.Sprintf(`^(?:.*;)?[ \t]*(?i:%s)[ \t]*:[ \t]*(%s)[ \t]*(?:;.*)?$`,
		regexp.QuoteMeta(name), class.expr())
	re := regexp.MustCompile(expr)
	patterns[key] = re
	return re
}

// Extract returns the value of the named option in the mode line, or
// false when the name is absent or its value does not fit the class.
// Absence is normal, not an error: most lines carry no given directive.
func Extract(modeline, name string, class ValueClass) (string, bool) {
	m := pattern(name, class).FindStringSubmatch(modeline)
	if m == nil {
		return "", false
	}
	return m[1], true
}
