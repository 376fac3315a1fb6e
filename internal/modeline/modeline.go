// Package modeline detects Emacs mode-line directives embedded in a
// buffer and translates them into native editor settings.
//
// Two locations are scanned on buffer load: a -*- ... -*- marker within
// the first two lines, and a "Local Variables" block within the final
// 3000 bytes. Recognized directives are dispatched as typed settings
// calls; everything else is ignored. The whole scan is synchronous and
// bounded, so it runs to completion before control returns.
package modeline

import (
	"github.com/dshills/modeline/internal/modeline/apply"
	"github.com/dshills/modeline/internal/modeline/dict"
	"github.com/dshills/modeline/internal/modeline/scan"
)

// Source is the read-only buffer view the engine scans.
type Source = scan.Source

// Settings is the typed settings surface the engine writes to.
type Settings = apply.Settings

// Engine runs the header and footer scans and applies what they find.
type Engine struct {
	dict *dict.Table
}

// Option configures an Engine.
type Option func(*Engine)

// WithAliases merges user alias overrides into the mode dictionary.
// User entries take precedence over the built-ins.
func WithAliases(aliases map[string]string) Option {
	return func(e *Engine) {
		e.dict.Merge(aliases)
	}
}

// New creates an engine. User aliases from options are merged before
// the built-in defaults, so the built-ins only fill gaps.
func New(opts ...Option) *Engine {
	e := &Engine{dict: dict.New()}
	for _, opt := range opts {
		opt(e)
	}
	e.dict.Merge(dict.Builtins())
	return e
}

// Scan examines src for mode lines and applies recognized directives
// to out. Header directives are applied before footer directives, so
// when both set the same option the footer's value wins.
func (e *Engine) Scan(src Source, out Settings) {
	a := apply.New(e.dict, out)

	for _, line := range scan.Header(src) {
		a.ApplyModeLine(line)
	}
	for _, line := range scan.Footer(src) {
		a.ApplyModeLine(line)
	}
}

// Aliases returns a copy of the effective alias table.
func (e *Engine) Aliases() map[string]string {
	return e.dict.All()
}
