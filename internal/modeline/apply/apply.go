// Package apply interprets extracted mode-line directives and issues
// typed settings calls.
//
// Every effect goes through the Settings interface as a direct typed
// call. Nothing in this package assembles an instruction string from
// file content; combined with the bounded value grammars in package
// directive, that removes the injection vector structurally.
//
// Directives that would execute file-supplied code in the source editor
// ("eval", "compile-command") are recognized in the wild but have no
// entry in the dispatch table and are never honored.
package apply

import (
	"strconv"
	"strings"

	"github.com/dshills/modeline/internal/modeline/dict"
	"github.com/dshills/modeline/internal/modeline/directive"
)

// Settings is the typed settings surface the applier drives. A host
// editor implements this against its own option store.
type Settings interface {
	SetLanguage(id string)
	SetNumericOption(name string, value int)
	SetBooleanOption(name string, value bool)
	SetStringOption(name string, value string)
}

// Native option names the dispatch table targets.
const (
	OptTextWidth    = "editor.textWidth"
	OptTabStop      = "editor.tabStop"
	OptShiftWidth   = "editor.shiftWidth"
	OptSoftTabStop  = "editor.softTabStop"
	OptReadOnly     = "editor.readOnly"
	OptInsertSpaces = "editor.insertSpaces"
	OptEncoding     = "files.encoding"
)

// Sentinel values for the derived indent settings.
const (
	// FollowTabStop makes shiftWidth track tabStop.
	FollowTabStop = 0

	// FollowShiftWidth makes softTabStop track shiftWidth.
	FollowShiftWidth = -1
)

// Applier maps recognized directives in a mode line onto settings calls.
type Applier struct {
	dict *dict.Table
	out  Settings
}

// New creates an applier writing to out, resolving mode names through
// the given dictionary.
func New(d *dict.Table, out Settings) *Applier {
	return &Applier{dict: d, out: out}
}

// rule binds one directive name to its bounded value grammar and its
// effect. The grammar is part of the table so no call site can widen it.
type rule struct {
	name  string
	class directive.ValueClass
	apply func(a *Applier, value string)
}

var rules = []rule{
	{"mode", directive.ModeName, (*Applier).applyMode},
	{"fill-column", directive.Digits, (*Applier).applyFillColumn},
	{"tab-width", directive.Digits, (*Applier).applyTabWidth},
	{"c-basic-offset", directive.Digits, (*Applier).applyCBasicOffset},
	{"buffer-read-only", directive.Bareword, (*Applier).applyReadOnly},
	{"indent-tabs-mode", directive.Bareword, (*Applier).applyIndentTabs},
	{"coding", directive.WordHyphen, (*Applier).applyCoding},
}

// ApplyModeLine applies every recognized directive on one mode line.
// Unrecognized names and values that fail their grammar are skipped
// silently; most lines carry nothing of interest.
func (a *Applier) ApplyModeLine(line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}

	// A bare mode name with no directive syntax at all, e.g. the
	// "-*- Makefile -*-" shorthand, applies as the language when the
	// dictionary knows it.
	if !strings.Contains(trimmed, ":") {
		if id, ok := a.dict.Lookup(trimmed); ok {
			a.out.SetLanguage(id)
		}
		return
	}

	for _, r := range rules {
		if value, ok := directive.Extract(line, r.name, r.class); ok {
			r.apply(a, value)
		}
	}
}

func (a *Applier) applyMode(value string) {
	a.out.SetLanguage(a.dict.Resolve(value))
}

func (a *Applier) applyFillColumn(value string) {
	if n, ok := parseInt(value); ok {
		a.out.SetNumericOption(OptTextWidth, n)
	}
}

func (a *Applier) applyTabWidth(value string) {
	n, ok := parseInt(value)
	if !ok {
		return
	}
	a.out.SetNumericOption(OptTabStop, n)
	// Indent width follows the tab stop, and the soft tab stop follows
	// the indent width, so one directive keeps all three consistent.
	a.out.SetNumericOption(OptShiftWidth, FollowTabStop)
	a.out.SetNumericOption(OptSoftTabStop, FollowShiftWidth)
}

func (a *Applier) applyCBasicOffset(value string) {
	if n, ok := parseInt(value); ok {
		a.out.SetNumericOption(OptSoftTabStop, n)
		a.out.SetNumericOption(OptShiftWidth, n)
	}
}

func (a *Applier) applyReadOnly(value string) {
	a.out.SetBooleanOption(OptReadOnly, value != "nil")
}

func (a *Applier) applyIndentTabs(value string) {
	// Inverted polarity relative to buffer-read-only: indent-tabs-mode
	// nil means "do not indent with tabs", i.e. insert spaces.
	a.out.SetBooleanOption(OptInsertSpaces, value == "nil")
}

func (a *Applier) applyCoding(value string) {
	a.out.SetStringOption(OptEncoding, normalizeCoding(value))
}

// parseInt converts a digits-only value. The grammar guarantees the
// shape; overflow is the only way this fails, and such a value is
// skipped like any other malformed directive.
func parseInt(value string) (int, bool) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}
