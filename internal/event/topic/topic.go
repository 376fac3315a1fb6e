// Package topic defines hierarchical event topics with dot notation.
package topic

import "strings"

// Topic is a hierarchical event type such as "buffer.loaded".
type Topic string

// Wildcard matches exactly one segment in a subscription pattern.
const Wildcard = "*"

// Separator splits a topic into segments.
const Separator = "."

// String returns the topic as a string.
func (t Topic) String() string {
	return string(t)
}

// Segments returns the topic split by the separator.
func (t Topic) Segments() []string {
	if t == "" {
		return nil
	}
	return strings.Split(string(t), Separator)
}

// Match reports whether the topic matches a subscription pattern. The
// pattern may use "*" for any single segment: "buffer.*" matches
// "buffer.loaded" but not "buffer.content.inserted".
func (t Topic) Match(pattern Topic) bool {
	if t == pattern {
		return true
	}

	segs := t.Segments()
	pats := pattern.Segments()
	if len(segs) != len(pats) {
		return false
	}

	for i, p := range pats {
		if p != Wildcard && p != segs[i] {
			return false
		}
	}
	return true
}
