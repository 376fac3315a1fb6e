// Package buffer provides the read-only line buffer the mode-line
// engine scans.
//
// A Buffer is built once from a string, reader, or file and never
// mutated. Line endings are normalized to LF on load so line indexing
// and decoration stripping see uniform text.
package buffer

import (
	"io"
	"os"
	"strings"
)

// Buffer is an immutable, line-indexed view of loaded text.
type Buffer struct {
	text   string
	lines  []string
	starts []int
}

// FromString builds a buffer from text.
func FromString(s string) *Buffer {
	text := normalizeLineEndings(s)

	b := &Buffer{
		text:  text,
		lines: strings.Split(text, "\n"),
	}
	b.starts = make([]int, len(b.lines))
	offset := 0
	for i, line := range b.lines {
		b.starts[i] = offset
		offset += len(line) + 1
	}
	return b
}

// FromReader builds a buffer from a reader. The full content is read
// before normalization so CRLF pairs split across reads stay intact.
func FromReader(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return FromString(string(data)), nil
}

// Open builds a buffer from a file on disk.
func Open(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromString(string(data)), nil
}

// normalizeLineEndings converts CRLF and CR line endings to LF.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// LineText returns the text of the zero-based line n without its line
// ending, or "" when n is out of range.
func (b *Buffer) LineText(n int) string {
	if n < 0 || n >= len(b.lines) {
		return ""
	}
	return b.lines[n]
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Len returns the buffer content size in bytes.
func (b *Buffer) Len() int {
	return len(b.text)
}

// LineStartOffset returns the byte offset where line n starts. Out of
// range lines report the end of the buffer.
func (b *Buffer) LineStartOffset(n int) int {
	if n < 0 || n >= len(b.starts) {
		return len(b.text)
	}
	return b.starts[n]
}

// Text returns the normalized buffer content.
func (b *Buffer) Text() string {
	return b.text
}
