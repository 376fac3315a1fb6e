package scan

import "strings"

// stubSource implements Source over a plain string for tests.
type stubSource struct {
	lines  []string
	starts []int
	size   int
}

func newStubSource(text string) *stubSource {
	s := &stubSource{
		lines: strings.Split(text, "\n"),
		size:  len(text),
	}
	s.starts = make([]int, len(s.lines))
	offset := 0
	for i, line := range s.lines {
		s.starts[i] = offset
		offset += len(line) + 1
	}
	return s
}

func (s *stubSource) LineText(n int) string {
	if n < 0 || n >= len(s.lines) {
		return ""
	}
	return s.lines[n]
}

func (s *stubSource) LineCount() int { return len(s.lines) }

func (s *stubSource) Len() int { return s.size }

func (s *stubSource) LineStartOffset(n int) int {
	if n < 0 || n >= len(s.starts) {
		return s.size
	}
	return s.starts[n]
}
