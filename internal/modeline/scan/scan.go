// Package scan locates Emacs mode lines in a buffer.
//
// A mode line may appear in exactly two places: between a pair of -*-
// markers within the first two lines, and inside a "Local Variables"
// block in the trailing portion of the file. Both scans are bounded by
// construction (two lines, 3000 bytes), so scanning an arbitrarily
// large buffer is constant work.
package scan

// Source is the read-only buffer view the scanners need. Lines are
// zero-based; LineText returns "" for out-of-range lines.
type Source interface {
	LineText(n int) string
	LineCount() int
	Len() int
	LineStartOffset(n int) int
}
