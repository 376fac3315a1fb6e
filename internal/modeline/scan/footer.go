package scan

import (
	"regexp"
	"strings"
)

// footerWindow bounds how much of the file tail is eligible for the
// Local Variables scan. The 3000-byte figure is the origin convention
// and keeps the scan constant work on arbitrarily large files.
const footerWindow = 3000

// endMarker closes a Local Variables block. The line carrying it is not
// part of the block's content.
const endMarker = "End:"

// openPattern matches the opening line of a Local Variables block.
// Whatever surrounds the keywords is captured verbatim as the per-line
// comment decoration, e.g. "/* " and " */" in "/* Local Variables: */".
var openPattern = regexp.MustCompile(`^(.*?)(?i:local[ \t]+variables):(.*)$`)

// footerState drives the single backward pass that fixes the block
// boundaries.
type footerState int

const (
	// seekingEnd looks for the End: marker while also watching for the
	// opening line.
	seekingEnd footerState = iota

	// seekingOpen has fixed the closing boundary and only the opening
	// line remains to be found.
	seekingOpen

	// blockFound terminates the pass with both boundaries fixed.
	blockFound
)

// block describes the boundaries and per-line decoration of a Local
// Variables block. It is derived per scan and never stored.
type block struct {
	open   int
	close  int
	prefix string
	suffix string
}

// Footer returns the raw directive lines of the Local Variables block
// in the tail of src, in file order, with the per-line comment
// decoration stripped. A tail without an opening line yields nil.
func Footer(src Source) []string {
	blk, ok := findBlock(src)
	if !ok {
		return nil
	}

	var out []string
	for n := blk.open + 1; n <= blk.close; n++ {
		out = append(out, stripDecoration(src.LineText(n), blk.prefix, blk.suffix))
	}
	return out
}

// findBlock runs the backward pass over the eligible tail. The scan
// stops at the first opening line it encounters, which is the last such
// line in the file, so a stale earlier block never wins.
func findBlock(src Source) (block, bool) {
	last := src.LineCount() - 1
	if last < 0 {
		return block{}, false
	}

	blk := block{close: last}
	state := seekingEnd
	start := footerStart(src)

	for n := last; n >= start; n-- {
		line := src.LineText(n)

		if m := openPattern.FindStringSubmatch(line); m != nil {
			blk.open = n
			blk.prefix = m[1]
			blk.suffix = m[2]
			state = blockFound
			break
		}

		if state == seekingEnd && strings.Contains(line, endMarker) {
			blk.close = n - 1
			state = seekingOpen
		}
	}

	return blk, state == blockFound
}

// footerStart converts the byte bound into the first eligible line:
// the earliest line starting within the final footerWindow bytes.
func footerStart(src Source) int {
	limit := src.Len() - footerWindow
	if limit <= 0 {
		return 0
	}

	start := src.LineCount() - 1
	for start > 0 && src.LineStartOffset(start-1) >= limit {
		start--
	}
	return start
}

// stripDecoration removes the literal prefix and suffix captured from
// the opening line. A line missing either is passed through untouched
// on that side; decoration is advisory, not mandatory.
func stripDecoration(line, prefix, suffix string) string {
	line = strings.TrimPrefix(line, prefix)
	line = strings.TrimSuffix(line, suffix)
	return line
}
