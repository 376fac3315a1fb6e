package scan

import "strings"

// headerMarker delimits a header mode line: the text strictly between
// two markers on one line is the mode-line content.
const headerMarker = "-*-"

// headerLines is how many leading lines may carry a header mode line.
const headerLines = 2

// Header returns the mode-line text found on the first two lines of
// src, in line order. Each examined line contributes at most one mode
// line; lines past the second are never examined. The markers are not
// anchored, so arbitrary text may surround them.
func Header(src Source) []string {
	var out []string

	limit := min(headerLines, src.LineCount())
	for n := 0; n < limit; n++ {
		if text, ok := headerText(src.LineText(n)); ok {
			out = append(out, text)
		}
	}
	return out
}

// headerText extracts the text strictly between the first two -*-
// markers on the line.
func headerText(line string) (string, bool) {
	open := strings.Index(line, headerMarker)
	if open < 0 {
		return "", false
	}
	rest := line[open+len(headerMarker):]

	end := strings.Index(rest, headerMarker)
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}
