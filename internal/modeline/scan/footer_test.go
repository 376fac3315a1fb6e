package scan

import (
	"reflect"
	"strings"
	"testing"
)

func TestFooter(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "line comment block",
			text: "code\n// Local Variables:\n// mode: makefile\n// End:\n",
			want: []string{"mode: makefile"},
		},
		{
			name: "block comment decoration",
			text: "code\n/* Local Variables: */\n/* mode: c */\n/* tab-width: 8 */\n/* End: */\n",
			want: []string{"mode: c", "tab-width: 8"},
		},
		{
			name: "no opening line yields nothing",
			text: "code\n// mode: makefile\n// End:\n",
			want: nil,
		},
		{
			name: "missing End: runs to the last line",
			text: "// Local Variables:\n// mode: makefile\n// fill-column: 72",
			want: []string{"mode: makefile", "fill-column: 72"},
		},
		{
			name: "keywords are case-insensitive",
			text: "# local variables:\n# mode: shell-script\n# End:\n",
			want: []string{"mode: shell-script"},
		},
		{
			name: "undecorated lines pass through",
			text: "// Local Variables:\nmode: makefile\n// End:\n",
			want: []string{"mode: makefile"},
		},
		{
			name: "last block wins",
			text: "// Local Variables:\n// mode: c\n// End:\nmore code\n// Local Variables:\n// mode: makefile\n// End:\n",
			want: []string{"mode: makefile"},
		},
		{
			name: "empty buffer",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Footer(newStubSource(tt.text))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Footer = %q, want %q", got, tt.want)
			}
		})
	}
}

// makeLines builds n lines of exactly 100 bytes each (including the
// newline) with the given replacements applied by line index.
func makeLines(n int, replace map[int]string) string {
	filler := strings.Repeat("x", 99)
	lines := make([]string, n)
	for i := range lines {
		if text, ok := replace[i]; ok {
			// Pad so every line stays 100 bytes and offsets stay exact.
			lines[i] = text + strings.Repeat("x", 99-len(text))
		} else {
			lines[i] = filler
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

func TestFooter_ScanRegionBound(t *testing.T) {
	// 40 lines of 100 bytes: a 4000-byte file. Only lines starting at
	// or after byte offset 1000 (line 10) are eligible.
	early := makeLines(40, map[int]string{
		2: "// Local Variables:",
		3: "// mode: makefile",
		4: "// End:",
	})
	src := newStubSource(early)
	if src.Len() != 4000 {
		t.Fatalf("fixture size = %d, want 4000", src.Len())
	}
	if got := Footer(src); got != nil {
		t.Errorf("block before the 3000-byte window was scanned: %q", got)
	}

	// The same block at the window boundary is eligible.
	late := makeLines(40, map[int]string{
		10: "// Local Variables:",
		11: "// mode: makefile",
		12: "// End:",
	})
	got := Footer(newStubSource(late))
	if len(got) != 1 || !strings.HasPrefix(got[0], "mode: makefile") {
		t.Errorf("block at the window boundary was not scanned: %q", got)
	}
}

func TestFooterStart_SmallFile(t *testing.T) {
	src := newStubSource("a\nb\nc")
	if got := footerStart(src); got != 0 {
		t.Errorf("footerStart = %d, want 0 for a file under the window", got)
	}
}
