package apply

import (
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// eolSuffixes are the Emacs platform suffixes of a coding system name.
// They encode the end-of-line convention, not the character set.
var eolSuffixes = []string{"-unix", "-dos", "-mac"}

// normalizeCoding maps an Emacs coding system name onto the canonical
// IANA charset name where one exists. Unknown names pass through
// lowercased; the host decides what to do with them.
func normalizeCoding(value string) string {
	name := strings.ToLower(value)
	for _, suffix := range eolSuffixes {
		if strings.HasSuffix(name, suffix) {
			name = strings.TrimSuffix(name, suffix)
			break
		}
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return name
	}
	canonical, err := ianaindex.IANA.Name(enc)
	if err != nil {
		return name
	}
	return strings.ToLower(canonical)
}
