// Package tasktext encodes tasks into their single-line display form and
// decodes the pieces back out of it. The format is fixed punctuation with no
// escaping, so titles or descriptions containing "(", ")" or "-" can confuse
// decoding; callers get a best-effort answer rather than an error.
package tasktext

import (
	"fmt"
	"strings"
)

// Marker prefixes a task's display line. Older exports used different
// markers, which Title still understands.
const Marker = "📌"

var legacyMarkers = []string{"⏰", "📍", "•"}

// Encode renders the canonical display line "📌 {title} ({start}-{end}): {description}".
func Encode(title, start, end, description string) string {
	return fmt.Sprintf("%s %s (%s-%s): %s", Marker, title, start, end, description)
}

// Title extracts the human title from an encoded line. It never fails: when
// no marker is recognized the input is returned unchanged.
func Title(text string) string {
	for _, marker := range append([]string{Marker}, legacyMarkers...) {
		idx := strings.Index(text, marker)
		if idx < 0 {
			continue
		}
		rest := text[idx+len(marker):]
		if open := strings.Index(rest, "("); open >= 0 {
			rest = rest[:open]
		}
		return strings.TrimSpace(rest)
	}
	return text
}

// TimeRange slices the "(start-end)" section out of an encoded line. The
// third return is false when any of the three delimiters is missing.
func TimeRange(text string) (start, end string, ok bool) {
	open := strings.Index(text, "(")
	if open < 0 {
		return "", "", false
	}
	rest := text[open+1:]
	dash := strings.Index(rest, "-")
	if dash < 0 {
		return "", "", false
	}
	closing := strings.Index(rest[dash+1:], ")")
	if closing < 0 {
		return "", "", false
	}
	start = strings.TrimSpace(rest[:dash])
	end = strings.TrimSpace(rest[dash+1 : dash+1+closing])
	return start, end, true
}
