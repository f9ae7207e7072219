// Package report renders search results for people.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/tanema/rematch/src/pattern"
)

// NoMatch is written when a search found nothing.
const NoMatch = "no match"

// Format renders spans as a single line. withSpans shows start-end pairs
// instead of start offsets.
func Format(spans []pattern.Span, withSpans bool) string {
	if len(spans) == 0 {
		return NoMatch
	}
	parts := make([]string, len(spans))
	for i, span := range spans {
		if withSpans {
			parts[i] = span.String()
		} else {
			parts[i] = fmt.Sprint(span.Start)
		}
	}
	if withSpans {
		return "match at spans " + strings.Join(parts, ", ")
	}
	return "match at offsets " + strings.Join(parts, ", ")
}

// Write writes Format as a line to w.
func Write(w io.Writer, spans []pattern.Span, withSpans bool) error {
	_, err := fmt.Fprintln(w, Format(spans, withSpans))
	return err
}
