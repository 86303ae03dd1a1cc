// Package extract implements the Extractor interface.
// It isolates the checklist region of a release document by slicing the
// file's text between two literal marker strings.
package extract

import (
	"fmt"
	"os"
	"strings"
)

// SectionExtractor returns the text between the first occurrences of a start
// and an end marker.
//
// The end marker is located by searching the whole file from the top, not
// from the end of the start marker. A document whose end marker precedes its
// start marker therefore yields an empty section rather than an error. This
// matches the long-standing behavior of the release tooling and is pinned by
// a test; fixing it would change output for malformed documents.
type SectionExtractor struct{}

// New creates a SectionExtractor.
func New() *SectionExtractor {
	return &SectionExtractor{}
}

// Extract reads the file at path and returns the text strictly between the
// first occurrence of startMarker and the first occurrence of endMarker.
// The markers themselves are excluded and surrounding whitespace is kept.
func (e *SectionExtractor) Extract(path, startMarker, endMarker string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	text := string(data)

	start := strings.Index(text, startMarker)
	if start == -1 {
		return "", fmt.Errorf("start marker %q not found", startMarker)
	}
	start += len(startMarker)

	end := strings.Index(text, endMarker)
	if end == -1 {
		return "", fmt.Errorf("end marker %q not found", endMarker)
	}
	if end < start {
		return "", nil
	}
	return text[start:end], nil
}
