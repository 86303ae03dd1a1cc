// Package normalize implements the Normalizer interface.
// It rewrites the bullet and numbered list notations found in release
// documents into a single GitHub checkbox notation.
package normalize

import "regexp"

// Each pattern anchors on the newline preceding the item, so a pass never
// fires mid-line (and never on the first line of a buffer, which in practice
// always starts right after a checklist marker).
var (
	reStar = regexp.MustCompile(`(\n\s*)(\*)(\s)`)
	reDash = regexp.MustCompile(`(\n\s*)(-)`)
	reNum  = regexp.MustCompile(`(\n\s*)([0-9]*\.)(\s)`)
)

// ListNormalizer converts list markup into checkbox lists. The three passes
// are independent because each release document historically used its own
// list convention; the orchestrator picks which passes apply where.
type ListNormalizer struct{}

// New creates a ListNormalizer.
func New() *ListNormalizer {
	return &ListNormalizer{}
}

// Star inserts a checkbox after star bullets: `* item` becomes `* [ ] item`.
func (n *ListNormalizer) Star(text string) string {
	return reStar.ReplaceAllString(text, "${1}${2} [ ]${3}")
}

// Dash rewrites dash bullets as checkbox star bullets: `- item` becomes
// `* [ ] item`.
func (n *ListNormalizer) Dash(text string) string {
	return reDash.ReplaceAllString(text, "${1}* [ ]")
}

// Num rewrites numbered items as checkbox star bullets, discarding the
// number: `3. item` becomes `* [ ] item`. A bare `.` with no digits counts
// as an (empty) number and matches as well.
func (n *ListNormalizer) Num(text string) string {
	return reNum.ReplaceAllString(text, "${1}* [ ]${3}")
}
