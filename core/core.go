// Package core defines the pipeline stages for relcheck.
// Each stage of the pipeline is a clean, testable interface.
package core

// Checklist markers delimiting the relevant region of a release document.
// Anything outside the markers is ignored.
const (
	BeginMarker = "<!-- BEGIN_CHECKLIST -->"
	EndMarker   = "<!-- END_CHECKLIST -->"
)

// Checklist holds the three assembled release sections.
type Checklist struct {
	UI      string
	Backend string
	Doc     string
}

// Extractor pulls a marker-delimited section out of a release document.
type Extractor interface {
	Extract(path, startMarker, endMarker string) (string, error)
}

// Normalizer rewrites bullet and numbered list notations into a single
// checkbox notation. Each pass is pure and independent; the caller decides
// which passes apply to which document.
type Normalizer interface {
	Star(text string) string
	Dash(text string) string
	Num(text string) string
}

// Substituter replaces version placeholders with concrete release versions.
type Substituter interface {
	ReplaceV1(text, version string) string
	ReplaceV2(text, version string) string
}
