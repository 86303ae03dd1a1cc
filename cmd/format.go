// Package cmd — format pipeline.
// The root command orchestrates the pipeline:
// extract sections → normalize lists → substitute versions → print.
//
// All three sections are extracted and normalized before anything is
// printed, so a failed extraction never produces partial output.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/SoumyaRaikwar/relcheck/core"
	"github.com/SoumyaRaikwar/relcheck/core/extract"
	"github.com/SoumyaRaikwar/relcheck/core/normalize"
	"github.com/SoumyaRaikwar/relcheck/core/version"
	"github.com/spf13/cobra"
)

// Fixed locations of the backend and UI release documents, relative to the
// working directory. Only the documentation path is caller-supplied.
const (
	backendReleaseFile = "RELEASE.md"
	uiReleaseFile      = "jaeger-ui/RELEASE.md"
)

func runFormat(cmd *cobra.Command, args []string) error {
	docPath := args[0]

	var v1, v2 string
	if len(args) > 1 {
		v1 = strings.TrimSpace(args[1])
	}
	if len(args) > 2 {
		v2 = strings.TrimSpace(args[2])
	}

	checklist, err := buildChecklist(docPath, v1, v2, extract.New(), normalize.New(), version.New())
	if err != nil {
		return err
	}

	printChecklist(cmd.OutOrStdout(), checklist)
	return nil
}

// buildChecklist extracts and normalizes all three sections, then applies
// version substitution. The pass selection per section is fixed: it encodes
// which document historically used which list convention.
func buildChecklist(
	docPath, v1, v2 string,
	extractor core.Extractor,
	normalizer core.Normalizer,
	substituter core.Substituter,
) (core.Checklist, error) {
	backend, err := extractor.Extract(backendReleaseFile, core.BeginMarker, core.EndMarker)
	if err != nil {
		return core.Checklist{}, fmt.Errorf("failed to extract backend section: %w", err)
	}
	backend = normalizer.Star(backend)
	backend = normalizer.Num(backend)

	doc, err := extractor.Extract(docPath, core.BeginMarker, core.EndMarker)
	if err != nil {
		return core.Checklist{}, fmt.Errorf("failed to extract documentation section: %w", err)
	}
	doc = normalizer.Dash(doc)

	ui, err := extractor.Extract(uiReleaseFile, core.BeginMarker, core.EndMarker)
	if err != nil {
		return core.Checklist{}, fmt.Errorf("failed to extract UI section: %w", err)
	}
	ui = normalizer.Dash(ui)
	ui = normalizer.Num(ui)

	// v2 substitution always runs; an empty v2 deletes the placeholders.
	ui = substituter.ReplaceV2(ui, v2)
	backend = substituter.ReplaceV2(backend, v2)
	doc = substituter.ReplaceV2(doc, v2)

	// TODO: Remove v1 substitution after the final v1 release (early 2026).
	if v1 != "" {
		ui = substituter.ReplaceV1(ui, v1)
		backend = substituter.ReplaceV1(backend, v1)
		doc = substituter.ReplaceV1(doc, v1)
	} else {
		ui = version.DeprecationNote + ui
		backend = version.DeprecationNote + backend
		doc = version.DeprecationNote + doc
	}

	return core.Checklist{UI: ui, Backend: backend, Doc: doc}, nil
}

// printChecklist writes the three labeled sections in the fixed order.
func printChecklist(w io.Writer, c core.Checklist) {
	fmt.Fprintln(w, "# UI Release")
	fmt.Fprintln(w, c.UI)
	fmt.Fprintln(w, "# Backend Release")
	fmt.Fprintln(w, c.Backend)
	fmt.Fprintln(w, "# Doc Release")
	fmt.Fprintln(w, c.Doc)
}
