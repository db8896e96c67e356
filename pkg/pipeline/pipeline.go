// Package pipeline runs the load, build, count and select stages shared by
// the CLI and the HTTP API.
//
// # Stages
//
//  1. Load: read a layout file, or take a layout supplied by the caller
//  2. Build: validate the staircases, order the nodes and build the
//     successor table for the move set
//  3. Count: count walks from every node to the terminal
//  4. Select or Rank: unrank a 1-based rank into a walk, or rank a walk
//
// Totals and selected walks are cached under keys derived from the hash of
// the canonical layout, so a repeated query skips stages 2 and 3.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input: "layout.txt",
//	    Rank:  "1000",
//	})
//	fmt.Println(result.Total, result.Path)
package pipeline

import (
	"github.com/matzehuels/stairpath/pkg/errors"
	stairio "github.com/matzehuels/stairpath/pkg/io"
)

// Options configures a pipeline run. It is JSON-tagged so the HTTP API can
// decode it directly.
type Options struct {
	// Input is a layout file path. Ignored when Layout is set.
	Input string `json:"input,omitempty"`

	// Format forces the input format; empty means detect.
	Format stairio.Format `json:"format,omitempty"`

	// Layout is an already parsed layout.
	Layout *stairio.Layout `json:"-"`

	// Moves replaces the layout's move set when non-nil.
	Moves []uint `json:"moves,omitempty"`

	// Rank selects the walk at this 1-based decimal rank.
	Rank string `json:"rank,omitempty"`

	// Path ranks this walk, in the "S1:0-S1:1-..." form.
	Path string `json:"path,omitempty"`

	// Refresh ignores cached results and overwrites them.
	Refresh bool `json:"refresh,omitempty"`

	// Limits bounds the layout size. The zero value is unlimited.
	Limits Limits `json:"-"`

	validated bool
}

// ValidateAndSetDefaults checks the options. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Layout == nil && o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input or layout is required")
	}
	if o.Format != "" && !stairio.ValidFormats[o.Format] {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown input format %q", o.Format)
	}
	if o.Rank != "" && o.Path != "" {
		return errors.New(errors.ErrCodeInvalidInput, "rank and path are mutually exclusive")
	}
	if o.Rank != "" {
		if err := errors.ValidateRank(o.Rank); err != nil {
			return err
		}
	}
	for _, m := range o.Moves {
		if m == 0 {
			return errors.New(errors.ErrCodeInvalidInput, "move size must be positive")
		}
	}
	o.validated = true
	return nil
}

// Mode names the final stage an Options value asks for.
func (o *Options) Mode() string {
	switch {
	case o.Rank != "":
		return "select"
	case o.Path != "":
		return "rank"
	default:
		return "count"
	}
}

// Render formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// ValidFormats is the set of supported render formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
}

// ValidateFormat checks that a render format is supported.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid render format %q (must be one of: dot, svg, png, pdf)", format)
	}
	return nil
}
