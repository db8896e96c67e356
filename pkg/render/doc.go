// Package render turns a counted staircase layout into pictures.
//
// The [nodelink] subpackage emits Graphviz DOT for the successor graph and
// renders it to SVG in-process. [ToPDF] and [ToPNG] convert that SVG using
// the external rsvg-convert tool.
//
//	dot := nodelink.ToDOT(counts, nodelink.Options{Highlight: path})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := render.ToPNG(svg, 2.0)
//
// [nodelink]: github.com/matzehuels/stairpath/pkg/render/nodelink
package render
