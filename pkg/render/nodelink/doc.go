// Package nodelink renders the successor graph of a staircase layout as a
// node-link diagram.
//
// Each staircase becomes a Graphviz cluster whose nodes are its ranks, laid
// out left to right. Edges are the successor relation for the chosen move
// set; an optional path is drawn on top in a highlight colour, and node
// labels can carry the number of paths from that node to the terminal.
//
//	dot := nodelink.ToDOT(counts, nodelink.Options{ShowCounts: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Rendering uses [github.com/goccy/go-graphviz] in-process, so no Graphviz
// installation is needed for SVG.
package nodelink
