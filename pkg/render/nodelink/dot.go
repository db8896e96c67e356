package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/stairpath/pkg/stair"
	"github.com/matzehuels/stairpath/pkg/stair/paths"
)

// Options configures diagram generation.
type Options struct {
	// Highlight is drawn over the successor edges. It may be nil.
	Highlight paths.Path

	// ShowCounts appends the per-node path count to each label.
	ShowCounts bool
}

const highlightColor = "#d9480f"

// ToDOT converts counted successors to Graphviz DOT source.
func ToDOT(c *paths.Counts, opts Options) string {
	table := c.Table()
	set := table.Set()

	onPath := make(map[stair.Node]bool, len(opts.Highlight))
	pathEdge := make(map[[2]stair.Node]bool, len(opts.Highlight))
	for i, n := range opts.Highlight {
		onPath[n] = true
		if i > 0 {
			pathEdge[[2]stair.Node{opts.Highlight[i-1], n}] = true
		}
	}

	byStair := make(map[stair.ID][]stair.Node, set.Len())
	for _, n := range set.Order() {
		byStair[n.Staircase] = append(byStair[n.Staircase], n)
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [color=\"#868e96\"];\n")

	for id := stair.ID(1); int(id) <= set.Len(); id++ {
		sc, _ := set.Staircase(id)
		fmt.Fprintf(&buf, "\n  subgraph \"cluster_S%d\" {\n", id)
		fmt.Fprintf(&buf, "    label=%q;\n", fmt.Sprintf("S%d  %d -> %d", id, sc.Begin, sc.End))
		for _, n := range byStair[id] {
			fmt.Fprintf(&buf, "    %q [%s];\n", n.String(), nodeAttrs(c, n, opts.ShowCounts, onPath[n]))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for _, from := range set.Order() {
		for _, to := range table.Successors(from) {
			if pathEdge[[2]stair.Node{from, to}] {
				fmt.Fprintf(&buf, "  %q -> %q [color=%q, penwidth=2.5];\n", from.String(), to.String(), highlightColor)
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q;\n", from.String(), to.String())
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(c *paths.Counts, n stair.Node, showCount, highlighted bool) string {
	label := n.String()
	if showCount {
		label += "\n" + c.Of(n).String()
	}
	attrs := fmt.Sprintf("label=%q", label)
	if highlighted {
		attrs += fmt.Sprintf(", color=%q, penwidth=2", highlightColor)
	}
	if c.Of(n).IsZero() {
		attrs += ", fillcolor=lightgrey, fontcolor=\"#495057\""
	}
	return attrs
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag to a zero-origin viewBox with
// matching pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
