package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/ustar/pkg/dbg"
	"github.com/matzehuels/ustar/pkg/render"
)

// DefaultMaxNodes bounds the diagram when Options.MaxNodes is zero.
const DefaultMaxNodes = 500

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds length and abundance to node labels.
	// When false, only the node id is shown.
	Detailed bool

	// MaxNodes keeps only the first MaxNodes unitigs (by id). Arcs leaving
	// the kept set are dropped. Zero means DefaultMaxNodes; negative means
	// no limit.
	MaxNodes int
}

func (o Options) limit(n int) int {
	switch {
	case o.MaxNodes < 0:
		return n
	case o.MaxNodes == 0:
		return min(n, DefaultMaxNodes)
	default:
		return min(n, o.MaxNodes)
	}
}

// ToDOT converts a de Bruijn graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Every arc becomes an edge labelled with its strands ("+/-"). Arcs leaving
// the reverse strand are dashed, and sink nodes are filled grey.
func ToDOT(g *dbg.Graph, opts Options) string {
	limit := opts.limit(g.NodeCount())

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	if limit < g.NodeCount() {
		fmt.Fprintf(&buf, "  // showing %d of %d nodes\n", limit, g.NodeCount())
	}
	buf.WriteString("\n")

	for id, n := range g.Nodes() {
		if id >= limit {
			break
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", id, strings.Join(fmtAttrs(n, fmtLabel(n, opts.Detailed)), ", "))
	}

	buf.WriteString("\n")
	for id, n := range g.Nodes() {
		if id >= limit {
			break
		}
		for _, a := range n.Arcs {
			if a.Successor >= limit {
				continue
			}
			attrs := []string{fmt.Sprintf("label=%q", strandLabel(a))}
			if !a.SourceForward {
				attrs = append(attrs, "style=dashed")
			}
			fmt.Fprintf(&buf, "  %d -> %d [%s];\n", id, a.Successor, strings.Join(attrs, ", "))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *dbg.Node, detailed bool) string {
	id := strconv.Itoa(n.ID)
	if !detailed {
		return id
	}
	return fmt.Sprintf("%s\nlen: %d\nab: %.1f (median %d)", id, n.Length, n.AverageAbundance, n.MedianAbundance)
}

func fmtAttrs(n *dbg.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.IsSink() {
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	return attrs
}

func strandLabel(a dbg.Arc) string {
	s := []byte("+/+")
	if !a.SourceForward {
		s[0] = '-'
	}
	if !a.TargetForward {
		s[2] = '-'
	}
	return string(s)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
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

// normalizeViewBox replaces Graphviz's point-based svg header with a plain
// pixel-sized one so browsers and rsvg-convert scale it the same way.
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

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
