// Package nodelink renders de Bruijn graphs as node-link diagrams.
//
// # Overview
//
// Each unitig becomes a box and each arc an arrow labelled with its source
// and target strands. Graphviz lays the diagram out left to right, which
// suits chains of unitigs.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Options
//
//   - Detailed: node labels include length and average/median abundance
//   - MaxNodes: only the first MaxNodes unitigs are drawn, since Graphviz
//     layout time grows quickly with graph size
//
// Arcs leaving a unitig's reverse strand are dashed and sink unitigs are
// filled grey.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
