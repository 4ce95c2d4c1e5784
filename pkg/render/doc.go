// Package render provides visualization rendering for de Bruijn graphs.
//
// # Overview
//
// Rendering happens in two steps. The [nodelink] subpackage turns a graph
// into Graphviz DOT source and lays it out as SVG in-process. This package
// converts that SVG to other formats:
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [ToPDF] and [ToPNG] shell out to rsvg-convert from librsvg:
// brew install librsvg (macOS), apt install librsvg2-bin (Linux).
//
// [nodelink]: github.com/matzehuels/ustar/pkg/render/nodelink
package render
