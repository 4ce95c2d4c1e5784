package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/ustar/pkg/cache"
	"github.com/matzehuels/ustar/pkg/dbg"
	"github.com/matzehuels/ustar/pkg/render/nodelink"
)

// RenderWithCacheInfo draws the input graph as a node-link diagram in the
// given format. The "dot" format returns the Graphviz source. It returns
// whether the artifact came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, opts Options, format string) ([]byte, bool, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, false, err
	}
	if err := r.prepare(&opts); err != nil {
		return nil, false, err
	}
	inputHash, err := hashInput(opts.Path)
	if err != nil {
		return nil, false, err
	}
	key := r.Keyer.ArtifactKey(inputHash, opts.ArtifactKeyOpts(format))

	if data, ok := r.lookupBytes(ctx, key, opts); ok {
		return data, true, nil // Cache hit
	}

	g, err := r.load(ctx, opts)
	if err != nil {
		return nil, false, err
	}
	data, err := Render(ctx, g, format, nodelink.Options{Detailed: opts.Detailed, MaxNodes: opts.MaxNodes})
	if err != nil {
		return nil, false, err
	}

	r.storeBytes(ctx, key, data, cache.TTLArtifact)
	return data, false, nil // Cache miss
}

// Render generates one output artifact from a graph.
func Render(ctx context.Context, g *dbg.Graph, format string, opts nodelink.Options) ([]byte, error) {
	dot := nodelink.ToDOT(g, opts)

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatDOT:
		data = []byte(dot)
	case FormatSVG:
		data, err = nodelink.RenderSVG(ctx, dot)
	case FormatPNG:
		data, err = nodelink.RenderPNG(ctx, dot, DefaultScale)
	case FormatPDF:
		data, err = nodelink.RenderPDF(ctx, dot)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return data, nil
}
