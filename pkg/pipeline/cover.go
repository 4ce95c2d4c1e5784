package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/ustar/pkg/cache"
	"github.com/matzehuels/ustar/pkg/observability"
	"github.com/matzehuels/ustar/pkg/spss"
)

// CoverWithCacheInfo computes a path cover of the input graph with the
// policy named in opts and spells its simplitigs. It returns whether the
// result came from the cache.
func (r *Runner) CoverWithCacheInfo(ctx context.Context, opts Options) (*CoverResult, bool, error) {
	if err := r.prepare(&opts); err != nil {
		return nil, false, err
	}
	inputHash, err := hashInput(opts.Path)
	if err != nil {
		return nil, false, err
	}
	key := r.Keyer.CoverKey(inputHash, opts.CoverKeyOpts())

	var result CoverResult
	if r.lookup(ctx, key, opts, &result) {
		result.Cached = true
		return &result, true, nil
	}

	g, err := r.load(ctx, opts)
	if err != nil {
		return nil, false, err
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnCoverStart(ctx, opts.Policy, g.NodeCount())
	start := time.Now()
	paths, err := spss.Cover(g, Policies[opts.Policy]())
	hooks.OnCoverComplete(ctx, opts.Policy, len(paths), time.Since(start), err)
	if err != nil {
		return nil, false, fmt.Errorf("cover: %w", err)
	}

	tigs, err := spss.Extract(g, paths)
	if err != nil {
		return nil, false, fmt.Errorf("extract: %w", err)
	}
	var fasta, counts bytes.Buffer
	if err := spss.WriteFasta(&fasta, tigs); err != nil {
		return nil, false, err
	}
	if err := spss.WriteCounts(&counts, tigs); err != nil {
		return nil, false, err
	}

	result = CoverResult{
		Policy: opts.Policy,
		Paths:  len(paths),
		Kmers:  spss.KmerCount(tigs),
		Fasta:  fasta.Bytes(),
		Counts: counts.Bytes(),
	}
	r.Logger.Info("computed path cover",
		"policy", opts.Policy,
		"paths", result.Paths,
		"kmers", result.Kmers,
		"duration", time.Since(start))

	r.store(ctx, key, &result, cache.TTLCover)
	return &result, false, nil
}

// Cover is a convenience wrapper that calls CoverWithCacheInfo and discards the cache hit info.
func (r *Runner) Cover(ctx context.Context, opts Options) (*CoverResult, error) {
	result, _, err := r.CoverWithCacheInfo(ctx, opts)
	return result, err
}
