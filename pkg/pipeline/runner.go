package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/ustar/pkg/bcalm"
	"github.com/matzehuels/ustar/pkg/cache"
	"github.com/matzehuels/ustar/pkg/dbg"
	errs "github.com/matzehuels/ustar/pkg/errors"
	"github.com/matzehuels/ustar/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Load parses the input file into a graph. Loading is never cached.
func (r *Runner) Load(ctx context.Context, opts Options) (*dbg.Graph, error) {
	if err := r.prepare(&opts); err != nil {
		return nil, err
	}
	return r.load(ctx, opts)
}

func (r *Runner) load(ctx context.Context, opts Options) (*dbg.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, opts.Path)

	start := time.Now()
	g, err := bcalm.ImportFile(opts.Path, opts.BcalmOptions())
	elapsed := time.Since(start)
	nodes := 0
	if g != nil {
		nodes = g.NodeCount()
	}
	hooks.OnLoadComplete(ctx, opts.Path, nodes, elapsed, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Info("loaded unitigs",
		"path", opts.Path,
		"nodes", g.NodeCount(),
		"arcs", g.ArcCount(),
		"duration", elapsed)
	return g, nil
}

// AnalyzeWithCacheInfo loads the input, verifies every arc overlap and,
// if requested, checks that the canonical output reproduces the input.
// It returns whether the report came from the cache.
func (r *Runner) AnalyzeWithCacheInfo(ctx context.Context, opts Options) (*Report, bool, error) {
	if err := r.prepare(&opts); err != nil {
		return nil, false, err
	}
	inputHash, err := hashInput(opts.Path)
	if err != nil {
		return nil, false, err
	}
	key := r.Keyer.ReportKey(inputHash, opts.ReportKeyOpts())

	var report Report
	if r.lookup(ctx, key, opts, &report) {
		report.Cached = true
		return &report, true, nil
	}

	loadStart := time.Now()
	g, err := r.load(ctx, opts)
	if err != nil {
		return nil, false, err
	}
	report = Report{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Path:      opts.Path,
		InputHash: inputHash,
		KmerSize:  g.K(),
		Stats:     g.Stats(),
		LoadTime:  time.Since(loadStart),
	}

	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	hooks := observability.Pipeline()
	hooks.OnVerifyStart(ctx, g.ArcCount())
	verifyStart := time.Now()
	report.Overlaps, err = g.VerifyOverlaps()
	report.VerifyTime = time.Since(verifyStart)
	hooks.OnVerifyComplete(ctx, report.Overlaps.Checked, report.Overlaps.Failed, report.VerifyTime, err)
	if err != nil {
		return nil, false, fmt.Errorf("verify overlaps: %w", err)
	}
	r.Logger.Info("verified overlaps",
		"checked", report.Overlaps.Checked,
		"failed", report.Overlaps.Failed,
		"duration", report.VerifyTime)

	if opts.RoundTrip {
		if report.RoundTrip, err = roundTrip(g, opts.Path); err != nil {
			return nil, false, err
		}
		report.RoundTripChecked = true
		r.Logger.Debug("round trip", "identical", report.RoundTrip == nil)
	}

	r.store(ctx, key, &report, cache.TTLReport)
	return &report, false, nil
}

// Analyze is a convenience wrapper that calls AnalyzeWithCacheInfo and discards the cache hit info.
func (r *Runner) Analyze(ctx context.Context, opts Options) (*Report, error) {
	report, _, err := r.AnalyzeWithCacheInfo(ctx, opts)
	return report, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// prepare validates opts and sets the runner's logger if none is given.
func (r *Runner) prepare(opts *Options) error {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

// lookup decodes the cached value for key into v. Undecodable entries are
// treated as misses and recomputed.
func (r *Runner) lookup(ctx context.Context, key string, opts Options, v any) bool {
	data, ok := r.lookupBytes(ctx, key, opts)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		r.Logger.Debug("discarding cache entry", "key", key, "error", err)
		return false
	}
	return true
}

// lookupBytes returns the cached bytes for key unless opts.Refresh is set.
func (r *Runner) lookupBytes(ctx context.Context, key string, opts Options) ([]byte, bool) {
	hooks := observability.Cache()
	if opts.Refresh {
		hooks.OnCacheMiss(ctx, key)
		return nil, false
	}
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		hooks.OnCacheMiss(ctx, key)
		return nil, false
	}
	hooks.OnCacheHit(ctx, key)
	return data, true
}

// store caches v under key. Failures are logged, never returned: a result
// that could not be cached is still a result.
func (r *Runner) store(ctx context.Context, key string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		r.Logger.Debug("cache encode failed", "key", key, "error", err)
		return
	}
	r.storeBytes(ctx, key, data, ttl)
}

func (r *Runner) storeBytes(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Debug("cache write failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, key, len(data))
}

func hashInput(path string) (string, error) {
	h, err := cache.HashFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
		}
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return h, nil
}

func roundTrip(g *dbg.Graph, path string) (*bcalm.Mismatch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	defer f.Close()
	m, err := bcalm.RoundTrip(g, f)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}
	return m, nil
}
