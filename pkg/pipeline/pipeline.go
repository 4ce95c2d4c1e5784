// Package pipeline provides the analysis pipeline behind the ustar CLI.
//
// This package implements the load → analyze → cover/render stages over a
// unitig file. Every stage except loading is cached: results depend only on
// the input bytes and a few options, so they are stored under a content hash
// of the input file.
//
// # Stages
//
//  1. Load: parse the unitig file into a [dbg.Graph]
//  2. Analyze: aggregate statistics, overlap verification and, optionally,
//     a round-trip comparison against the input, collected in a [Report]
//  3. Cover: compute a path cover and spell the simplitigs with their counts
//  4. Render: draw the graph as a node-link diagram
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{Path: "reads.unitigs.fa", KmerSize: 31}
//	report, err := runner.Analyze(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Stats.Nodes, report.Overlaps.OK())
package pipeline

import (
	"io"
	"maps"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ustar/pkg/bcalm"
	"github.com/matzehuels/ustar/pkg/cache"
	"github.com/matzehuels/ustar/pkg/dbg"
	errs "github.com/matzehuels/ustar/pkg/errors"
	"github.com/matzehuels/ustar/pkg/spss"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultKmerSize is the k BCALM2 uses by default.
	DefaultKmerSize = 31

	// DefaultPolicy is the path cover policy used when none is given.
	DefaultPolicy = "first"

	// DefaultScale is the PNG resolution multiplier.
	DefaultScale = 2.0
)

// Format constants for rendered outputs.
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

// Policies maps policy names to constructors. Each cover gets a fresh
// policy, since seeders may keep state.
var Policies = map[string]func() spss.Policy{
	DefaultPolicy: spss.DefaultPolicy,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	// Input
	Path       string `json:"path"`
	KmerSize   int    `json:"k"`
	MaxLineLen int    `json:"max_line_len,omitempty"`
	AllowEvenK bool   `json:"allow_even_k,omitempty"`

	// Analysis
	RoundTrip bool `json:"round_trip,omitempty"`

	// Cover
	Policy string `json:"policy,omitempty"`

	// Render
	MaxNodes int  `json:"max_nodes,omitempty"`
	Detailed bool `json:"detailed,omitempty"`

	// Refresh skips cache lookups; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if err := errs.ValidatePath(o.Path); err != nil {
		return err
	}
	if o.KmerSize == 0 {
		o.KmerSize = DefaultKmerSize
	}
	if o.MaxLineLen == 0 {
		o.MaxLineLen = bcalm.DefaultMaxLineLen
	}
	if o.Policy == "" {
		o.Policy = DefaultPolicy
	}
	if err := ValidatePolicy(o.Policy); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return o.BcalmOptions().Validate()
}

// BcalmOptions returns the parser options.
func (o *Options) BcalmOptions() bcalm.Options {
	return bcalm.Options{KmerSize: o.KmerSize, MaxLineLen: o.MaxLineLen, AllowEvenK: o.AllowEvenK}
}

// ReportKeyOpts returns cache key options for analysis reports.
func (o *Options) ReportKeyOpts() cache.ReportKeyOpts {
	return cache.ReportKeyOpts{KmerSize: o.KmerSize, AllowEvenK: o.AllowEvenK, RoundTrip: o.RoundTrip}
}

// CoverKeyOpts returns cache key options for path covers.
func (o *Options) CoverKeyOpts() cache.CoverKeyOpts {
	return cache.CoverKeyOpts{KmerSize: o.KmerSize, AllowEvenK: o.AllowEvenK, Policy: o.Policy}
}

// ArtifactKeyOpts returns cache key options for a rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{KmerSize: o.KmerSize, Format: format, MaxNodes: o.MaxNodes, Detailed: o.Detailed}
}

// ValidatePolicy checks that a policy name is registered.
func ValidatePolicy(name string) error {
	if _, ok := Policies[name]; !ok {
		return errs.New(errs.ErrCodeInvalidInput, "unknown policy %q (available: %v)", name, slices.Sorted(maps.Keys(Policies)))
	}
	return nil
}

// ValidateFormat checks that a render format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidInput, "invalid format: %q (must be one of: dot, svg, png, pdf)", format)
	}
	return nil
}

// =============================================================================
// Results
// =============================================================================

// Report is the result of the analysis stage.
type Report struct {
	// RunID identifies the run that computed the report. Cached reports
	// keep the id of the run that stored them.
	RunID     string    `json:"run_id"`
	CreatedAt time.Time `json:"created_at"`
	Path      string    `json:"path"`
	InputHash string    `json:"input_hash"`
	KmerSize  int       `json:"k"`

	Stats    dbg.Stats         `json:"stats"`
	Overlaps dbg.OverlapReport `json:"overlaps"`

	// RoundTripChecked is set when the round trip ran; RoundTrip is its
	// first mismatch, nil when the canonical output reproduces the input.
	RoundTripChecked bool            `json:"round_trip_checked"`
	RoundTrip        *bcalm.Mismatch `json:"round_trip,omitempty"`

	LoadTime   time.Duration `json:"load_time"`
	VerifyTime time.Duration `json:"verify_time"`

	// Cached is set on reports served from the cache.
	Cached bool `json:"-"`
}

// OK reports whether every check in the report passed.
func (r *Report) OK() bool {
	return r.Overlaps.OK() && r.RoundTrip == nil
}

// CoverResult is the result of the cover stage.
type CoverResult struct {
	Policy string `json:"policy"`
	Paths  int    `json:"paths"`
	Kmers  int    `json:"kmers"`
	Fasta  []byte `json:"fasta"`
	Counts []byte `json:"counts"`

	// Cached is set on results served from the cache.
	Cached bool `json:"-"`
}
