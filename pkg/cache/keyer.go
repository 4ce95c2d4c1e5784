package cache

import "fmt"

// Keyer derives cache keys from an input hash and result options.
type Keyer interface {
	// ReportKey identifies an analysis report (stats, overlaps, round trip).
	ReportKey(inputHash string, opts ReportKeyOpts) string
	// CoverKey identifies a path cover and its simplitigs.
	CoverKey(inputHash string, opts CoverKeyOpts) string
	// ArtifactKey identifies a rendered graph in one format.
	ArtifactKey(inputHash string, opts ArtifactKeyOpts) string
}

// ReportKeyOpts holds the options an analysis report depends on.
type ReportKeyOpts struct {
	KmerSize   int  `json:"k"`
	AllowEvenK bool `json:"even,omitempty"`
	RoundTrip  bool `json:"round_trip,omitempty"`
}

// CoverKeyOpts holds the options a path cover depends on.
type CoverKeyOpts struct {
	KmerSize   int    `json:"k"`
	AllowEvenK bool   `json:"even,omitempty"`
	Policy     string `json:"policy"`
}

// ArtifactKeyOpts holds the options a rendered artifact depends on.
type ArtifactKeyOpts struct {
	KmerSize int    `json:"k"`
	Format   string `json:"format"`
	MaxNodes int    `json:"max_nodes,omitempty"`
	Detailed bool   `json:"detailed,omitempty"`
}

// DefaultKeyer hashes options into keys of the form "kind:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ReportKey implements [Keyer].
func (DefaultKeyer) ReportKey(inputHash string, opts ReportKeyOpts) string {
	return hashKey("report", inputHash, opts)
}

// CoverKey implements [Keyer].
func (DefaultKeyer) CoverKey(inputHash string, opts CoverKeyOpts) string {
	return hashKey("cover", inputHash, opts)
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	return hashKey(fmt.Sprintf("artifact:%s", opts.Format), inputHash, opts)
}

var _ Keyer = DefaultKeyer{}
