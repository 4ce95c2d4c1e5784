package dbg

import (
	"slices"
)

// Stats holds aggregate graph statistics.
type Stats struct {
	Kmers           int     `json:"kmers"`
	Nodes           int     `json:"nodes"`
	Arcs            int     `json:"arcs"`
	Isolated        int     `json:"isolated"`          // nodes without outgoing arcs
	AvgUnitigLength float64 `json:"avg_unitig_length"` // mean sequence length
	AvgAbundance    float64 `json:"avg_abundance"`     // per-k-mer mean, weighted over all nodes
}

// IsolatedRatio returns the fraction of nodes without outgoing arcs.
func (s Stats) IsolatedRatio() float64 {
	if s.Nodes == 0 {
		return 0
	}
	return float64(s.Isolated) / float64(s.Nodes)
}

// Density returns arcs over the maximum arc count. Each unitig has two
// extremities that can each reach four nucleotides, so a node carries at
// most 8 arcs.
func (s Stats) Density() float64 {
	if s.Nodes == 0 {
		return 0
	}
	return float64(s.Arcs) / float64(8*s.Nodes)
}

// accumulator is the fold state threaded through graph construction.
type accumulator struct {
	kmers     int
	arcs      int
	isolated  int
	sumLength int
	sumAbund  float64
}

func (a *accumulator) add(n *Node) {
	a.kmers += len(n.Abundances)
	a.arcs += len(n.Arcs)
	a.sumLength += n.Length
	a.sumAbund += n.AverageAbundance * float64(len(n.Abundances))
	if len(n.Arcs) == 0 {
		a.isolated++
	}
}

func (a accumulator) finalize(nodes int) Stats {
	s := Stats{
		Kmers:    a.kmers,
		Nodes:    nodes,
		Arcs:     a.arcs,
		Isolated: a.isolated,
	}
	if nodes > 0 {
		s.AvgUnitigLength = float64(a.sumLength) / float64(nodes)
	}
	if a.kmers > 0 {
		s.AvgAbundance = a.sumAbund / float64(a.kmers)
	}
	return s
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []uint32) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum uint64
	for _, v := range values {
		sum += uint64(v)
	}
	return float64(sum) / float64(len(values))
}

// Median returns the median of values, or 0 for an empty slice.
// For even counts it returns the lower of the two central values, so the
// result is always one of the inputs. values is not modified.
func Median(values []uint32) uint32 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return sorted[(len(sorted)-1)/2]
}
