package dbg

import (
	"errors"
	"iter"

	errs "github.com/matzehuels/ustar/pkg/errors"
)

var (
	// ErrNodeOutOfRange is returned when a lookup or traversal references a
	// node id outside the node store. Arc successors are not checked at
	// construction time, so this can also surface when an arc is followed.
	ErrNodeOutOfRange = errors.New("node id out of range")

	// ErrNonProgressiveID is returned by [Builder.Add] when a node's id does
	// not equal the number of nodes added so far.
	ErrNonProgressiveID = errors.New("node ids must be progressive")

	// ErrAbundanceCount is returned by [Builder.Add] when a node does not
	// carry exactly one abundance per k-mer.
	ErrAbundanceCount = errors.New("wrong number of abundances")

	// ErrUnknownNucleotide is returned by [ReverseComplement] for characters
	// outside {A,C,G,T} (case-insensitive). Ambiguity codes are rejected.
	ErrUnknownNucleotide = errors.New("unknown nucleotide")

	// ErrEmptyPath is returned by [Graph.Spell] for a walk with no steps.
	ErrEmptyPath = errors.New("empty path")

	// ErrPathLengthMismatch is returned when node and orientation lists of a
	// walk have different lengths.
	ErrPathLengthMismatch = errors.New("inconsistent path")
)

// Arc is a directed, oriented edge from its owning node to a successor.
// The successor is an index into the graph's node store; arcs never own nodes.
type Arc struct {
	Successor     int  // Target node id
	SourceForward bool // true: leaves the source's forward (3') end
	TargetForward bool // true: enters the target's forward (5') end
}

// Node is one unitig of the graph.
//
// After construction Length == len(Sequence) and
// len(Abundances) == len(Sequence) - k + 1 hold for every node.
type Node struct {
	ID               int      // Position in the node store
	Sequence         string   // Unitig over {A,C,G,T}, case preserved
	Length           int      // len(Sequence)
	Abundances       []uint32 // One count per k-mer, in forward order
	AverageAbundance float64  // Mean of Abundances, or the record's average
	MedianAbundance  uint32   // Lower-middle median, or the truncated average
	Arcs             []Arc    // Outgoing arcs in source order
}

// KmerCount returns the number of k-mers in the node.
func (n *Node) KmerCount() int { return len(n.Abundances) }

// IsSink reports whether the node has no outgoing arcs.
func (n *Node) IsSink() bool { return len(n.Arcs) == 0 }

// Graph is an immutable de Bruijn graph of unitigs.
//
// All nodes live in one slice indexed by id, and arcs reference successors by
// index, so cyclic graphs carry no ownership cycles. Use [Builder] to create
// a Graph. A Graph is safe for concurrent reads.
type Graph struct {
	k     int
	nodes []Node
	stats Stats
}

// K returns the k-mer size the graph was built with.
func (g *Graph) K() int { return g.k }

// NodeCount returns the number of nodes (unitigs).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// KmerCount returns the total number of k-mers over all nodes.
func (g *Graph) KmerCount() int { return g.stats.Kmers }

// ArcCount returns the total number of arcs over all nodes.
func (g *Graph) ArcCount() int { return g.stats.Arcs }

// Stats returns the aggregate statistics computed at construction.
func (g *Graph) Stats() Stats { return g.stats }

// Node returns the node with the given id. The returned node is owned by the
// graph and must not be modified.
//
// Returns an OUT_OF_RANGE error wrapping [ErrNodeOutOfRange] if id is not a
// valid index.
func (g *Graph) Node(id int) (*Node, error) {
	if id < 0 || id >= len(g.nodes) {
		return nil, errs.Wrap(errs.ErrCodeOutOfRange, ErrNodeOutOfRange,
			"node %d (graph has %d nodes)", id, len(g.nodes))
	}
	return &g.nodes[id], nil
}

// Nodes iterates over the node store in id order. The yielded nodes must not
// be modified.
func (g *Graph) Nodes() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		for i := range g.nodes {
			if !yield(i, &g.nodes[i]) {
				return
			}
		}
	}
}
