package dbg

import (
	errs "github.com/matzehuels/ustar/pkg/errors"
)

// Builder assembles a [Graph] one node at a time, in id order.
//
// Add enforces the per-node invariants (progressive ids, sequence length,
// one abundance per k-mer); aggregate statistics are folded as nodes arrive
// and finalized once by Build. The zero value is not usable; use NewBuilder.
type Builder struct {
	k     int
	nodes []Node
	acc   accumulator
}

// NewBuilder creates a builder for a graph with k-mer size k.
// sizeHint preallocates the node store and may be zero.
func NewBuilder(k, sizeHint int) *Builder {
	return &Builder{k: k, nodes: make([]Node, 0, max(sizeHint, 0))}
}

// Len returns the number of nodes added so far, which is also the id the
// next node must carry.
func (b *Builder) Len() int { return len(b.nodes) }

// K returns the builder's k-mer size.
func (b *Builder) K() int { return b.k }

// Add appends n to the node store.
//
// A zero Length is filled from the sequence. Add returns a STRUCTURAL error
// wrapping [ErrNonProgressiveID] if n.ID != Len(), and a CONSISTENCY error
// when the sequence is shorter than k, disagrees with Length, or when
// len(Abundances) != len(Sequence)-k+1 (wrapping [ErrAbundanceCount]).
func (b *Builder) Add(n Node) error {
	if n.ID != len(b.nodes) {
		return errs.Wrap(errs.ErrCodeStructural, ErrNonProgressiveID,
			"expected id %d, got %d", len(b.nodes), n.ID)
	}
	if n.Length == 0 {
		n.Length = len(n.Sequence)
	}
	if n.Length != len(n.Sequence) {
		return errs.New(errs.ErrCodeConsistency,
			"node %d: declared length %d, sequence length %d", n.ID, n.Length, len(n.Sequence))
	}
	if len(n.Sequence) < b.k {
		return errs.New(errs.ErrCodeConsistency,
			"node %d: sequence length %d is shorter than k=%d", n.ID, len(n.Sequence), b.k)
	}
	if want := len(n.Sequence) - b.k + 1; len(n.Abundances) != want {
		return errs.Wrap(errs.ErrCodeConsistency, ErrAbundanceCount,
			"node %d: sequence length %d, expected k-mers %d, actual abundances %d; make sure k=%d matches the input",
			n.ID, len(n.Sequence), want, len(n.Abundances), b.k)
	}

	b.nodes = append(b.nodes, n)
	b.acc.add(&b.nodes[len(b.nodes)-1])
	return nil
}

// Build finalizes statistics and returns the graph. The builder must not be
// used afterwards.
func (b *Builder) Build() *Graph {
	nodes := b.nodes[:len(b.nodes):len(b.nodes)]
	g := &Graph{
		k:     b.k,
		nodes: nodes,
		stats: b.acc.finalize(len(nodes)),
	}
	b.nodes = nil
	return g
}
