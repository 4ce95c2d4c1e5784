// Package dbg provides an immutable de Bruijn graph of unitigs together with
// the integrity check and walk primitives used to build spectrum-preserving
// string sets.
//
// # Overview
//
// A node is a unitig: a maximal non-branching sequence carrying one abundance
// per k-mer. An arc joins an extremity of one unitig to an extremity of
// another, and its two strand flags say which ends are joined:
//
//	L:+:7:+   forward end of this node -> forward start of node 7
//	L:-:7:+   reverse-complement end   -> forward start of node 7
//
// The fundamental contract is that the k-1 bases implied on both sides of an
// arc are identical. Construction trusts the input; [Graph.VerifyOverlaps] is
// a separate, optional pass.
//
// # Construction
//
// Nodes are appended in id order through a [Builder]:
//
//	b := dbg.NewBuilder(31, 0)
//	err := b.Add(dbg.Node{ID: 0, Sequence: seq, Abundances: ab})
//	g := b.Build()
//
// Add rejects non-progressive ids and nodes whose abundance count differs from
// len(Sequence)-k+1. Aggregate [Stats] are folded during Add and finalized by
// Build. Arcs may reference nodes added later; successor ids are checked only
// when an arc is followed, which yields [ErrNodeOutOfRange].
//
// Parsing BCALM2-style files into a Builder lives in the bcalm package.
//
// # Walks
//
// A [Path] is a list of [Step] values (node id + strand). [Graph.Spell]
// stitches a walk into a contig, [Graph.Counts] returns the matching abundance
// sequence, and [Graph.CheckPath] confirms each step follows an arc. A path
// cover policy discovers candidate steps with [Graph.ConsistentSuccessors],
// passing a [Mask] of nodes it has already used.
//
// # Errors
//
// Failures are coded errors from the errors package (STRUCTURAL, CONSISTENCY,
// ALPHABET, OUT_OF_RANGE, INVALID_INPUT) wrapping the sentinel errors of this
// package, so both errors.Is(err, dbg.ErrNodeOutOfRange) and a code check
// work. Overlap and path checks report mismatches as results, not errors.
//
// # Concurrency
//
// A built Graph is never mutated and is safe for concurrent reads. Builder is
// not safe for concurrent use.
package dbg
