package dbg

import "fmt"

// OverlapFailure describes an arc whose k-1 overlap does not match.
type OverlapFailure struct {
	Node   int    // Source node id
	Index  int    // Position of the arc in the source's arc list
	Arc    Arc    // The failing arc
	Source string // Overlap as seen from the source side
	Target string // Overlap as seen from the target side
}

func (f OverlapFailure) String() string {
	return fmt.Sprintf("node %d arc %d (L:%s:%d:%s): %q != %q",
		f.Node, f.Index, strand(f.Arc.SourceForward), f.Arc.Successor, strand(f.Arc.TargetForward),
		f.Source, f.Target)
}

// OverlapReport is the result of [Graph.VerifyOverlaps].
type OverlapReport struct {
	Checked int             // Arcs visited
	Failed  int             // Arcs whose overlaps differ
	First   *OverlapFailure // First failing arc in node/arc order, nil if none
}

// OK reports whether every arc overlaps correctly.
func (r OverlapReport) OK() bool { return r.Failed == 0 }

// VerifyOverlaps checks every arc of every node for a matching k-1 overlap.
//
// All arcs are visited even after a mismatch, so the report counts every
// failing arc while keeping only the first one. Mismatches are not errors;
// an error is returned only for an unknown nucleotide or a successor id
// outside the node store, both of which stop the scan.
func (g *Graph) VerifyOverlaps() (OverlapReport, error) {
	var r OverlapReport
	for id := range g.nodes {
		src := &g.nodes[id]
		for i, a := range src.Arcs {
			left, right, err := g.overlapStrings(src, a)
			if err != nil {
				return r, fmt.Errorf("node %d arc %d: %w", id, i, err)
			}
			r.Checked++
			if left != right {
				r.Failed++
				if r.First == nil {
					r.First = &OverlapFailure{Node: id, Index: i, Arc: a, Source: left, Target: right}
				}
			}
		}
	}
	return r, nil
}

// Overlaps reports whether arc a, leaving node id, joins two sequences whose
// k-1 overlaps are textually identical.
func (g *Graph) Overlaps(id int, a Arc) (bool, error) {
	src, err := g.Node(id)
	if err != nil {
		return false, err
	}
	left, right, err := g.overlapStrings(src, a)
	if err != nil {
		return false, err
	}
	return left == right, nil
}

// overlapStrings computes the overlap implied by a on both endpoints.
//
//	source forward:  last k-1 bases of the source
//	source reverse:  reverse complement of the first k-1 bases
//	target forward:  first k-1 bases of the target
//	target reverse:  reverse complement of the last k-1 bases
func (g *Graph) overlapStrings(src *Node, a Arc) (string, string, error) {
	dst, err := g.Node(a.Successor)
	if err != nil {
		return "", "", err
	}
	ov := g.k - 1

	var left, right string
	if a.SourceForward {
		left, err = Upper(src.Sequence[len(src.Sequence)-ov:])
	} else {
		left, err = ReverseComplement(src.Sequence[:ov])
	}
	if err != nil {
		return "", "", err
	}
	if a.TargetForward {
		right, err = Upper(dst.Sequence[:ov])
	} else {
		right, err = ReverseComplement(dst.Sequence[len(dst.Sequence)-ov:])
	}
	if err != nil {
		return "", "", err
	}
	return left, right, nil
}

func strand(forward bool) string {
	if forward {
		return "+"
	}
	return "-"
}
