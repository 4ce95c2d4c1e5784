package dbg

import (
	"strconv"
	"strings"

	errs "github.com/matzehuels/ustar/pkg/errors"
)

// Step is one node of a walk together with the strand it is read on.
type Step struct {
	Node    int
	Forward bool
}

func (s Step) String() string { return strconv.Itoa(s.Node) + strand(s.Forward) }

// Path is an ordered walk through the graph.
type Path []Step

// String formats the walk as comma-separated steps, e.g. "3+,5-,7+".
// [ParsePath] accepts the same form.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

// NewPath zips node ids with their orientations. It returns an INVALID_INPUT
// error wrapping [ErrPathLengthMismatch] if the lists differ in length.
func NewPath(nodes []int, forwards []bool) (Path, error) {
	if len(nodes) != len(forwards) {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, ErrPathLengthMismatch,
			"%d nodes, %d orientations", len(nodes), len(forwards))
	}
	p := make(Path, len(nodes))
	for i := range nodes {
		p[i] = Step{Node: nodes[i], Forward: forwards[i]}
	}
	return p, nil
}

// ParsePath parses a walk written as "3+,5-,7+". A step without a sign is
// read forward.
func ParsePath(s string) (Path, error) {
	var p Path
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		forward := true
		switch tok[len(tok)-1] {
		case '+':
			tok = tok[:len(tok)-1]
		case '-':
			forward = false
			tok = tok[:len(tok)-1]
		}
		id, err := strconv.Atoi(tok)
		if err != nil || id < 0 {
			return nil, errs.New(errs.ErrCodeInvalidInput, "invalid path step %q", tok)
		}
		p = append(p, Step{Node: id, Forward: forward})
	}
	return p, nil
}

// Mask marks nodes a traversal must skip. The graph only reads it; the caller
// owns and updates it.
type Mask interface {
	Excluded(id int) bool
}

// BoolMask is a [Mask] backed by one flag per node id. Ids beyond its length
// are not excluded.
type BoolMask []bool

// NewBoolMask returns a mask with every node included.
func NewBoolMask(n int) BoolMask { return make(BoolMask, n) }

// Excluded reports whether id is marked.
func (m BoolMask) Excluded(id int) bool { return id >= 0 && id < len(m) && m[id] }

// Set marks id as excluded.
func (m BoolMask) Set(id int) { m[id] = true }

// Spell stitches the walk into one sequence: the first node (or its reverse
// complement) seeds the contig, and every later node contributes only the
// bases after its first k-1.
//
// An empty walk is an INVALID_INPUT error wrapping [ErrEmptyPath].
func (g *Graph) Spell(p Path) (string, error) {
	if len(p) == 0 {
		return "", errs.Wrap(errs.ErrCodeInvalidInput, ErrEmptyPath, "cannot spell")
	}
	var b strings.Builder
	for i, s := range p {
		n, err := g.Node(s.Node)
		if err != nil {
			return "", err
		}
		seq, err := oriented(n.Sequence, s.Forward)
		if err != nil {
			return "", err
		}
		if i > 0 {
			seq = seq[g.k-1:]
		}
		b.WriteString(seq)
	}
	return b.String(), nil
}

// SpellNodes is [Graph.Spell] over parallel node and orientation lists.
func (g *Graph) SpellNodes(nodes []int, forwards []bool) (string, error) {
	p, err := NewPath(nodes, forwards)
	if err != nil {
		return "", err
	}
	return g.Spell(p)
}

// Counts returns the abundances along the walk: each node's abundances in
// order when read forward, reversed when read backward. Values are never
// transformed, only reordered.
func (g *Graph) Counts(p Path) ([]uint32, error) {
	var counts []uint32
	for _, s := range p {
		n, err := g.Node(s.Node)
		if err != nil {
			return nil, err
		}
		if s.Forward {
			counts = append(counts, n.Abundances...)
			continue
		}
		for i := len(n.Abundances) - 1; i >= 0; i-- {
			counts = append(counts, n.Abundances[i])
		}
	}
	return counts, nil
}

// CheckPath reports whether every consecutive pair of steps is linked by an
// arc leaving the current node on the current step's strand and pointing at
// the next step's node. It returns false at the first missing link. Walks of
// length 0 or 1 are consistent.
//
// Only ids outside the node store produce an error.
func (g *Graph) CheckPath(p Path) (bool, error) {
	return g.checkPath(p, false)
}

// CheckPathStrict is [Graph.CheckPath] that additionally requires the arc's
// target strand to equal the next step's orientation.
func (g *Graph) CheckPathStrict(p Path) (bool, error) {
	return g.checkPath(p, true)
}

func (g *Graph) checkPath(p Path, strict bool) (bool, error) {
	for _, s := range p {
		if _, err := g.Node(s.Node); err != nil {
			return false, err
		}
	}
	for i := 0; i+1 < len(p); i++ {
		cur, next := p[i], p[i+1]
		found := false
		for _, a := range g.nodes[cur.Node].Arcs {
			if a.SourceForward == cur.Forward && a.Successor == next.Node &&
				(!strict || a.TargetForward == next.Forward) {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}
	return true, nil
}

// ConsistentSuccessors returns the steps reachable from node id when leaving
// it on the given strand: one step per arc whose source strand matches,
// carrying the arc's target strand. Successors excluded by mask are skipped;
// a nil mask excludes nothing.
func (g *Graph) ConsistentSuccessors(id int, forward bool, mask Mask) ([]Step, error) {
	n, err := g.Node(id)
	if err != nil {
		return nil, err
	}
	var out []Step
	for _, a := range n.Arcs {
		if a.SourceForward != forward || excluded(mask, a.Successor) {
			continue
		}
		out = append(out, Step{Node: a.Successor, Forward: a.TargetForward})
	}
	return out, nil
}

// Successors returns every arc of node id whose successor is not excluded by
// mask, regardless of strand.
func (g *Graph) Successors(id int, mask Mask) ([]Arc, error) {
	n, err := g.Node(id)
	if err != nil {
		return nil, err
	}
	var out []Arc
	for _, a := range n.Arcs {
		if !excluded(mask, a.Successor) {
			out = append(out, a)
		}
	}
	return out, nil
}

func excluded(m Mask, id int) bool {
	return m != nil && m.Excluded(id)
}
