package spss

import (
	"slices"

	"github.com/matzehuels/ustar/pkg/dbg"
	errs "github.com/matzehuels/ustar/pkg/errors"
)

// Cover partitions the nodes of g into paths.
//
// Each path starts from a seed chosen by the policy, is extended forward
// from the seed's forward strand, then backward from its reverse strand.
// The backward part is flipped and prepended, so every returned path reads
// in one direction and is accepted by [dbg.Graph.CheckPath] on graphs whose
// arcs come in symmetric pairs, as BCALM2 writes them. Every node appears
// in exactly one path.
//
// Cover returns an INVALID_INPUT error for an incomplete policy and an
// INTERNAL error if the policy picks a node that is already used or not a
// candidate.
func Cover(g *dbg.Graph, p Policy) ([]dbg.Path, error) {
	if p.Seeder == nil || p.Extender == nil {
		return nil, errs.New(errs.ErrCodeInvalidInput, "policy needs a seeder and an extender")
	}

	mask := dbg.NewBoolMask(g.NodeCount())
	var paths []dbg.Path
	for {
		seed, ok := p.Seeder.Seed(g, mask)
		if !ok {
			break
		}
		if _, err := g.Node(seed); err != nil {
			return nil, errs.Wrap(errs.ErrCodeInternal, err, "seeder returned node %d", seed)
		}
		if mask.Excluded(seed) {
			return nil, errs.New(errs.ErrCodeInternal, "seeder returned used node %d", seed)
		}
		mask.Set(seed)

		forward, err := extend(g, p.Extender, dbg.Step{Node: seed, Forward: true}, mask)
		if err != nil {
			return nil, err
		}
		backward, err := extend(g, p.Extender, dbg.Step{Node: seed, Forward: false}, mask)
		if err != nil {
			return nil, err
		}

		path := make(dbg.Path, 0, len(backward)+1+len(forward))
		for _, s := range slices.Backward(backward) {
			path = append(path, dbg.Step{Node: s.Node, Forward: !s.Forward})
		}
		path = append(path, dbg.Step{Node: seed, Forward: true})
		paths = append(paths, append(path, forward...))
	}
	return paths, nil
}

// extend walks from start until the extender stops or no unused successor
// is left. The start step itself is not included.
func extend(g *dbg.Graph, e Extender, start dbg.Step, mask dbg.BoolMask) (dbg.Path, error) {
	var walk dbg.Path
	cur := start
	for {
		candidates, err := g.ConsistentSuccessors(cur.Node, cur.Forward, mask)
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			return walk, nil
		}
		next, ok := e.Extend(g, cur, candidates)
		if !ok {
			return walk, nil
		}
		if !slices.Contains(candidates, next) {
			return nil, errs.New(errs.ErrCodeInternal, "extender returned %v, not a successor of %v", next, cur)
		}
		mask.Set(next.Node)
		walk = append(walk, next)
		cur = next
	}
}
