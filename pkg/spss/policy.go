package spss

import "github.com/matzehuels/ustar/pkg/dbg"

// Seeder picks the node a new path starts from. It must return an id not
// excluded by mask, or false when every node is used.
type Seeder interface {
	Seed(g *dbg.Graph, mask dbg.Mask) (id int, ok bool)
}

// Extender picks the next step of a path among candidates, which are the
// unused consistent successors of from. Returning false ends the path.
type Extender interface {
	Extend(g *dbg.Graph, from dbg.Step, candidates []dbg.Step) (next dbg.Step, ok bool)
}

// Policy combines the two decisions of a path cover.
type Policy struct {
	Seeder   Seeder
	Extender Extender
}

// DefaultPolicy returns a policy that always takes the first available node
// and the first consistent successor.
func DefaultPolicy() Policy {
	return Policy{Seeder: &FirstSeeder{}, Extender: FirstExtender{}}
}

// FirstSeeder seeds with the lowest unused node id. It keeps a cursor, so a
// FirstSeeder serves a single cover.
type FirstSeeder struct {
	next int
}

// Seed implements [Seeder].
func (s *FirstSeeder) Seed(g *dbg.Graph, mask dbg.Mask) (int, bool) {
	for ; s.next < g.NodeCount(); s.next++ {
		if !mask.Excluded(s.next) {
			return s.next, true
		}
	}
	return 0, false
}

// FirstExtender extends with the first candidate, in arc order.
type FirstExtender struct{}

// Extend implements [Extender].
func (FirstExtender) Extend(_ *dbg.Graph, _ dbg.Step, candidates []dbg.Step) (dbg.Step, bool) {
	if len(candidates) == 0 {
		return dbg.Step{}, false
	}
	return candidates[0], true
}
