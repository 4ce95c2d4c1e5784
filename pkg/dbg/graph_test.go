package dbg

import (
	"errors"
	"math"
	"testing"

	errs "github.com/matzehuels/ustar/pkg/errors"
)

func fwd(succ int) Arc { return Arc{Successor: succ, SourceForward: true, TargetForward: true} }

// mustGraph builds a k=3 graph from sequences, one abundance of 1 per k-mer.
func mustGraph(t *testing.T, seqs []string, arcs map[int][]Arc) *Graph {
	t.Helper()
	b := NewBuilder(3, len(seqs))
	for i, s := range seqs {
		ab := make([]uint32, len(s)-2)
		for j := range ab {
			ab[j] = 1
		}
		if err := b.Add(Node{ID: i, Sequence: s, Abundances: ab, AverageAbundance: 1, MedianAbundance: 1, Arcs: arcs[i]}); err != nil {
			t.Fatalf("Add(%d) error: %v", i, err)
		}
	}
	return b.Build()
}

func TestBuilderAdd(t *testing.T) {
	tests := []struct {
		name     string
		node     Node
		wantCode errs.Code
		wantErr  error
	}{
		{
			name: "valid",
			node: Node{ID: 0, Sequence: "ACGT", Abundances: []uint32{1, 2}},
		},
		{
			name:     "non-progressive id",
			node:     Node{ID: 5, Sequence: "ACGT", Abundances: []uint32{1, 2}},
			wantCode: errs.ErrCodeStructural,
			wantErr:  ErrNonProgressiveID,
		},
		{
			name:     "too many abundances",
			node:     Node{ID: 0, Sequence: "ACGT", Abundances: []uint32{1, 2, 3}},
			wantCode: errs.ErrCodeConsistency,
			wantErr:  ErrAbundanceCount,
		},
		{
			name:     "too few abundances",
			node:     Node{ID: 0, Sequence: "ACGTA", Abundances: []uint32{1}},
			wantCode: errs.ErrCodeConsistency,
			wantErr:  ErrAbundanceCount,
		},
		{
			name:     "length disagrees with sequence",
			node:     Node{ID: 0, Sequence: "ACGT", Length: 5, Abundances: []uint32{1, 2}},
			wantCode: errs.ErrCodeConsistency,
		},
		{
			name:     "shorter than k",
			node:     Node{ID: 0, Sequence: "AC"},
			wantCode: errs.ErrCodeConsistency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(3, 0)
			err := b.Add(tt.node)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Add() error = %v, want nil", err)
				}
				if b.Len() != 1 {
					t.Errorf("Len() = %d, want 1", b.Len())
				}
				return
			}
			if !errs.Is(err, tt.wantCode) {
				t.Fatalf("Add() error = %v, want code %s", err, tt.wantCode)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("errors.Is(err, %v) = false", tt.wantErr)
			}
			if b.Len() != 0 {
				t.Errorf("Len() = %d after failed Add, want 0", b.Len())
			}
		})
	}
}

func TestBuilderAbundanceErrorMentionsK(t *testing.T) {
	b := NewBuilder(31, 0)
	err := b.Add(Node{ID: 0, Sequence: "ACGTACGTACGTACGTACGTACGTACGTACGTA", Abundances: []uint32{1}})
	if err == nil {
		t.Fatal("expected error")
	}
	const want = "node 0: sequence length 33, expected k-mers 3, actual abundances 1; make sure k=31 matches the input"
	if got := errs.UserMessage(err); got != want+": "+ErrAbundanceCount.Error() {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestBuilderFillsLength(t *testing.T) {
	b := NewBuilder(3, 0)
	if err := b.Add(Node{ID: 0, Sequence: "AAAAA", Abundances: []uint32{2, 2, 2}}); err != nil {
		t.Fatal(err)
	}
	g := b.Build()
	n, _ := g.Node(0)
	if n.Length != 5 {
		t.Errorf("Length = %d, want 5", n.Length)
	}
}

func TestGraphNodeOutOfRange(t *testing.T) {
	g := mustGraph(t, []string{"ACGT"}, nil)

	for _, id := range []int{-1, 1, 100} {
		_, err := g.Node(id)
		if !errors.Is(err, ErrNodeOutOfRange) {
			t.Errorf("Node(%d) error = %v, want ErrNodeOutOfRange", id, err)
		}
		if !errs.Is(err, errs.ErrCodeOutOfRange) {
			t.Errorf("Node(%d) code = %v, want %v", id, errs.GetCode(err), errs.ErrCodeOutOfRange)
		}
	}
}

func TestGraphStats(t *testing.T) {
	b := NewBuilder(3, 0)
	nodes := []Node{
		{ID: 0, Sequence: "ACGT", Abundances: []uint32{1, 3}, AverageAbundance: 2, Arcs: []Arc{fwd(1)}},
		{ID: 1, Sequence: "GTCAA", Abundances: []uint32{4, 4, 4}, AverageAbundance: 4, Arcs: []Arc{fwd(0), fwd(1)}},
		{ID: 2, Sequence: "TTT", Abundances: []uint32{6}, AverageAbundance: 6},
	}
	for _, n := range nodes {
		if err := b.Add(n); err != nil {
			t.Fatal(err)
		}
	}
	g := b.Build()

	s := g.Stats()
	if s.Nodes != 3 || g.NodeCount() != 3 {
		t.Errorf("Nodes = %d, want 3", s.Nodes)
	}
	if s.Kmers != 6 || g.KmerCount() != 6 {
		t.Errorf("Kmers = %d, want 6", s.Kmers)
	}
	if s.Arcs != 3 || g.ArcCount() != 3 {
		t.Errorf("Arcs = %d, want 3", s.Arcs)
	}
	if s.Isolated != 1 {
		t.Errorf("Isolated = %d, want 1", s.Isolated)
	}
	if s.AvgUnitigLength != 4 {
		t.Errorf("AvgUnitigLength = %v, want 4", s.AvgUnitigLength)
	}
	// (2*2 + 4*3 + 6*1) / 6
	if want := 22.0 / 6.0; math.Abs(s.AvgAbundance-want) > 1e-9 {
		t.Errorf("AvgAbundance = %v, want %v", s.AvgAbundance, want)
	}
	if want := 3.0 / 24.0; s.Density() != want {
		t.Errorf("Density() = %v, want %v", s.Density(), want)
	}
	if want := 1.0 / 3.0; s.IsolatedRatio() != want {
		t.Errorf("IsolatedRatio() = %v, want %v", s.IsolatedRatio(), want)
	}
}

func TestEmptyGraphStats(t *testing.T) {
	g := NewBuilder(31, 0).Build()
	s := g.Stats()
	if s.AvgAbundance != 0 || s.AvgUnitigLength != 0 || s.Density() != 0 || s.IsolatedRatio() != 0 {
		t.Errorf("empty graph stats = %+v, want zeros", s)
	}
}

func TestNodesIteration(t *testing.T) {
	g := mustGraph(t, []string{"ACGT", "CGTA", "GTAC"}, nil)

	var ids []int
	for id, n := range g.Nodes() {
		if n.ID != id {
			t.Errorf("node at %d has ID %d", id, n.ID)
		}
		ids = append(ids, id)
		if id == 1 {
			break
		}
	}
	if len(ids) != 2 {
		t.Errorf("iterated %v, want early stop after 2", ids)
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []uint32
		want   uint32
	}{
		{"empty", nil, 0},
		{"single", []uint32{7}, 7},
		{"odd", []uint32{9, 1, 5}, 5},
		{"even takes lower middle", []uint32{4, 1, 3, 2}, 2},
		{"duplicates", []uint32{2, 2, 8, 8}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]uint32(nil), tt.values...)
			if got := Median(in); got != tt.want {
				t.Errorf("Median(%v) = %d, want %d", tt.values, got, tt.want)
			}
			for i := range in {
				if in[i] != tt.values[i] {
					t.Fatalf("Median modified its input: %v", in)
				}
			}
		})
	}
}

func TestMean(t *testing.T) {
	if got := Mean([]uint32{1, 2, 3, 4}); got != 2.5 {
		t.Errorf("Mean() = %v, want 2.5", got)
	}
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %v, want 0", got)
	}
}
