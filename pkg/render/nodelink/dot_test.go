package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/ustar/pkg/dbg"
)

func testGraph(t *testing.T) *dbg.Graph {
	t.Helper()
	b := dbg.NewBuilder(3, 3)
	nodes := []dbg.Node{
		{ID: 0, Sequence: "ACGT", Abundances: []uint32{1, 2}, AverageAbundance: 1.5, MedianAbundance: 1,
			Arcs: []dbg.Arc{{Successor: 1, SourceForward: true, TargetForward: true}, {Successor: 2, SourceForward: false, TargetForward: true}}},
		{ID: 1, Sequence: "GTCA", Abundances: []uint32{3, 4}, Arcs: []dbg.Arc{{Successor: 0, SourceForward: false, TargetForward: false}}},
		{ID: 2, Sequence: "CGTT", Abundances: []uint32{5, 6}},
	}
	for _, n := range nodes {
		if err := b.Add(n); err != nil {
			t.Fatal(err)
		}
	}
	return b.Build()
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{})

	for _, want := range []string{
		"digraph G {",
		`0 [label="0"];`,
		`2 [label="2", fillcolor=lightgrey];`,
		`0 -> 1 [label="+/+"];`,
		`0 -> 2 [label="-/+", style=dashed];`,
		`1 -> 0 [label="-/-", style=dashed];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{Detailed: true})
	if !strings.Contains(dot, `label="0\nlen: 4\nab: 1.5 (median 1)"`) {
		t.Errorf("ToDOT(detailed) missing label:\n%s", dot)
	}
}

func TestToDOTMaxNodes(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{MaxNodes: 2})
	if strings.Contains(dot, "2 [") || strings.Contains(dot, "-> 2") {
		t.Errorf("ToDOT(MaxNodes=2) kept node 2:\n%s", dot)
	}
	if !strings.Contains(dot, "showing 2 of 3 nodes") {
		t.Errorf("ToDOT(MaxNodes=2) missing truncation note:\n%s", dot)
	}
	if !strings.Contains(ToDOT(testGraph(t), Options{MaxNodes: -1}), "2 [") {
		t.Error("ToDOT(MaxNodes=-1) dropped nodes")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}

	plain := []byte("<svg><g/></svg>")
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("normalizeViewBox() changed an svg without viewBox")
	}
}
