package dbg_test

import (
	"fmt"

	"github.com/matzehuels/ustar/pkg/dbg"
)

func ExampleGraph_Spell() {
	// ACGT -> GTCA share the 2-base overlap "GT" for k=3
	b := dbg.NewBuilder(3, 2)
	_ = b.Add(dbg.Node{ID: 0, Sequence: "ACGT", Abundances: []uint32{1, 2},
		Arcs: []dbg.Arc{{Successor: 1, SourceForward: true, TargetForward: true}}})
	_ = b.Add(dbg.Node{ID: 1, Sequence: "GTCA", Abundances: []uint32{3, 4}})
	g := b.Build()

	p := dbg.Path{{Node: 0, Forward: true}, {Node: 1, Forward: true}}
	contig, _ := g.Spell(p)
	counts, _ := g.Counts(p)
	ok, _ := g.CheckPath(p)

	fmt.Println("Contig:", contig)
	fmt.Println("Counts:", counts)
	fmt.Println("Connected:", ok)
	// Output:
	// Contig: ACGTCA
	// Counts: [1 2 3 4]
	// Connected: true
}

func ExampleGraph_VerifyOverlaps() {
	b := dbg.NewBuilder(3, 2)
	_ = b.Add(dbg.Node{ID: 0, Sequence: "ACGT", Abundances: []uint32{1, 2}})
	_ = b.Add(dbg.Node{ID: 1, Sequence: "CGTA", Abundances: []uint32{4, 5},
		Arcs: []dbg.Arc{{Successor: 0, SourceForward: true, TargetForward: true}}})
	g := b.Build()

	report, _ := g.VerifyOverlaps()
	fmt.Println("OK:", report.OK())
	fmt.Println("First:", report.First)
	// Output:
	// OK: false
	// First: node 1 arc 0 (L:+:0:+): "TA" != "AC"
}

func ExampleReverseComplement() {
	rc, _ := dbg.ReverseComplement("aacGT")
	fmt.Println(rc)
	// Output:
	// ACGTT
}
