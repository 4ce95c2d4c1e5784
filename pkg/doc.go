// Package pkg provides the core libraries for ustar, a toolkit for compacted
// de Bruijn graphs of unitigs.
//
// # Overview
//
// ustar reads the unitig files produced by BCALM2-like tools, checks their
// structural contract and walks them to build spectrum-preserving string
// sets. The pkg directory is organized into three areas:
//
//  1. Domain logic: [dbg] (graph, overlaps, walks), [bcalm] (file format),
//     [spss] (path covers and simplitigs)
//  2. Orchestration: [pipeline] (load → analyze → cover/render with caching)
//  3. Infrastructure: [cache], [errors], [observability], [render], [buildinfo]
//
// # Architecture
//
// The typical data flow through ustar:
//
//	unitig file (.fa)
//	      ↓
//	 [bcalm] package (detect header format, parse records)
//	      ↓
//	 [dbg] package (immutable graph, overlap verification, walks)
//	      ↓
//	 [spss] package (path cover, simplitigs + counts)
//	      ↓
//	 FASTA / counts / SVG, PNG, PDF, DOT output
//
// # Quick Start
//
// Load a file, verify it and spell a walk:
//
//	import (
//	    "github.com/matzehuels/ustar/pkg/bcalm"
//	    "github.com/matzehuels/ustar/pkg/dbg"
//	)
//
//	g, err := bcalm.ImportFile("reads.unitigs.fa", bcalm.Options{KmerSize: 31})
//	if err != nil {
//	    return err
//	}
//	report, err := g.VerifyOverlaps()
//	if err != nil || !report.OK() {
//	    return fmt.Errorf("broken graph: %v", report.First)
//	}
//	walk, _ := dbg.ParsePath("3+,5-,7+")
//	contig, _ := g.Spell(walk)
//	counts, _ := g.Counts(walk)
//
// # Main Packages
//
//   - [dbg]: Graph, Builder, Arc, Step/Path, VerifyOverlaps, Spell, Counts,
//     CheckPath, ConsistentSuccessors
//   - [bcalm]: Detect, ReadGraph/ImportFile, WriteGraph/ExportFile, RoundTrip
//   - [spss]: Seeder/Extender policies, Cover, Extract, WriteFasta/WriteCounts
//   - [pipeline]: Runner with cache-aside Analyze, Cover and Render stages
//   - [cache]: Cache interface, FileCache, NullCache, Keyer
//   - [render/nodelink]: Graphviz DOT and SVG/PNG/PDF rendering
//
// The CLI in cmd/ustar wires these together; see internal/cli.
//
// [dbg]: https://pkg.go.dev/github.com/matzehuels/ustar/pkg/dbg
// [bcalm]: https://pkg.go.dev/github.com/matzehuels/ustar/pkg/bcalm
// [spss]: https://pkg.go.dev/github.com/matzehuels/ustar/pkg/spss
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/ustar/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/ustar/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/ustar/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/ustar/pkg/observability
// [render]: https://pkg.go.dev/github.com/matzehuels/ustar/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/ustar/pkg/render/nodelink
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/ustar/pkg/buildinfo
package pkg
