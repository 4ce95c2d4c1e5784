// Package bcalm reads and writes BCALM2-style unitig files.
//
// # Overview
//
// A unitig file holds two lines per node: a header (def-line) and the
// unitig sequence. Two header encodings are understood, detected per line
// with [Detect]:
//
//	>0 LN:i:4 ab:Z:1 2 L:+:1:+ L:-:3:+      standard
//	ACGT
//	>S_1 ka:f:2.0 L:+:2:-                   alternative
//	GTCAA
//
// The standard encoding carries the unitig length and one abundance per
// k-mer. The alternative encoding carries only the average abundance; on
// import it is replicated once per k-mer, truncated to an integer, so the
// per-position values of the original data are lost. An alternative id is
// the number after the last '_' of the name, or the whole name if it has no
// underscore.
//
// Both encodings end with zero or more arcs "L:<sign>:<id>:<sign>", where
// '+' is the forward strand and '-' the reverse complement. Lines starting
// with '#' are comments.
//
// # Import
//
// Use [ImportFile] to read from a path or [ReadGraph] to read from any
// io.Reader:
//
//	g, err := bcalm.ImportFile("unitigs.fa", bcalm.Options{KmerSize: 31})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Node ids must be progressive (0, 1, 2, ...) because arcs address nodes by
// position. Errors carry the offending line number and one of the codes of
// the errors package (INVALID_FORMAT, STRUCTURAL, CONSISTENCY).
//
// # Export and round trip
//
// [WriteGraph] and [ExportFile] always emit the standard encoding.
// [RoundTrip] re-serializes a graph in memory and compares it token by token
// with the original input via [CompareTokens]; for standard input without
// extra tags the result is nil.
package bcalm
