// Package spss builds a spectrum-preserving string set (simplitigs) from a
// de Bruijn graph of unitigs.
//
// A path cover visits every node once. Which node starts a path and which
// successor extends it are left to a [Policy]; this package ships only
// [FirstSeeder] and [FirstExtender]. [Cover] computes the paths, [Extract]
// spells them together with their k-mer abundances, and [WriteFasta] and
// [WriteCounts] write the result as plain text:
//
//	paths, err := spss.Cover(g, spss.DefaultPolicy())
//	tigs, err := spss.Extract(g, paths)
//	err = spss.WriteFasta(fa, tigs)
//	err = spss.WriteCounts(counts, tigs)
//
// The set of k-mers spelled by the simplitigs equals the set of k-mers of
// the unitigs, and line i of the counts output holds one abundance per
// k-mer of simplitig i.
package spss
