package spss

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/matzehuels/ustar/pkg/dbg"
)

// Simplitig is one string of the spectrum-preserving string set together
// with the walk that spells it and one abundance per k-mer.
type Simplitig struct {
	Path     dbg.Path
	Sequence string
	Counts   []uint32
}

// Extract spells every path and collects its abundances.
func Extract(g *dbg.Graph, paths []dbg.Path) ([]Simplitig, error) {
	out := make([]Simplitig, 0, len(paths))
	for i, p := range paths {
		seq, err := g.Spell(p)
		if err != nil {
			return nil, fmt.Errorf("path %d: %w", i, err)
		}
		counts, err := g.Counts(p)
		if err != nil {
			return nil, fmt.Errorf("path %d: %w", i, err)
		}
		out = append(out, Simplitig{Path: p, Sequence: seq, Counts: counts})
	}
	return out, nil
}

// KmerCount returns the number of k-mers over all simplitigs.
func KmerCount(tigs []Simplitig) int {
	n := 0
	for _, t := range tigs {
		n += len(t.Counts)
	}
	return n
}

// WriteFasta writes one record per simplitig, numbered from 0.
func WriteFasta(w io.Writer, tigs []Simplitig) error {
	bw := bufio.NewWriter(w)
	for i, t := range tigs {
		if _, err := fmt.Fprintf(bw, ">%d\n%s\n", i, t.Sequence); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteCounts writes the abundances of each simplitig on its own line,
// space separated, in the order of [WriteFasta].
func WriteCounts(w io.Writer, tigs []Simplitig) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, t := range tigs {
		buf = buf[:0]
		for j, c := range t.Counts {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendUint(buf, uint64(c), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
