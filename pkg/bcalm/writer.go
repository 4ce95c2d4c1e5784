package bcalm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/matzehuels/ustar/pkg/dbg"
)

// WriteGraph writes g to w in the standard encoding, one header and one
// sequence line per node:
//
//	>0 LN:i:4 ab:Z:1 2 L:+:1:+
//	ACGT
//
// Abundances are always written out per k-mer, so alternative-format input
// is expanded. Arcs keep their original order. The output can be read back
// with [ReadGraph].
func WriteGraph(g *dbg.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, n := range g.Nodes() {
		buf = appendRecord(buf[:0], n)
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("write node %d: %w", n.ID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// ExportFile writes g to the file at path. See [WriteGraph].
func ExportFile(g *dbg.Graph, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return WriteGraph(g, f)
}

func appendRecord(buf []byte, n *dbg.Node) []byte {
	buf = append(buf, '>')
	buf = strconv.AppendInt(buf, int64(n.ID), 10)
	buf = append(buf, " "+tagLength...)
	buf = strconv.AppendInt(buf, int64(n.Length), 10)
	buf = append(buf, " "+tagAbundances...)
	for i, a := range n.Abundances {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendUint(buf, uint64(a), 10)
	}
	for _, a := range n.Arcs {
		buf = append(buf, " L:"...)
		buf = append(buf, sign(a.SourceForward), ':')
		buf = strconv.AppendInt(buf, int64(a.Successor), 10)
		buf = append(buf, ':', sign(a.TargetForward))
	}
	buf = append(buf, '\n')
	buf = append(buf, n.Sequence...)
	return append(buf, '\n')
}
