package bcalm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/ustar/pkg/dbg"
	errs "github.com/matzehuels/ustar/pkg/errors"
)

// DefaultMaxLineLen is the line limit used when Options.MaxLineLen is zero.
const DefaultMaxLineLen = 1 << 20

// Options configures graph construction.
type Options struct {
	// KmerSize is the k the unitigs were built with. Required.
	KmerSize int
	// MaxLineLen bounds the length of any line, headers and sequences
	// alike. Zero means DefaultMaxLineLen.
	MaxLineLen int
	// AllowEvenK accepts even k-mer sizes. Even k lets a k-mer be its own
	// reverse complement, which produces self-loops; it is refused by default.
	AllowEvenK bool
}

// WithDefaults returns a copy of o with zero fields replaced by defaults.
func (o Options) WithDefaults() Options {
	if o.MaxLineLen == 0 {
		o.MaxLineLen = DefaultMaxLineLen
	}
	return o
}

// Validate checks that the options can drive a construction.
func (o Options) Validate() error {
	if err := errs.ValidateKmerSize(o.KmerSize, o.AllowEvenK); err != nil {
		return err
	}
	return errs.ValidateMaxLineLen(o.MaxLineLen)
}

// ReadGraph parses unitig records from r and builds a graph.
//
// Each record is a header line followed by exactly one sequence line. The
// header's encoding is detected per line with [Detect], so standard and
// alternative records may be mixed. Lines starting with '#' and blank lines
// between records are skipped.
//
// Construction stops at the first problem. Every error carries the 1-based
// line number and keeps its code:
//   - INVALID_FORMAT: unrecognized header, malformed field or arc
//   - STRUCTURAL: missing sequence line, non-progressive id, line longer
//     than MaxLineLen
//   - CONSISTENCY: abundance count differs from len(sequence)-k+1, or the
//     declared length differs from the sequence
//
// Arcs are not checked against the node store; see [dbg.Graph.VerifyOverlaps].
// ReadGraph does not close r.
func ReadGraph(r io.Reader, opts Options) (*dbg.Graph, error) {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// The scanner needs room for the terminator, "\r\n" included.
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, opts.MaxLineLen+2)), opts.MaxLineLen+2)

	b := dbg.NewBuilder(opts.KmerSize, 0)
	var (
		lineNo     int
		pending    bool
		hdr        header
		headerLine int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if len(line) > opts.MaxLineLen {
			return nil, tooLong(lineNo, opts.MaxLineLen, bufio.ErrTooLong)
		}

		if !pending {
			if line == "" || line[0] == '#' {
				continue
			}
			f, err := Detect(line)
			if err != nil {
				return nil, atLine(lineNo, err)
			}
			if hdr, err = parseHeader(line, f); err != nil {
				return nil, atLine(lineNo, err)
			}
			pending, headerLine = true, lineNo
			continue
		}

		if line == "" || line[0] == '>' || line[0] == '#' {
			return nil, errs.New(errs.ErrCodeStructural, "line %d: expected a sequence here", lineNo)
		}
		n, err := hdr.complete(line, opts.KmerSize)
		if err == nil {
			err = b.Add(n)
		}
		if err != nil {
			return nil, atLine(headerLine, err)
		}
		pending = false
	}

	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, tooLong(lineNo+1, opts.MaxLineLen, err)
		}
		return nil, fmt.Errorf("read: %w", err)
	}
	if pending {
		return nil, errs.New(errs.ErrCodeStructural, "line %d: expected a sequence here", lineNo+1)
	}
	return b.Build(), nil
}

func tooLong(lineNo, limit int, err error) error {
	return errs.Wrap(errs.ErrCodeStructural, err, "line %d: line too long (limit %d bytes)", lineNo, limit)
}

// ImportFile reads the unitig file at path. See [ReadGraph].
// A missing file is a FILE_NOT_FOUND error.
func ImportFile(path string, opts Options) (*dbg.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadGraph(f, opts)
}

// atLine prefixes err with a line number, keeping its code.
func atLine(n int, err error) error {
	code := errs.GetCode(err)
	if code == "" {
		code = errs.ErrCodeInternal
	}
	return errs.Wrap(code, err, "line %d", n)
}
