package bcalm

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/ustar/pkg/dbg"
	errs "github.com/matzehuels/ustar/pkg/errors"
)

// header is a parsed def-line. For the alternative format length and
// abundances stay zero until the sequence line is known.
type header struct {
	format     Format
	id         int
	length     int
	abundances []uint32
	average    float64
	median     uint32
	arcs       []dbg.Arc
}

// parseHeader extracts the fields of a header line already classified as f.
func parseHeader(line string, f Format) (header, error) {
	fields := strings.Fields(strings.TrimPrefix(line, ">"))
	if len(fields) == 0 {
		return header{}, errs.New(errs.ErrCodeInvalidFormat, "empty header")
	}
	switch f {
	case FormatStandard:
		return parseStandard(fields)
	case FormatAlternative:
		return parseAlternative(fields)
	default:
		return header{}, errs.New(errs.ErrCodeInternal, "unhandled format %d", int(f))
	}
}

// parseStandard reads ">id LN:i:len ab:Z:a1 a2 ... [L:...]".
//
// The abundance run starts with the ab:Z: tag and ends at the first token
// carrying a tag of its own (typically the first arc). Tags other than
// LN:i:, ab:Z: and arcs are ignored, so stock BCALM2 fields such as km:f:
// do not need stripping.
func parseStandard(fields []string) (header, error) {
	h := header{format: FormatStandard}
	id, err := parseID(fields[0])
	if err != nil {
		return h, err
	}
	h.id = id

	var (
		haveLength, inAbundances bool
		arcTokens                []string
	)
	for _, tok := range fields[1:] {
		switch {
		case strings.HasPrefix(tok, tagLength):
			inAbundances = false
			n, err := strconv.Atoi(tok[len(tagLength):])
			if err != nil || n < 0 {
				return h, errs.New(errs.ErrCodeInvalidFormat, "bad length %q", tok)
			}
			h.length, haveLength = n, true
		case strings.HasPrefix(tok, tagAbundances):
			inAbundances = true
			if rest := tok[len(tagAbundances):]; rest != "" {
				if h.abundances, err = appendAbundance(h.abundances, rest); err != nil {
					return h, err
				}
			}
		case strings.HasPrefix(tok, arcPrefix):
			inAbundances = false
			arcTokens = append(arcTokens, tok)
		case strings.Contains(tok, ":"):
			// unrelated tag
			inAbundances = false
		case inAbundances:
			if h.abundances, err = appendAbundance(h.abundances, tok); err != nil {
				return h, err
			}
		default:
			return h, errs.New(errs.ErrCodeInvalidFormat, "unexpected token %q", tok)
		}
	}
	if !haveLength {
		return h, errs.New(errs.ErrCodeInvalidFormat, "missing %s field", tagLength)
	}

	h.average = dbg.Mean(h.abundances)
	h.median = dbg.Median(h.abundances)
	h.arcs, err = parseArcs(arcTokens)
	return h, err
}

// parseAlternative reads ">[name_]id ka:f:avg [L:...]".
func parseAlternative(fields []string) (header, error) {
	h := header{format: FormatAlternative}
	name := fields[0]
	if i := strings.LastIndexByte(name, '_'); i >= 0 {
		name = name[i+1:]
	}
	id, err := parseID(name)
	if err != nil {
		return h, err
	}
	h.id = id

	var (
		haveAverage bool
		arcTokens   []string
	)
	for _, tok := range fields[1:] {
		switch {
		case strings.HasPrefix(tok, tagAverage):
			avg, err := strconv.ParseFloat(tok[len(tagAverage):], 64)
			if err != nil || avg < 0 || math.IsNaN(avg) || avg > math.MaxUint32 {
				return h, errs.New(errs.ErrCodeInvalidFormat, "bad average abundance %q", tok)
			}
			h.average, haveAverage = avg, true
		case strings.HasPrefix(tok, arcPrefix):
			arcTokens = append(arcTokens, tok)
		case strings.Contains(tok, ":"):
			// unrelated tag
		default:
			return h, errs.New(errs.ErrCodeInvalidFormat, "unexpected token %q", tok)
		}
	}
	if !haveAverage {
		return h, errs.New(errs.ErrCodeInvalidFormat, "missing %s field", tagAverage)
	}

	h.median = uint32(h.average)
	h.arcs, err = parseArcs(arcTokens)
	return h, err
}

// complete fills the fields that depend on the sequence line and returns
// the assembled node. Alternative records get one abundance per k-mer, each
// the truncated average.
func (h header) complete(seq string, k int) (dbg.Node, error) {
	n := dbg.Node{
		ID:               h.id,
		Sequence:         seq,
		Length:           h.length,
		Abundances:       h.abundances,
		AverageAbundance: h.average,
		MedianAbundance:  h.median,
		Arcs:             h.arcs,
	}
	switch h.format {
	case FormatStandard:
		if h.length != len(seq) {
			return n, errs.New(errs.ErrCodeConsistency,
				"node %d: declared length %d, sequence length %d", h.id, h.length, len(seq))
		}
	case FormatAlternative:
		n.Length = len(seq)
		if kmers := len(seq) - k + 1; kmers > 0 {
			n.Abundances = make([]uint32, kmers)
			for i := range n.Abundances {
				n.Abundances[i] = h.median
			}
		}
	}
	return n, nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, errs.New(errs.ErrCodeInvalidFormat, "bad node id %q", s)
	}
	return id, nil
}

func appendAbundance(dst []uint32, tok string) ([]uint32, error) {
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return dst, errs.New(errs.ErrCodeInvalidFormat, "bad abundance %q", tok)
	}
	return append(dst, uint32(v)), nil
}
