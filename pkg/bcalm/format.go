package bcalm

import (
	"errors"
	"strings"

	errs "github.com/matzehuels/ustar/pkg/errors"
)

// Format is the encoding of a single header line.
type Format int

const (
	// FormatStandard is the BCALM2 header carrying a length and one
	// abundance per k-mer: ">0 LN:i:33 ab:Z:2 3 3 L:+:5:-".
	FormatStandard Format = iota
	// FormatAlternative carries only the average abundance and defers the
	// length to the sequence line: ">S_0 ka:f:2.0 L:+:5:-".
	FormatAlternative
)

func (f Format) String() string {
	switch f {
	case FormatStandard:
		return "standard"
	case FormatAlternative:
		return "alternative"
	default:
		return "unknown"
	}
}

// Header tags.
const (
	tagLength     = "LN:i:"
	tagAbundances = "ab:Z:"
	tagAverage    = "ka:f:"
	arcPrefix     = "L:"
)

var (
	// ErrNoDefLine is returned by [Detect] for lines that do not start with '>'.
	ErrNoDefLine = errors.New("no def-line found")

	// ErrUnknownFormat is returned by [Detect] when a header carries neither
	// the standard nor the alternative tags.
	ErrUnknownFormat = errors.New("unknown header format")

	// ErrAmbiguousFormat is returned by [Detect] when a header carries the
	// tags of both encodings.
	ErrAmbiguousFormat = errors.New("ambiguous header format")
)

// Detect classifies a header line. A line is standard if it contains both
// "LN:i:" and "ab:Z:", and alternative if it contains "ka:f:". Exactly one
// must match; anything else is an INVALID_FORMAT error.
func Detect(line string) (Format, error) {
	if !strings.HasPrefix(line, ">") {
		return 0, errs.Wrap(errs.ErrCodeInvalidFormat, ErrNoDefLine, "%s", clip(line))
	}
	standard := strings.Contains(line, tagLength) && strings.Contains(line, tagAbundances)
	alternative := strings.Contains(line, tagAverage)

	switch {
	case standard && alternative:
		return 0, errs.Wrap(errs.ErrCodeInvalidFormat, ErrAmbiguousFormat, "%s", clip(line))
	case standard:
		return FormatStandard, nil
	case alternative:
		return FormatAlternative, nil
	default:
		return 0, errs.Wrap(errs.ErrCodeInvalidFormat, ErrUnknownFormat, "%s", clip(line))
	}
}

// clip shortens s for use in error messages.
func clip(s string) string {
	const limit = 60
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
