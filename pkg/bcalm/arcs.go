package bcalm

import (
	"strconv"
	"strings"

	"github.com/matzehuels/ustar/pkg/dbg"
	errs "github.com/matzehuels/ustar/pkg/errors"
)

// parseArcs parses adjacency tokens of the form "L:<sign>:<id>:<sign>".
// The first sign is the source strand, the second the target strand; '+'
// is forward and '-' reverse. Successor ids are not checked against the
// node store, since arcs may point at records further down the file.
func parseArcs(tokens []string) ([]dbg.Arc, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	arcs := make([]dbg.Arc, 0, len(tokens))
	for _, tok := range tokens {
		a, err := parseArc(tok)
		if err != nil {
			return nil, err
		}
		arcs = append(arcs, a)
	}
	return arcs, nil
}

func parseArc(tok string) (dbg.Arc, error) {
	parts := strings.Split(tok, ":")
	if len(parts) != 4 || parts[0] != "L" {
		return dbg.Arc{}, errs.New(errs.ErrCodeInvalidFormat, "malformed arc %q", tok)
	}
	src, ok := parseSign(parts[1])
	if !ok {
		return dbg.Arc{}, errs.New(errs.ErrCodeInvalidFormat, "arc %q: bad source strand %q", tok, parts[1])
	}
	dst, ok := parseSign(parts[3])
	if !ok {
		return dbg.Arc{}, errs.New(errs.ErrCodeInvalidFormat, "arc %q: bad target strand %q", tok, parts[3])
	}
	id, err := strconv.Atoi(parts[2])
	if err != nil || id < 0 {
		return dbg.Arc{}, errs.New(errs.ErrCodeInvalidFormat, "arc %q: bad successor id %q", tok, parts[2])
	}
	return dbg.Arc{Successor: id, SourceForward: src, TargetForward: dst}, nil
}

func parseSign(s string) (forward, ok bool) {
	switch s {
	case "+":
		return true, true
	case "-":
		return false, true
	}
	return false, false
}

func sign(forward bool) byte {
	if forward {
		return '+'
	}
	return '-'
}
