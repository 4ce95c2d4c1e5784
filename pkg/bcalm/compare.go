package bcalm

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/ustar/pkg/dbg"
)

// maxTokenLine bounds the lines read by [CompareTokens].
const maxTokenLine = 1 << 28

// Mismatch is the first differing token pair found by [CompareTokens].
type Mismatch struct {
	Index int    // 0-based token position
	Got   string // token from the first stream
	Want  string // token from the second stream
}

func (m Mismatch) String() string {
	return fmt.Sprintf("token %d: got %q, want %q", m.Index, m.Got, m.Want)
}

// CompareTokens compares two streams as sequences of whitespace-separated
// tokens and returns the first pair that differs, or nil when they agree up
// to the end of the shorter stream. Lines starting with '#' are ignored on
// both sides.
func CompareTokens(a, b io.Reader) (*Mismatch, error) {
	ta, tb := newTokenizer(a), newTokenizer(b)
	for i := 0; ; i++ {
		x, okA := ta.next()
		y, okB := tb.next()
		if !okA || !okB {
			break
		}
		if x != y {
			return &Mismatch{Index: i, Got: x, Want: y}, nil
		}
	}
	if err := ta.err(); err != nil {
		return nil, fmt.Errorf("read first stream: %w", err)
	}
	if err := tb.err(); err != nil {
		return nil, fmt.Errorf("read second stream: %w", err)
	}
	return nil, nil
}

// RoundTrip serializes g with [WriteGraph] and compares the result token by
// token with original. A nil Mismatch means the canonical form reproduces the
// original input.
func RoundTrip(g *dbg.Graph, original io.Reader) (*Mismatch, error) {
	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		return nil, err
	}
	return CompareTokens(&buf, original)
}

type tokenizer struct {
	sc     *bufio.Scanner
	fields []string
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenLine)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) next() (string, bool) {
	for len(t.fields) == 0 {
		if !t.sc.Scan() {
			return "", false
		}
		line := t.sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		t.fields = strings.Fields(line)
	}
	tok := t.fields[0]
	t.fields = t.fields[1:]
	return tok, true
}

func (t *tokenizer) err() error { return t.sc.Err() }
