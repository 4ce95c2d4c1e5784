package bcalm

import (
	"errors"
	"testing"

	errs "github.com/matzehuels/ustar/pkg/errors"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Format
		wantErr error
	}{
		{"standard", ">0 LN:i:4 ab:Z:1 2", FormatStandard, nil},
		{"standard with arcs", ">12 LN:i:5 ab:Z:1 2 3 L:+:3:-", FormatStandard, nil},
		{"alternative", ">S_0 ka:f:2.0", FormatAlternative, nil},
		{"alternative bare id", ">7 ka:f:3.5 L:-:1:+", FormatAlternative, nil},
		{"no tag", ">0 foo:bar", 0, ErrUnknownFormat},
		{"length only", ">0 LN:i:4", 0, ErrUnknownFormat},
		{"both", ">0 LN:i:4 ab:Z:1 2 ka:f:1.5", 0, ErrAmbiguousFormat},
		{"no def-line", "ACGT", 0, ErrNoDefLine},
		{"empty", "", 0, ErrNoDefLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.line)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Detect() error = %v, want %v", err, tt.wantErr)
				}
				if !errs.Is(err, errs.ErrCodeInvalidFormat) {
					t.Errorf("Detect() code = %v, want %v", errs.GetCode(err), errs.ErrCodeInvalidFormat)
				}
				return
			}
			if err != nil {
				t.Fatalf("Detect() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		format  Format
		id      int
		length  int
		abund   []uint32
		avg     float64
		median  uint32
		arcs    int
		wantErr bool
	}{
		{name: "standard", line: ">3 LN:i:5 ab:Z:4 1 3 L:+:0:+ L:-:9:-", format: FormatStandard,
			id: 3, length: 5, abund: []uint32{4, 1, 3}, avg: 8.0 / 3.0, median: 3, arcs: 2},
		{name: "standard even median", line: ">0 LN:i:6 ab:Z:4 1 3 2", format: FormatStandard,
			id: 0, length: 6, abund: []uint32{4, 1, 3, 2}, avg: 2.5, median: 2},
		{name: "standard detached tag", line: ">0 LN:i:4 ab:Z: 7 8", format: FormatStandard,
			id: 0, length: 4, abund: []uint32{7, 8}, avg: 7.5, median: 7},
		{name: "standard extra tags", line: ">0 LN:i:4 KC:i:15 km:f:7.5 ab:Z:7 8 L:+:1:+", format: FormatStandard,
			id: 0, length: 4, abund: []uint32{7, 8}, avg: 7.5, median: 7, arcs: 1},
		{name: "alternative named", line: ">S_0 ka:f:2.0", format: FormatAlternative,
			id: 0, avg: 2.0, median: 2},
		{name: "alternative last underscore", line: ">unitig_a_12 ka:f:3.9 L:+:1:-", format: FormatAlternative,
			id: 12, avg: 3.9, median: 3, arcs: 1},
		{name: "alternative bare", line: ">4 ka:f:0.5", format: FormatAlternative,
			id: 4, avg: 0.5, median: 0},
		{name: "bad id", line: ">x LN:i:4 ab:Z:1 2", format: FormatStandard, wantErr: true},
		{name: "bad abundance", line: ">0 LN:i:4 ab:Z:1 two", format: FormatStandard, wantErr: true},
		{name: "negative abundance", line: ">0 LN:i:4 ab:Z:1 -2", format: FormatStandard, wantErr: true},
		{name: "bad length", line: ">0 LN:i:four ab:Z:1 2", format: FormatStandard, wantErr: true},
		{name: "bad average", line: ">0 ka:f:lots", format: FormatAlternative, wantErr: true},
		{name: "negative average", line: ">0 ka:f:-1", format: FormatAlternative, wantErr: true},
		{name: "bad arc sign", line: ">0 LN:i:4 ab:Z:1 2 L:*:1:+", format: FormatStandard, wantErr: true},
		{name: "stray token after arcs", line: ">0 LN:i:4 ab:Z:1 2 L:+:1:+ 3", format: FormatStandard, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := parseHeader(tt.line, tt.format)
			if tt.wantErr {
				if !errs.Is(err, errs.ErrCodeInvalidFormat) {
					t.Fatalf("parseHeader() error = %v, want INVALID_FORMAT", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseHeader() error: %v", err)
			}
			if h.id != tt.id || h.length != tt.length {
				t.Errorf("id, length = %d, %d; want %d, %d", h.id, h.length, tt.id, tt.length)
			}
			if len(h.abundances) != len(tt.abund) {
				t.Fatalf("abundances = %v, want %v", h.abundances, tt.abund)
			}
			for i := range tt.abund {
				if h.abundances[i] != tt.abund[i] {
					t.Errorf("abundances = %v, want %v", h.abundances, tt.abund)
					break
				}
			}
			if h.average != tt.avg {
				t.Errorf("average = %v, want %v", h.average, tt.avg)
			}
			if h.median != tt.median {
				t.Errorf("median = %d, want %d", h.median, tt.median)
			}
			if len(h.arcs) != tt.arcs {
				t.Errorf("arcs = %v, want %d", h.arcs, tt.arcs)
			}
		})
	}
}

func TestParseArcs(t *testing.T) {
	arcs, err := parseArcs([]string{"L:+:0:+", "L:-:12:+", "L:+:3:-", "L:-:4:-"})
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		succ     int
		src, dst bool
	}{{0, true, true}, {12, false, true}, {3, true, false}, {4, false, false}}
	for i, w := range want {
		a := arcs[i]
		if a.Successor != w.succ || a.SourceForward != w.src || a.TargetForward != w.dst {
			t.Errorf("arc %d = %+v, want %+v", i, a, w)
		}
	}

	if arcs, err := parseArcs(nil); err != nil || arcs != nil {
		t.Errorf("parseArcs(nil) = %v, %v; want sink", arcs, err)
	}

	for _, tok := range []string{"L:+:1", "L:+:x:+", "L:+:-1:+", "X:+:1:+", "L:?:1:+", "L:+:1:+:"} {
		if _, err := parseArcs([]string{tok}); !errs.Is(err, errs.ErrCodeInvalidFormat) {
			t.Errorf("parseArcs(%q) error = %v, want INVALID_FORMAT", tok, err)
		}
	}
}
