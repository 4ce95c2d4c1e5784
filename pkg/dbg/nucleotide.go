package dbg

import (
	errs "github.com/matzehuels/ustar/pkg/errors"
)

var complement [256]byte

func init() {
	complement['A'], complement['a'] = 'T', 'T'
	complement['C'], complement['c'] = 'G', 'G'
	complement['G'], complement['g'] = 'C', 'C'
	complement['T'], complement['t'] = 'A', 'A'
}

// ReverseComplement returns the reverse complement of s in upper case.
// A<->T and C<->G are swapped case-insensitively; any other byte yields an
// ALPHABET error wrapping [ErrUnknownNucleotide].
func ReverseComplement(s string) (string, error) {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[s[i]]
		if c == 0 {
			return "", errs.Wrap(errs.ErrCodeAlphabet, ErrUnknownNucleotide,
				"%q at position %d", s[i], i)
		}
		out[n-1-i] = c
	}
	return string(out), nil
}

// Upper returns s in upper case, with the same ALPHABET check as
// [ReverseComplement].
func Upper(s string) (string, error) {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		if complement[s[i]] == 0 {
			return "", errs.Wrap(errs.ErrCodeAlphabet, ErrUnknownNucleotide,
				"%q at position %d", s[i], i)
		}
		out[i] = complement[complement[s[i]]]
	}
	return string(out), nil
}

// oriented returns seq as read on the given strand.
func oriented(seq string, forward bool) (string, error) {
	if forward {
		return seq, nil
	}
	return ReverseComplement(seq)
}
