// Package exact implements the exact literal search engines: Boyer-Moore-
// Horspool for patterns longer than a machine word and the Shift-Or bit
// automaton for patterns that fit in one.
//
// Compiled engines are read-only and may be shared between goroutines.
package exact

import (
	"bytes"

	"github.com/coregx/seqmatch/match"
	"github.com/coregx/seqmatch/pattern"
)

// Horspool is a compiled Boyer-Moore-Horspool searcher.
type Horspool struct {
	pattern     []byte
	skip        [256]int
	anchorStart bool
	anchorEnd   bool
}

// NewHorspool compiles the skip table for a literal pattern.
//
// The default skip is m-1; each residue at position i < m-1 skips m-1-i.
// A skip is never less than one.
func NewHorspool(p *pattern.Pattern) (*Horspool, error) {
	lit := p.Literal()
	if len(lit) == 0 || p.Mismatches != 0 {
		return nil, &pattern.LengthError{Kind: pattern.Horspool, Length: p.RealLength, Limit: 0}
	}
	m := len(lit)
	h := &Horspool{
		pattern:     lit,
		anchorStart: p.AnchorStart,
		anchorEnd:   p.AnchorEnd,
	}
	def := max(m-1, 1)
	for c := range h.skip {
		h.skip[c] = def
	}
	for i := 0; i < m-1; i++ {
		h.skip[lit[i]] = max(m-1-i, 1)
	}
	return h, nil
}

// Search reports every occurrence of the pattern in text, overlapping
// occurrences included.
func (h *Horspool) Search(text []byte, out *match.Emitter) {
	m, n := len(h.pattern), len(text)
	if m > n {
		return
	}

	if h.anchorStart || h.anchorEnd {
		start := 0
		if h.anchorEnd {
			start = n - m
		}
		if h.anchorStart && start != 0 {
			return
		}
		if bytes.Equal(text[start:start+m], h.pattern) {
			out.Emit(start, m, 0)
		}
		return
	}

	for k := m - 1; k < n; k += h.skip[text[k]] {
		i, j := k, m-1
		for j >= 0 && text[i] == h.pattern[j] {
			i--
			j--
		}
		if j < 0 {
			out.Emit(k-m+1, m, 0)
		}
	}
}
