package approx

import (
	"github.com/coregx/seqmatch/match"
	"github.com/coregx/seqmatch/pattern"
)

// TarhioUkkonen is a compiled Tarhio-Ukkonen-Bleasby searcher.
//
// skip[i][c] is the smallest shift s >= 1 that brings a token able to match
// c under pattern position i, capped at length-budget. Only the last
// budget+1 rows are consulted: any shift that leaves all of those residues
// mismatched would cost more than the budget, so it can be skipped.
type TarhioUkkonen struct {
	tokens      []pattern.Token
	budget      int
	bound       int
	firstRow    int
	skip        [][256]int
	anchorStart bool
	anchorEnd   bool
}

// NewTarhioUkkonen compiles a pattern without ranges.
func NewTarhioUkkonen(p *pattern.Pattern) (*TarhioUkkonen, error) {
	if p.HasRange {
		return nil, &pattern.LengthError{Kind: pattern.TarhioUkkonen, Length: p.RealLength, Limit: 0}
	}
	m := len(p.Tokens)
	k := p.Mismatches
	e := &TarhioUkkonen{
		tokens:      p.Tokens,
		budget:      k,
		bound:       max(m-k, 1),
		firstRow:    max(m-k-1, 0),
		skip:        make([][256]int, m),
		anchorStart: p.AnchorStart,
		anchorEnd:   p.AnchorEnd,
	}

	for i := e.firstRow; i < m; i++ {
		row := &e.skip[i]
		for c := range row {
			row[c] = e.bound
		}
		// Walk shifts from the largest down so the smallest one wins.
		for s := min(i, e.bound-1); s >= 1; s-- {
			tok := &e.tokens[i-s]
			for c := 0; c < 256; c++ {
				if tok.Matches(byte(c)) {
					row[c] = s
				}
			}
		}
	}
	return e, nil
}

// Search reports every alignment of the pattern in text with at most the
// budgeted number of mismatches.
func (e *TarhioUkkonen) Search(text []byte, out *match.Emitter) {
	m, n := len(e.tokens), len(text)
	if m > n {
		return
	}

	if e.anchorStart || e.anchorEnd {
		start := 0
		if e.anchorEnd {
			start = n - m
		}
		if e.anchorStart && start != 0 {
			return
		}
		if mm := e.mismatchesAt(text, start); mm <= e.budget {
			out.Emit(start, m, mm)
		}
		return
	}

	for j := m - 1; j < n; {
		h, mm, d := j, 0, e.bound
		for i := m - 1; i >= 0 && mm <= e.budget; i-- {
			c := text[h]
			if i >= e.firstRow {
				if s := e.skip[i][c]; s < d {
					d = s
				}
			}
			if !e.tokens[i].Matches(c) {
				mm++
			}
			h--
		}
		if mm <= e.budget {
			out.Emit(j-m+1, m, mm)
		}
		j += d
	}
}

// mismatchesAt counts mismatches of the alignment starting at start,
// stopping once the budget is exceeded.
func (e *TarhioUkkonen) mismatchesAt(text []byte, start int) int {
	mm := 0
	for i := range e.tokens {
		if !e.tokens[i].Matches(text[start+i]) {
			mm++
			if mm > e.budget {
				break
			}
		}
	}
	return mm
}
