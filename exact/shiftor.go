package exact

import (
	"github.com/coregx/seqmatch/match"
	"github.com/coregx/seqmatch/pattern"
)

// Automaton is a single-word Shift-Or automaton.
//
// Bit j of table[c] is clear when character c is allowed at pattern position
// j. The state word is shifted left and OR-ed with the table entry of each
// text character; a match ends at the current character when the state
// drops below limit.
type Automaton struct {
	table  [256]uint
	limit  uint
	length int
}

// NewAutomaton builds an automaton of the given length. allowed reports
// whether text character c satisfies pattern position pos.
func NewAutomaton(length int, allowed func(pos int, c byte) bool) (*Automaton, error) {
	if length < 1 || length > pattern.WordBits {
		return nil, &pattern.LengthError{Kind: pattern.ShiftOr, Length: length, Limit: pattern.WordBits}
	}
	a := &Automaton{length: length}
	for c := range a.table {
		a.table[c] = ^uint(0)
	}
	var lim uint
	for j := 0; j < length; j++ {
		bit := uint(1) << j
		for c := 0; c < 256; c++ {
			if allowed(j, byte(c)) {
				a.table[c] &^= bit
			}
		}
		lim |= bit
	}
	a.limit = ^(lim >> 1)
	return a, nil
}

// Len returns the pattern length the automaton accepts.
func (a *Automaton) Len() int {
	return a.length
}

// Ends appends to dst the offset of the last character of every match in
// text and returns the extended slice.
func (a *Automaton) Ends(text []byte, dst []int) []int {
	state := ^uint(0)
	for i, c := range text {
		state = state<<1 | a.table[c]
		if state < a.limit {
			dst = append(dst, i)
		}
	}
	return dst
}

// MatchAt reports whether the automaton's pattern matches text at start.
func (a *Automaton) MatchAt(text []byte, start int) bool {
	if start < 0 || start+a.length > len(text) {
		return false
	}
	for j := 0; j < a.length; j++ {
		if a.table[text[start+j]]&(1<<j) != 0 {
			return false
		}
	}
	return true
}

// ShiftOr is a compiled Shift-Or searcher for a literal pattern.
type ShiftOr struct {
	auto        *Automaton
	anchorStart bool
	anchorEnd   bool
}

// NewShiftOr compiles a literal pattern no longer than a machine word.
func NewShiftOr(p *pattern.Pattern) (*ShiftOr, error) {
	lit := p.Literal()
	if lit == nil || p.Mismatches != 0 {
		return nil, &pattern.LengthError{Kind: pattern.ShiftOr, Length: p.RealLength, Limit: 0}
	}
	a, err := NewAutomaton(len(lit), func(pos int, c byte) bool {
		return lit[pos] == c
	})
	if err != nil {
		return nil, err
	}
	return &ShiftOr{auto: a, anchorStart: p.AnchorStart, anchorEnd: p.AnchorEnd}, nil
}

// Search reports every occurrence of the pattern in text.
func (s *ShiftOr) Search(text []byte, out *match.Emitter) {
	SearchAnchored(s.auto, text, s.anchorStart, s.anchorEnd, out)
}

// SearchAnchored runs a over text and emits the matches that satisfy the
// anchors. Anchored searches only inspect the one alignment they allow.
func SearchAnchored(a *Automaton, text []byte, anchorStart, anchorEnd bool, out *match.Emitter) {
	m, n := a.length, len(text)
	if m > n {
		return
	}
	if anchorStart || anchorEnd {
		start := 0
		if anchorEnd {
			start = n - m
		}
		if anchorStart && start != 0 {
			return
		}
		if a.MatchAt(text, start) {
			out.Emit(start, m, 0)
		}
		return
	}
	var buf [32]int
	for _, end := range a.Ends(text, buf[:0]) {
		out.Emit(end-m+1, m, 0)
	}
}
