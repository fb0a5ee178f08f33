// Package brute implements the universal recursive backtracking matcher. It
// handles any combination of ranges, classes, complements, wildcards and a
// mismatch budget, at the price of exponential worst-case time.
package brute

import (
	"errors"

	"github.com/coregx/seqmatch/match"
	"github.com/coregx/seqmatch/pattern"
)

// ErrRecursionLimitExceeded is returned when a match attempt nests deeper
// than the configured ceiling.
var ErrRecursionLimitExceeded = errors.New("brute force recursion limit exceeded")

// DefaultMaxDepth is the default recursion ceiling.
const DefaultMaxDepth = 1000

// Backtracker walks the canonical token list directly; it keeps no
// compiled tables beyond suffix length bounds used for pruning.
type Backtracker struct {
	tokens      []pattern.Token
	budget      int
	anchorStart bool
	anchorEnd   bool
	maxDepth    int

	// suffixMin[i] and suffixMax[i] bound the text consumed by tokens[i:].
	suffixMin []int
	suffixMax []int
}

// New creates a backtracker for p. A maxDepth below one selects
// DefaultMaxDepth.
func New(p *pattern.Pattern, maxDepth int) *Backtracker {
	if maxDepth < 1 {
		maxDepth = DefaultMaxDepth
	}
	n := len(p.Tokens)
	b := &Backtracker{
		tokens:      p.Tokens,
		budget:      p.Mismatches,
		anchorStart: p.AnchorStart,
		anchorEnd:   p.AnchorEnd,
		maxDepth:    maxDepth,
		suffixMin:   make([]int, n+1),
		suffixMax:   make([]int, n+1),
	}
	for i := n - 1; i >= 0; i-- {
		b.suffixMin[i] = b.suffixMin[i+1] + p.Tokens[i].Min
		b.suffixMax[i] = b.suffixMax[i+1] + p.Tokens[i].Max
	}
	return b
}

// Search tries every start offset (only offset zero for a start-anchored
// pattern) and reports the first alignment found at each. Repeats are
// greedy: the longest count is tried first, as a backtracking regex would.
func (b *Backtracker) Search(text []byte, out *match.Emitter) error {
	last := len(text) - b.suffixMin[0]
	if b.anchorStart {
		last = min(last, 0)
	}
	for start := 0; start <= last; start++ {
		length, mm, ok, err := b.MatchAt(text, start)
		if err != nil {
			return err
		}
		if ok {
			out.Emit(start, length, mm)
		}
	}
	return nil
}

// MatchAt returns the first alignment beginning exactly at start, the same
// one Search reports for that offset.
func (b *Backtracker) MatchAt(text []byte, start int) (length, mismatches int, ok bool, err error) {
	if start < 0 || start+b.suffixMin[0] > len(text) || (b.anchorStart && start != 0) {
		return 0, 0, false, nil
	}
	s := attempt{b: b, text: text}
	ok, err = s.step(0, 0, start, 0, 0)
	if !ok || err != nil {
		return 0, 0, false, err
	}
	return s.end - start, s.mismatches, true, nil
}

// attempt is the per-call search state.
type attempt struct {
	b          *Backtracker
	text       []byte
	end        int
	mismatches int
}

// step matches tokens[ti:] at pos, rep repetitions of tokens[ti] having been
// consumed already. depth counts residues consumed by the current attempt.
func (s *attempt) step(ti, rep, pos, mm, depth int) (bool, error) {
	if depth >= s.b.maxDepth {
		return false, ErrRecursionLimitExceeded
	}
	tokens := s.b.tokens
	n := len(s.text)
	for {
		if ti == len(tokens) {
			if s.b.anchorEnd && pos != n {
				return false, nil
			}
			s.end, s.mismatches = pos, mm
			return true, nil
		}
		t := &tokens[ti]

		need := s.b.suffixMin[ti+1] + max(t.Min-rep, 0)
		if pos+need > n {
			return false, nil
		}
		if s.b.anchorEnd && pos+s.b.suffixMax[ti+1]+(t.Max-rep) < n {
			return false, nil
		}

		if rep < t.Max && pos < n {
			cost := 0
			if !t.Matches(s.text[pos]) {
				cost = 1
			}
			if mm+cost <= s.b.budget {
				ok, err := s.step(ti, rep+1, pos+1, mm+cost, depth+1)
				if ok || err != nil {
					return ok, err
				}
			}
		}
		if rep < t.Min {
			return false, nil
		}
		ti, rep = ti+1, 0
	}
}
