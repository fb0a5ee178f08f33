// Package approx implements the mismatch-tolerant engines: Baeza-Yates-
// Perleberg for literal patterns and Tarhio-Ukkonen with Bleasby's class
// extension for patterns with classes and complements.
//
// Every alignment with at most the budgeted number of substitutions is
// reported, overlapping alignments included. Compiled engines are read-only;
// per-search buffers come from a pool so one engine may be shared between
// goroutines.
package approx

import (
	"sync"

	"github.com/coregx/seqmatch/match"
	"github.com/coregx/seqmatch/pattern"
)

// window is the size of the mismatch counter ring. It must be a power of two
// larger than the longest accepted pattern.
const window = 256

const windowMask = window - 1

// Perleberg is a compiled Baeza-Yates-Perleberg searcher.
type Perleberg struct {
	length      int
	budget      int
	anchorStart bool
	anchorEnd   bool

	// offsets[c] lists, for every pattern position holding c, the distance
	// from that position to the pattern end.
	offsets [256][]int

	counters sync.Pool
}

// NewPerleberg compiles a literal pattern shorter than
// pattern.MaxPerlebergLength.
func NewPerleberg(p *pattern.Pattern) (*Perleberg, error) {
	lit := p.Literal()
	if lit == nil || len(lit) >= pattern.MaxPerlebergLength {
		return nil, &pattern.LengthError{
			Kind:   pattern.Perleberg,
			Length: p.RealLength,
			Limit:  pattern.MaxPerlebergLength - 1,
		}
	}
	m := len(lit)
	e := &Perleberg{
		length:      m,
		budget:      p.Mismatches,
		anchorStart: p.AnchorStart,
		anchorEnd:   p.AnchorEnd,
	}
	for i, c := range lit {
		e.offsets[c] = append(e.offsets[c], m-1-i)
	}
	e.counters.New = func() any { return new([window]int) }
	return e, nil
}

// Search reports every alignment of the pattern in text with at most the
// budgeted number of mismatches.
//
// count[j & mask] holds the mismatches of the alignment ending at text
// offset j: it starts at the pattern length and loses one for every
// matching residue, so it is final when the scan reaches j.
func (e *Perleberg) Search(text []byte, out *match.Emitter) {
	m, n := e.length, len(text)
	if m > n {
		return
	}

	count := e.counters.Get().(*[window]int)
	defer e.counters.Put(count)
	for i := range count {
		count[i] = m
	}

	for i := 0; i < n; i++ {
		for _, off := range e.offsets[text[i]] {
			count[(i+off)&windowMask]--
		}
		slot := i & windowMask
		if i >= m-1 && count[slot] <= e.budget {
			start := i - m + 1
			if (!e.anchorStart || start == 0) && (!e.anchorEnd || i == n-1) {
				out.Emit(start, m, count[slot])
			}
		}
		count[slot] = m
	}
}
