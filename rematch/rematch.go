package rematch

import (
	"errors"
	"fmt"

	"github.com/coregx/coregex"

	"github.com/coregx/seqmatch/brute"
	"github.com/coregx/seqmatch/log"
	"github.com/coregx/seqmatch/match"
	"github.com/coregx/seqmatch/pattern"
)

// ErrRegexUnavailable is wrapped by New when the pattern cannot be compiled
// into a regular expression.
var ErrRegexUnavailable = errors.New("regex engine unavailable")

// Regexp is the subset of a compiled regular expression the adapter needs.
// *coregex.Regex and *regexp.Regexp both satisfy it.
type Regexp interface {
	FindIndex(b []byte) []int
	FindAllIndex(b []byte, n int) [][]int
}

// CompileFunc compiles a regular expression.
type CompileFunc func(expr string) (Regexp, error)

// Coregex compiles expr with coregex.
func Coregex(expr string) (Regexp, error) {
	re, err := coregex.Compile(expr)
	if err != nil {
		return nil, err
	}
	return re, nil
}

// Span is a half-open [Start, End) hit.
type Span struct {
	Start, End int
}

// Adapter searches with a compiled expression.
//
// The regex engine only locates hits. Every reported span is re-measured
// against the token list with a backtracker.
type Adapter struct {
	expr        string
	re          Regexp
	verify      *brute.Backtracker
	anchorStart bool
	anchorEnd   bool
	minLen      int
	maxLen      int

	// nonOverlapping selects the regex engine's own leftmost,
	// non-overlapping iteration instead of one hit per start offset.
	nonOverlapping bool
}

// New translates and compiles p. A nil compile selects Coregex.
func New(p *pattern.Pattern, compile CompileFunc) (*Adapter, error) {
	if p.Mismatches != 0 {
		return nil, fmt.Errorf("%w: mismatches are not expressible as a regex", ErrRegexUnavailable)
	}
	if compile == nil {
		compile = Coregex
	}
	expr := Translate(p)
	re, err := compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrRegexUnavailable, expr, err)
	}
	// The backtracker recurses once per residue consumed, so this ceiling is
	// never reached.
	maxLen := p.MaxLength()
	return &Adapter{
		expr:        expr,
		re:          re,
		verify:      brute.New(p, maxLen+1),
		anchorStart: p.AnchorStart,
		anchorEnd:   p.AnchorEnd,
		minLen:      p.MinLength(),
		maxLen:      maxLen,
	}, nil
}

// SetNonOverlapping switches between reporting one hit per start offset
// (the default) and the regex engine's non-overlapping iteration.
func (a *Adapter) SetNonOverlapping(v bool) {
	a.nonOverlapping = v
}

// Expr returns the translated expression.
func (a *Adapter) Expr() string {
	return a.expr
}

// FindAll returns hits in text ordered by start.
//
// By default a hit is reported at every offset where the pattern matches.
// The engine's non-overlapping spans locate the hits and the offsets inside
// each span are measured again, which finds hits starting inside an earlier
// one. Lengths are those of the greedy first alignment.
//
// Once the engine reports a span the tokens do not reproduce, the rest of
// the text is scanned without it. Anchored patterns admit only a short
// window of starts and are always measured directly.
func (a *Adapter) FindAll(text []byte) ([]Span, error) {
	if a.anchorStart || a.anchorEnd {
		return a.anchored(text)
	}

	var out []Span
	next := 0
	for _, loc := range a.re.FindAllIndex(text, -1) {
		start, end := loc[0], loc[1]
		if start < next || end < start {
			return a.distrust(text, next, out)
		}
		n, ok, err := a.measure(text, start)
		if err != nil {
			return out, err
		}
		if !ok || start+n != end {
			return a.distrust(text, start, out)
		}
		if n > 0 {
			out = append(out, Span{start, end})
		}
		next = max(end, start+1)
		if a.nonOverlapping {
			continue
		}
		for pos := start + 1; pos < end; pos++ {
			if out, err = a.appendAt(text, pos, out); err != nil {
				return out, err
			}
		}
	}
	return out, nil
}

// measure returns the length of the first alignment at start.
func (a *Adapter) measure(text []byte, start int) (int, bool, error) {
	n, _, ok, err := a.verify.MatchAt(text, start)
	return n, ok, err
}

// appendAt appends the hit starting at pos, if any. Empty alignments are
// not hits.
func (a *Adapter) appendAt(text []byte, pos int, out []Span) ([]Span, error) {
	n, ok, err := a.measure(text, pos)
	if err != nil || !ok || n == 0 {
		return out, err
	}
	return append(out, Span{pos, pos + n}), nil
}

// distrust finishes the search from pos without the engine.
func (a *Adapter) distrust(text []byte, pos int, out []Span) ([]Span, error) {
	log.Debugf("seqmatch: regex %q disagrees with its pattern at offset %d; scanning directly", a.expr, pos)
	return a.scan(text, pos, len(text)-a.minLen, out)
}

// scan measures every offset in [from, to].
func (a *Adapter) scan(text []byte, from, to int, out []Span) ([]Span, error) {
	for pos := from; pos <= to; pos++ {
		before := len(out)
		var err error
		if out, err = a.appendAt(text, pos, out); err != nil {
			return out, err
		}
		if a.nonOverlapping && len(out) > before {
			if a.anchorStart || a.anchorEnd {
				break
			}
			pos = out[len(out)-1].End - 1
		}
	}
	return out, nil
}

// anchored measures the offsets an anchored pattern can start at.
func (a *Adapter) anchored(text []byte) ([]Span, error) {
	from, to := 0, len(text)-a.minLen
	if a.anchorStart {
		to = min(to, 0)
	}
	if a.anchorEnd {
		from = max(from, len(text)-a.maxLen)
	}
	return a.scan(text, from, to, nil)
}

// Search reports every hit of FindAll to out.
func (a *Adapter) Search(text []byte, out *match.Emitter) error {
	spans, err := a.FindAll(text)
	for _, s := range spans {
		out.Emit(s.Start, s.End-s.Start, 0)
	}
	return err
}
