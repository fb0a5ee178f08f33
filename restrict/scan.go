package restrict

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/coregx/seqmatch/exact"
	"github.com/coregx/seqmatch/log"
	"github.com/coregx/seqmatch/match"
)

// Strand orientations a site is scanned in.
const (
	forward = iota
	reverse
)

// site is a compiled enzyme.
type site struct {
	enzyme Enzyme
	codes  [2][]uint8
	auto   [2]*exact.Automaton // nil when the site is longer than a word
	plain  bool
	rc     string
}

func compileSite(e Enzyme) (site, error) {
	s := site{enzyme: e, plain: IsPlain(e.Pattern)}
	rc, err := ReverseComplement(e.Pattern)
	if err != nil {
		return s, err
	}
	s.rc = rc
	for o, pat := range [2]string{e.Pattern, rc} {
		codes, err := Encode(pat)
		if err != nil {
			return s, err
		}
		s.codes[o] = codes
		auto, err := exact.NewAutomaton(len(codes), func(pos int, c byte) bool {
			return codes[pos]&residueCodes[c] != 0
		})
		if err == nil {
			s.auto[o] = auto
		}
	}
	return s, nil
}

// Scanner is a compiled enzyme set. It is read-only after construction and
// may scan many sequences concurrently.
type Scanner struct {
	sites []site
	opts  Options
	pre   *prefilter
}

// NewScanner validates the options and enzymes and compiles the sites of
// the enzymes the options admit.
func NewScanner(enzymes []Enzyme, opts Options) (*Scanner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s := &Scanner{opts: opts}
	for _, e := range enzymes {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if !opts.AmbiguityAllowed && e.Ambiguous() {
			continue
		}
		if (e.Blunt && !opts.AllowBlunt) || (!e.Blunt && !opts.AllowSticky) {
			continue
		}
		st, err := compileSite(e)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}
		s.sites = append(s.sites, st)
	}
	if opts.Prefilter {
		pre, err := newPrefilter(s.sites)
		if err != nil {
			log.Warnf("restrict: site prefilter disabled: %v", err)
		} else {
			s.pre = pre
		}
	}
	return s, nil
}

// Scan is a convenience wrapper around NewScanner and Scanner.Scan.
func Scan(ctx context.Context, enzymes []Enzyme, name string, seq []byte, opts Options) ([]match.Match, error) {
	s, err := NewScanner(enzymes, opts)
	if err != nil {
		return nil, err
	}
	return s.Scan(ctx, name, seq)
}

// Len returns the number of enzymes the scanner searches for.
func (s *Scanner) Len() int {
	return len(s.sites)
}

// Scan finds the sites of every enzyme in seq on both strands and returns
// the post-processed hits. Match.Name is the sequence name, Match.Code the
// enzyme name and Match.Pattern its site.
func (s *Scanner) Scan(ctx context.Context, name string, seq []byte) ([]match.Match, error) {
	text, plain := normalizeSequence(seq)
	n := len(text)
	if n == 0 || len(s.sites) == 0 {
		return nil, nil
	}
	if s.opts.Circular && n > 1 {
		text = append(text, text[:n-1]...)
	}

	var candidates []int
	usePre := s.pre != nil && plain
	if usePre {
		candidates = s.pre.candidates(text, n)
		log.Debugf("restrict: prefilter found %d candidate site starts in %s", len(candidates), name)
	}

	perSite := make([][]match.Match, len(s.sites))
	g, ctx := errgroup.WithContext(ctx)
	limit := s.opts.Concurrency
	if limit == 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(limit)
	for i := range s.sites {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			st := &s.sites[i]
			var hits []match.Match
			if usePre && st.plain {
				hits = s.scanCandidates(st, name, text, n, candidates)
			} else {
				hits = s.scanSite(st, name, text, n)
			}
			perSite[i] = removeMirrors(hits)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var hits []match.Match
	for _, hs := range perSite {
		if len(hs) < s.opts.MinCuts || len(hs) > s.opts.MaxCuts {
			continue
		}
		hits = append(hits, hs...)
	}
	if !s.opts.AllIsoschizomers {
		hits = reduceIsoschizomers(hits)
	}
	if b := s.opts.Begin; b != 0 {
		for i := range hits {
			h := &hits[i]
			h.Start += b
			h.Cut1 += b
			h.Cut2 += b
			if h.NCuts == 4 {
				h.Cut3 += b
				h.Cut4 += b
			}
		}
	}
	sortHits(hits, s.opts.SortByName)
	return hits, nil
}

// scanSite finds every start below n where the site matches text, in both
// orientations.
func (s *Scanner) scanSite(st *site, name string, text []byte, n int) []match.Match {
	var hits []match.Match
	var buf [32]int
	m := st.enzyme.Len
	for o := forward; o <= reverse; o++ {
		if a := st.auto[o]; a != nil {
			for _, end := range a.Ends(text, buf[:0]) {
				if start := end - m + 1; start < n {
					hits = s.appendHit(hits, st, name, start, n, o == forward)
				}
			}
			continue
		}
		for start := 0; start < n && start+m <= len(text); start++ {
			if matchCodes(st.codes[o], text, start) {
				hits = s.appendHit(hits, st, name, start, n, o == forward)
			}
		}
	}
	return hits
}

// scanCandidates verifies the site only at prefilter candidates.
func (s *Scanner) scanCandidates(st *site, name string, text []byte, n int, candidates []int) []match.Match {
	var hits []match.Match
	for o := forward; o <= reverse; o++ {
		for _, start := range candidates {
			if matchCodes(st.codes[o], text, start) {
				hits = s.appendHit(hits, st, name, start, n, o == forward)
			}
		}
	}
	return hits
}

// appendHit computes the cuts of a site at start on a sequence of n
// residues. On a linear sequence a hit with a cut outside the sequence is
// dropped; on a circular one cuts wrap around and are flagged.
func (s *Scanner) appendHit(hits []match.Match, st *site, name string, start, n int, fwd bool) []match.Match {
	e := &st.enzyme
	h := match.Match{
		Name:    name,
		Start:   start,
		Length:  e.Len,
		Code:    e.Name,
		Pattern: e.Pattern,
		Forward: fwd,
		NCuts:   e.NCuts,
	}

	fcut := func(c int) int {
		if c > 0 {
			return start + c - 1
		}
		return start + c
	}
	rcut := func(c int) int {
		if c > 0 {
			return start + e.Len - 1 - c
		}
		return start + e.Len - 2 - c
	}
	var cuts [4]int
	switch {
	case fwd:
		cuts = [4]int{fcut(e.Cut1), fcut(e.Cut2), fcut(e.Cut3), fcut(e.Cut4)}
	case e.NCuts == 4:
		// The downstream pair lands upstream on the other strand.
		cuts = [4]int{rcut(e.Cut4), rcut(e.Cut3), rcut(e.Cut2), rcut(e.Cut1)}
	default:
		cuts = [4]int{rcut(e.Cut2), rcut(e.Cut1)}
	}

	for i := 0; i < e.NCuts; i++ {
		c := cuts[i]
		if c >= 0 && c < n {
			continue
		}
		if !s.opts.Circular {
			return hits
		}
		c %= n
		if c < 0 {
			c += n
		}
		cuts[i] = c
		if i < 2 {
			h.Circ12 = true
		} else {
			h.Circ34 = true
		}
	}
	h.Cut1, h.Cut2 = cuts[0], cuts[1]
	if e.NCuts == 4 {
		h.Cut3, h.Cut4 = cuts[2], cuts[3]
	}
	return append(hits, h)
}
