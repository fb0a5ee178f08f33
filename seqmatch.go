// Package seqmatch finds PROSITE-style motifs in nucleotide and protein
// sequences.
//
// A pattern is classified once and bound to the fastest of seven search
// algorithms that can serve it:
//   - Boyer-Moore-Horspool and Shift-Or for exact literals
//   - Baeza-Yates-Perleberg for literals with mismatches
//   - Baeza-Yates-Gonnet for classes and wildcards without mismatches
//   - Tarhio-Ukkonen-Bleasby for classes with mismatches
//   - a regular expression engine for variable-length ranges
//   - a recursive backtracker for everything else
//
// Basic usage:
//
//	p, err := seqmatch.Compile("A[TG]C", false, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	hits, err := p.Search("seq1", []byte("AGCATC"), 0)
//	// hits start at 0 and 3
//
// Every alignment is reported, overlapping ones included. Sequence text is
// matched case-insensitively and, for nucleotides, U is read as T.
//
// Restriction digests and fingerprint scans live in the restrict and
// fingerprint packages.
package seqmatch

import (
	"github.com/coregx/seqmatch/match"
	"github.com/coregx/seqmatch/meta"
	"github.com/coregx/seqmatch/pattern"
)

// Pattern is a compiled motif.
//
// A Pattern is safe to use concurrently from multiple goroutines.
//
// Example:
//
//	p := seqmatch.MustCompile("C-x(2)-C", true, 0)
//	hits, _ := p.FindAll([]byte("MCAACK"))
type Pattern struct {
	engine *meta.Engine
}

// Compile classifies and compiles a pattern.
//
// protein selects the protein alphabet (dontcare X, ambiguity codes B Z J)
// instead of the nucleotide one (dontcare N, IUB codes). mismatches is the
// substitution budget; it must not be negative.
//
// Example:
//
//	p, err := seqmatch.Compile("GAATTC", false, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(raw string, protein bool, mismatches int) (*Pattern, error) {
	return CompileWithConfig(raw, protein, mismatches, meta.DefaultConfig())
}

// MustCompile compiles a pattern and panics if it fails.
//
// This is useful for patterns known to be valid at compile time.
func MustCompile(raw string, protein bool, mismatches int) *Pattern {
	p, err := Compile(raw, protein, mismatches)
	if err != nil {
		panic("seqmatch: Compile(`" + raw + "`): " + err.Error())
	}
	return p
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// Example:
//
//	config := seqmatch.DefaultConfig()
//	config.EnableRegex = false
//	p, err := seqmatch.CompileWithConfig("AC(2,4)G", false, 0, config)
func CompileWithConfig(raw string, protein bool, mismatches int, config meta.Config) (*Pattern, error) {
	engine, err := meta.Compile(raw, protein, mismatches, config)
	if err != nil {
		return nil, err
	}
	return &Pattern{engine: engine}, nil
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// Search returns every hit in text. Each hit is stamped with name and its
// Start is the zero-based offset plus begin.
//
// Only patterns searched by the backtracker can fail, with
// brute.ErrRecursionLimitExceeded; the hits found so far are returned
// alongside the error.
func (p *Pattern) Search(name string, text []byte, begin int) ([]match.Match, error) {
	return p.engine.Search(name, text, begin)
}

// FindAll is Search with an empty name and zero-based coordinates.
func (p *Pattern) FindAll(text []byte) ([]match.Match, error) {
	return p.engine.Search("", text, 0)
}

// SearchTo appends hits to l, so that several patterns or sequences can
// share one collection.
func (p *Pattern) SearchTo(l *match.List, name string, text []byte, begin int) error {
	return p.engine.SearchTo(l, name, text, begin)
}

// Kind returns the algorithm the pattern is searched with.
func (p *Pattern) Kind() pattern.Kind {
	return p.engine.Kind()
}

// String returns the canonical pattern text.
func (p *Pattern) String() string {
	return p.engine.Pattern().String()
}

// RealLength returns the number of canonical token positions.
func (p *Pattern) RealLength() int {
	return p.engine.Pattern().RealLength
}

// Anchors reports whether the pattern is anchored to the sequence start and
// end.
func (p *Pattern) Anchors() (start, end bool) {
	q := p.engine.Pattern()
	return q.AnchorStart, q.AnchorEnd
}

// Mismatches returns the substitution budget.
func (p *Pattern) Mismatches() int {
	return p.engine.Pattern().Mismatches
}
