package meta

import (
	"errors"
	"fmt"

	"github.com/coregx/seqmatch/approx"
	"github.com/coregx/seqmatch/bitclass"
	"github.com/coregx/seqmatch/brute"
	"github.com/coregx/seqmatch/exact"
	"github.com/coregx/seqmatch/log"
	"github.com/coregx/seqmatch/match"
	"github.com/coregx/seqmatch/pattern"
	"github.com/coregx/seqmatch/rematch"
)

// ErrKindMismatch is returned by CompileKind when the requested algorithm
// cannot search the pattern.
var ErrKindMismatch = errors.New("algorithm cannot search pattern")

// searcher is implemented by every engine. Only the engines that backtrack
// can fail.
type searcher interface {
	Search(text []byte, out *match.Emitter) error
}

// infallible adapts the engines whose search cannot fail.
type infallible struct {
	search func(text []byte, out *match.Emitter)
}

func (s infallible) Search(text []byte, out *match.Emitter) error {
	s.search(text, out)
	return nil
}

// Engine is a compiled pattern bound to its search algorithm. It is
// read-only after construction and safe for concurrent use.
type Engine struct {
	pattern  *pattern.Pattern
	kind     pattern.Kind
	config   Config
	searcher searcher
}

// Compile classifies raw and builds the engine selected for it.
func Compile(raw string, protein bool, mismatches int, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	p, err := pattern.Classify(raw, protein, mismatches)
	if err != nil {
		return nil, err
	}
	return NewEngine(p, config)
}

// NewEngine builds the engine selected by p.Kind.
func NewEngine(p *pattern.Pattern, config Config) (*Engine, error) {
	return CompileKind(p, p.Kind, config)
}

// CompileKind builds an engine of the given kind for p, overriding the
// selector. It fails with ErrKindMismatch when the kind cannot search p.
func CompileKind(p *pattern.Pattern, kind pattern.Kind, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if !kind.Accepts(p) {
		return nil, fmt.Errorf("%w: %v for %q", ErrKindMismatch, kind, p.String())
	}

	e := &Engine{pattern: p, kind: kind, config: config}
	var err error
	switch kind {
	case pattern.Horspool:
		var h *exact.Horspool
		if h, err = exact.NewHorspool(p); err == nil {
			e.searcher = infallible{h.Search}
		}
	case pattern.Perleberg:
		var pb *approx.Perleberg
		if pb, err = approx.NewPerleberg(p); err == nil {
			e.searcher = infallible{pb.Search}
		}
	case pattern.ShiftOr:
		var so *exact.ShiftOr
		if so, err = exact.NewShiftOr(p); err == nil {
			e.searcher = infallible{so.Search}
		}
	case pattern.Gonnet:
		var g *bitclass.Gonnet
		if g, err = bitclass.NewGonnet(p); err == nil {
			e.searcher = infallible{g.Search}
		}
	case pattern.Regex:
		e.searcher, err = e.buildRegex()
	case pattern.TarhioUkkonen:
		var tu *approx.TarhioUkkonen
		if tu, err = approx.NewTarhioUkkonen(p); err == nil {
			e.searcher = infallible{tu.Search}
		}
	case pattern.BruteForce:
		e.searcher = brute.New(p, config.MaxRecursionDepth)
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %d", ErrKindMismatch, kind)
	}
	if err != nil {
		return nil, err
	}

	log.Debugf("seqmatch: pattern %q compiled for %v", p.String(), e.kind)
	return e, nil
}

// buildRegex compiles the regex adapter, or the backtracker when the regex
// engine is disabled or rejects the translation.
func (e *Engine) buildRegex() (searcher, error) {
	if !e.config.EnableRegex {
		e.kind = pattern.BruteForce
		return brute.New(e.pattern, e.config.MaxRecursionDepth), nil
	}
	a, err := rematch.New(e.pattern, e.config.RegexCompiler)
	if err != nil {
		log.Warnf("seqmatch: %v; falling back to %v", err, pattern.BruteForce)
		e.kind = pattern.BruteForce
		return brute.New(e.pattern, e.config.MaxRecursionDepth), nil
	}
	a.SetNonOverlapping(e.config.NonOverlappingRegex)
	return a, nil
}

// Pattern returns the classified pattern.
func (e *Engine) Pattern() *pattern.Pattern {
	return e.pattern
}

// Kind returns the algorithm the engine runs. It differs from
// Pattern().Kind only after a regex fallback or a CompileKind override.
func (e *Engine) Kind() pattern.Kind {
	return e.kind
}

// Search finds the pattern in text and returns the hits in discovery order.
// Hit starts are zero-based offsets plus begin. Text is matched
// case-insensitively and, for nucleotides, with U read as T.
//
// On error the hits found before the failure are returned with it.
func (e *Engine) Search(name string, text []byte, begin int) ([]match.Match, error) {
	var l match.List
	err := e.SearchTo(&l, name, text, begin)
	return l.Drain(), err
}

// SearchTo appends hits to l.
func (e *Engine) SearchTo(l *match.List, name string, text []byte, begin int) error {
	norm := pattern.NormalizeText(text, e.pattern.Protein)
	return e.searcher.Search(norm, match.NewEmitter(name, begin, l))
}
