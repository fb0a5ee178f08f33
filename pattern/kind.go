package pattern

import "math/bits"

// WordBits is the width of the machine word used by the bit-parallel engines.
// It bounds the pattern length those engines accept.
const WordBits = bits.UintSize

// MaxPerlebergLength bounds literal patterns searched with mismatches by the
// Baeza-Yates-Perleberg engine.
const MaxPerlebergLength = 128

// Kind identifies one of the seven search algorithms.
//
// The set is closed: every dispatch point switches over all kinds.
type Kind uint8

const (
	// Horspool is Boyer-Moore-Horspool for literals longer than a word.
	Horspool Kind = iota

	// Perleberg is Baeza-Yates-Perleberg for literals with mismatches.
	Perleberg

	// ShiftOr is the Shift-Or bit automaton for literals up to a word.
	ShiftOr

	// Gonnet is the Baeza-Yates-Gonnet class automaton for classes,
	// complements and wildcards up to a word, without mismatches.
	Gonnet

	// Regex delegates ranges and over-long patterns to an external regex engine.
	Regex

	// TarhioUkkonen is Tarhio-Ukkonen-Bleasby for classes and complements
	// with mismatches.
	TarhioUkkonen

	// BruteForce is the recursive backtracking fallback.
	BruteForce
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case Horspool:
		return "Horspool"
	case Perleberg:
		return "Perleberg"
	case ShiftOr:
		return "ShiftOr"
	case Gonnet:
		return "Gonnet"
	case Regex:
		return "Regex"
	case TarhioUkkonen:
		return "TarhioUkkonen"
	case BruteForce:
		return "BruteForce"
	default:
		return "Unknown"
	}
}

// Kinds lists every algorithm in selector order.
var Kinds = []Kind{Horspool, Perleberg, ShiftOr, Gonnet, Regex, TarhioUkkonen, BruteForce}

// Select chooses the search algorithm for a classified pattern.
//
// Rules are checked in order and the first one that applies wins:
//
//	literal, exact, longer than a word              -> Horspool
//	literal, mismatches, shorter than 128           -> Perleberg
//	literal, exact, up to a word                    -> ShiftOr
//	classes/wildcards, exact, up to a word          -> Gonnet
//	exact, range or longer than a word              -> Regex (BruteForce with wildcards)
//	classes/complements, mismatches, no range       -> TarhioUkkonen
//	anything else                                   -> BruteForce
func Select(p *Pattern, mismatches int) Kind {
	literal := !p.HasRange && !p.HasWildcard && !p.HasClass && !p.HasComplement
	classy := p.HasClass || p.HasComplement || p.HasWildcard

	switch {
	case literal && mismatches == 0 && p.RealLength > WordBits:
		return Horspool
	case literal && mismatches > 0 && p.RealLength < MaxPerlebergLength:
		return Perleberg
	case literal && mismatches == 0 && p.RealLength <= WordBits:
		return ShiftOr
	case !p.HasRange && classy && mismatches == 0 && p.RealLength <= WordBits:
		return Gonnet
	case mismatches == 0 && (p.HasRange || p.RealLength > WordBits):
		if p.HasWildcard {
			return BruteForce
		}
		return Regex
	case mismatches > 0 && !p.HasRange && (p.HasClass || p.HasComplement):
		return TarhioUkkonen
	default:
		return BruteForce
	}
}

// Accepts reports whether an engine of kind k can search p. Bit-parallel
// engines are bounded by the word size, the literal engines need a pattern
// without classes or ranges and only the approximate engines and BruteForce
// honour a mismatch budget.
func (k Kind) Accepts(p *Pattern) bool {
	literal := !p.HasRange && !p.HasWildcard && !p.HasClass && !p.HasComplement
	exact := p.Mismatches == 0
	switch k {
	case Horspool:
		return literal && exact
	case Perleberg:
		return literal && p.RealLength < MaxPerlebergLength
	case ShiftOr:
		return literal && exact && p.RealLength <= WordBits
	case Gonnet:
		return !p.HasRange && exact && p.RealLength <= WordBits
	case Regex:
		return exact
	case TarhioUkkonen:
		return !p.HasRange
	case BruteForce:
		return true
	default:
		return false
	}
}
