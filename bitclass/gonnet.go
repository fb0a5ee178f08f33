// Package bitclass implements the Baeza-Yates-Gonnet class automaton: the
// Shift-Or automaton generalised to classes, complements and wildcards.
package bitclass

import (
	"github.com/coregx/seqmatch/exact"
	"github.com/coregx/seqmatch/match"
	"github.com/coregx/seqmatch/pattern"
)

// Gonnet is a compiled class automaton.
type Gonnet struct {
	auto        *exact.Automaton
	anchorStart bool
	anchorEnd   bool
}

// NewGonnet compiles a pattern without ranges and mismatches whose length
// fits in a machine word.
//
// Bit j of a character's mask stays set when the character is not permitted
// at position j: a class clears it for its members, a complement for every
// character except its members and a wildcard for all characters.
func NewGonnet(p *pattern.Pattern) (*Gonnet, error) {
	if p.HasRange || p.Mismatches != 0 {
		return nil, &pattern.LengthError{Kind: pattern.Gonnet, Length: p.RealLength, Limit: pattern.WordBits}
	}
	tokens := p.Tokens
	a, err := exact.NewAutomaton(len(tokens), func(pos int, c byte) bool {
		return tokens[pos].Matches(c)
	})
	if err != nil {
		return nil, err
	}
	return &Gonnet{auto: a, anchorStart: p.AnchorStart, anchorEnd: p.AnchorEnd}, nil
}

// Search reports every occurrence of the pattern in text.
func (g *Gonnet) Search(text []byte, out *match.Emitter) {
	exact.SearchAnchored(g.auto, text, g.anchorStart, g.anchorEnd, out)
}
