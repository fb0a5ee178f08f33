// Package pattern parses PROSITE-style motif text into a canonical token list
// and selects the search algorithm used for it.
//
// Supported grammar:
//   - residue letters (upper-cased; ambiguity letters become classes)
//   - [ABC] classes and {ABC} complements
//   - ? or the alphabet's dontcare letter (N or X) as a wildcard
//   - (n) repeats and (n,m) ranges following a token
//   - a leading < and a trailing > anchoring the motif to the sequence ends
//
// Spaces, hyphens and dots are separators and are ignored.
package pattern

import (
	"strings"
)

// Pattern is a classified motif. It is read-only after Classify returns.
type Pattern struct {
	// Source is the raw pattern text.
	Source string

	// Tokens is the canonical token list.
	Tokens []Token

	Protein    bool
	Mismatches int

	AnchorStart bool
	AnchorEnd   bool

	HasClass      bool
	HasComplement bool
	HasWildcard   bool
	HasRange      bool

	// RealLength counts canonical tokens; a class, complement or wildcard
	// counts as one position.
	RealLength int

	// Kind is the selected search algorithm.
	Kind Kind
}

// Classify parses raw and selects an algorithm for it.
//
// Example:
//
//	p, err := pattern.Classify("A[TG]C", false, 0)
//	// p.String() == "A[GT]C", p.Kind == pattern.Gonnet
func Classify(raw string, protein bool, mismatches int) (*Pattern, error) {
	if mismatches < 0 {
		return nil, ErrInvalidMismatch
	}
	p := &Pattern{
		Source:     raw,
		Protein:    protein,
		Mismatches: mismatches,
	}
	ps := &parser{src: stripSeparators(raw), raw: raw, protein: protein}
	if err := ps.parse(p); err != nil {
		return nil, err
	}
	if !p.HasRange {
		p.Tokens = expandRepeats(p.Tokens)
	}
	p.RealLength = len(p.Tokens)
	p.Kind = Select(p, mismatches)
	return p, nil
}

// String returns the canonical pattern text, including anchors.
func (p *Pattern) String() string {
	var b strings.Builder
	if p.AnchorStart {
		b.WriteByte('<')
	}
	for i := range p.Tokens {
		b.WriteString(p.Tokens[i].String())
	}
	if p.AnchorEnd {
		b.WriteByte('>')
	}
	return b.String()
}

// IsLiteral reports whether every token is a single literal residue.
func (p *Pattern) IsLiteral() bool {
	return !p.HasRange && !p.HasClass && !p.HasComplement && !p.HasWildcard
}

// Literal returns the residues of a literal pattern, or nil when the pattern
// has classes, wildcards or ranges.
func (p *Pattern) Literal() []byte {
	if !p.IsLiteral() {
		return nil
	}
	out := make([]byte, len(p.Tokens))
	for i := range p.Tokens {
		out[i] = p.Tokens[i].Residue
	}
	return out
}

// MinLength returns the shortest text a match can span.
func (p *Pattern) MinLength() int {
	n := 0
	for i := range p.Tokens {
		n += p.Tokens[i].Min
	}
	return n
}

// MaxLength returns the longest text a match can span.
func (p *Pattern) MaxLength() int {
	n := 0
	for i := range p.Tokens {
		n += p.Tokens[i].Max
	}
	return n
}

// AnchorsOK reports whether a hit at [start, start+length) in a text of n
// residues satisfies the pattern's anchors.
func (p *Pattern) AnchorsOK(start, length, n int) bool {
	if p.AnchorStart && start != 0 {
		return false
	}
	if p.AnchorEnd && start+length != n {
		return false
	}
	return true
}

func stripSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r', '-', '.':
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func expandRepeats(tokens []Token) []Token {
	n := 0
	for i := range tokens {
		n += tokens[i].Min
	}
	if n == len(tokens) {
		return tokens
	}
	out := make([]Token, 0, n)
	for _, t := range tokens {
		count := t.Min
		t.Min, t.Max = 1, 1
		for j := 0; j < count; j++ {
			out = append(out, t)
		}
	}
	return out
}

type parser struct {
	src     string
	raw     string
	protein bool
	pos     int
}

func (ps *parser) errorf(msg string) error {
	return &SyntaxError{Pattern: ps.raw, Pos: ps.pos, Msg: msg}
}

func (ps *parser) parse(p *Pattern) error {
	src := ps.src
	if src == "" {
		return ps.errorf("empty pattern")
	}
	if src[0] == '<' {
		p.AnchorStart = true
		ps.pos++
	}
	end := len(src)
	if end > ps.pos && src[end-1] == '>' {
		p.AnchorEnd = true
		end--
	}
	if ps.pos >= end {
		return ps.errorf("no residues between anchors")
	}

	for ps.pos < end {
		c := src[ps.pos]
		var tok Token
		switch {
		case c == '[' || c == '{':
			t, err := ps.parseSet(end)
			if err != nil {
				return err
			}
			tok = t
		case c == '?':
			tok = Token{Kind: Wildcard}
			ps.pos++
		case isLetter(c):
			tok = ps.letterToken(NormalizeResidue(c, ps.protein))
			ps.pos++
		case c == '<' || c == '>':
			return ps.errorf("anchor " + string(c) + " is only allowed at the pattern ends")
		case c == '(':
			return ps.errorf("repeat count without a preceding residue")
		case c == ']' || c == '}' || c == ')':
			return ps.errorf("unbalanced " + string(c))
		default:
			return ps.errorf("unexpected character " + string(c))
		}

		tok.Min, tok.Max = 1, 1
		if ps.pos < end && src[ps.pos] == '(' {
			lo, hi, err := ps.parseRepeat(end)
			if err != nil {
				return err
			}
			tok.Min, tok.Max = lo, hi
		}

		switch tok.Kind {
		case Class:
			p.HasClass = true
		case Complement:
			p.HasComplement = true
		case Wildcard:
			p.HasWildcard = true
		}
		if tok.IsRange() {
			p.HasRange = true
		}
		p.Tokens = append(p.Tokens, tok)
	}
	return nil
}

// letterToken turns a normalized residue outside brackets into a token.
func (ps *parser) letterToken(c byte) Token {
	if c == Dontcare(ps.protein) {
		return Token{Kind: Wildcard}
	}
	if members := Ambiguity(c, ps.protein); members != "" {
		var t Token
		t.Kind = Class
		for i := 0; i < len(members); i++ {
			t.Set.Add(members[i])
		}
		return t
	}
	return Token{Kind: Literal, Residue: c}
}

// parseSet reads a [...] class or {...} complement starting at ps.pos.
func (ps *parser) parseSet(end int) (Token, error) {
	open := ps.src[ps.pos]
	closer := byte(']')
	kind := Class
	if open == '{' {
		closer = '}'
		kind = Complement
	}
	start := ps.pos
	ps.pos++

	var t Token
	t.Kind = kind
	n := 0
	for {
		if ps.pos >= end {
			ps.pos = start
			return t, ps.errorf("unbalanced " + string(open))
		}
		c := ps.src[ps.pos]
		if c == closer {
			ps.pos++
			break
		}
		switch {
		case c == '[' || c == '{' || c == '(':
			return t, ps.errorf("nested bracket inside class")
		case c == ']' || c == '}':
			return t, ps.errorf("mismatched closing " + string(c))
		case !isLetter(c):
			return t, ps.errorf("non-alphabetic class member " + string(c))
		}
		r := NormalizeResidue(c, ps.protein)
		if r == Dontcare(ps.protein) {
			return t, ps.errorf("ambiguous dontcare " + string(r) + " inside class")
		}
		if members := Ambiguity(r, ps.protein); members != "" {
			for i := 0; i < len(members); i++ {
				t.Set.Add(members[i])
			}
		} else {
			t.Set.Add(r)
		}
		n++
		ps.pos++
	}
	if n == 0 {
		ps.pos = start
		return t, ps.errorf("empty class")
	}

	// A class of one residue is that residue.
	if kind == Class {
		if m := t.Set.Members(); len(m) == 1 {
			return Token{Kind: Literal, Residue: m[0]}, nil
		}
	}
	return t, nil
}

// parseRepeat reads (n) or (n,m) starting at ps.pos.
func (ps *parser) parseRepeat(end int) (int, int, error) {
	ps.pos++ // '('
	lo, ok := ps.parseInt(end)
	if !ok {
		return 0, 0, ps.errorf("missing repeat count")
	}
	hi := lo
	ranged := false
	if ps.pos < end && ps.src[ps.pos] == ',' {
		ps.pos++
		ranged = true
		if hi, ok = ps.parseInt(end); !ok {
			return 0, 0, ps.errorf("missing upper repeat bound")
		}
	}
	if ps.pos >= end || ps.src[ps.pos] != ')' {
		return 0, 0, ps.errorf("unbalanced (")
	}
	ps.pos++
	switch {
	case !ranged && lo == 0:
		return 0, 0, ps.errorf("repeat count must be positive")
	case hi < lo:
		return 0, 0, ps.errorf("range upper bound below lower bound")
	case hi == 0:
		return 0, 0, ps.errorf("range upper bound must be positive")
	}
	return lo, hi, nil
}

const maxRepeat = 1 << 20

func (ps *parser) parseInt(end int) (int, bool) {
	start := ps.pos
	n := 0
	for ps.pos < end && ps.src[ps.pos] >= '0' && ps.src[ps.pos] <= '9' {
		n = n*10 + int(ps.src[ps.pos]-'0')
		if n > maxRepeat {
			return 0, false
		}
		ps.pos++
	}
	return n, ps.pos > start
}
