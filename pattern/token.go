package pattern

import (
	"strconv"
	"strings"
)

// ByteSet is a set of byte values.
type ByteSet [4]uint64

// Add inserts c.
func (s *ByteSet) Add(c byte) {
	s[c>>6] |= 1 << (c & 63)
}

// Contains reports whether c is in the set.
func (s *ByteSet) Contains(c byte) bool {
	return s[c>>6]&(1<<(c&63)) != 0
}

// Members returns the set elements in ascending order.
func (s *ByteSet) Members() string {
	var b strings.Builder
	for c := 0; c < 256; c++ {
		if s.Contains(byte(c)) {
			b.WriteByte(byte(c))
		}
	}
	return b.String()
}

// TokenKind is the kind of a single pattern position.
type TokenKind uint8

const (
	// Literal matches one residue.
	Literal TokenKind = iota
	// Class matches any residue in Set, written [ABC].
	Class
	// Complement matches any residue not in Set, written {ABC}.
	Complement
	// Wildcard matches any residue, written ?.
	Wildcard
)

// Token is one canonical pattern position with an optional repeat range.
//
// Min and Max are both 1 for an unrepeated token. A token with Min == Max > 1
// only survives classification when the pattern also has a true range;
// otherwise it is expanded into Min copies.
type Token struct {
	Kind    TokenKind
	Residue byte
	Set     ByteSet
	Min     int
	Max     int
}

// Matches reports whether the text character c satisfies the token.
//
// A complement token is satisfied by characters outside its set, so a text
// character inside the set counts as a mismatch.
func (t *Token) Matches(c byte) bool {
	switch t.Kind {
	case Literal:
		return c == t.Residue
	case Class:
		return t.Set.Contains(c)
	case Complement:
		return !t.Set.Contains(c)
	default:
		return true
	}
}

// IsRange reports whether the token repeats a variable number of times.
func (t *Token) IsRange() bool {
	return t.Min != t.Max
}

// String writes the token in canonical form.
func (t *Token) String() string {
	var b strings.Builder
	switch t.Kind {
	case Literal:
		b.WriteByte(t.Residue)
	case Class:
		b.WriteByte('[')
		b.WriteString(t.Set.Members())
		b.WriteByte(']')
	case Complement:
		b.WriteByte('{')
		b.WriteString(t.Set.Members())
		b.WriteByte('}')
	case Wildcard:
		b.WriteByte('?')
	}
	switch {
	case t.Min != t.Max:
		b.WriteString("(" + strconv.Itoa(t.Min) + "," + strconv.Itoa(t.Max) + ")")
	case t.Min != 1:
		b.WriteString("(" + strconv.Itoa(t.Min) + ")")
	}
	return b.String()
}
