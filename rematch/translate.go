// Package rematch runs patterns with variable-length ranges through a
// regular expression engine. Patterns are translated to regex syntax and
// compiled with coregex unless another compiler is supplied.
package rematch

import (
	"strconv"
	"strings"

	"github.com/coregx/seqmatch/pattern"
)

// Translate renders p as a regular expression over upper-case residues.
//
// Literal residues are emitted as is, classes as bracket expressions,
// complements as the letters A-Z minus the excluded members, and wildcards
// as [A-Z]. Repeats become {n} or {n,m}. Anchors become ^ and $.
func Translate(p *pattern.Pattern) string {
	var b strings.Builder
	if p.AnchorStart {
		b.WriteByte('^')
	}
	for i := range p.Tokens {
		writeToken(&b, &p.Tokens[i])
	}
	if p.AnchorEnd {
		b.WriteByte('$')
	}
	return b.String()
}

func writeToken(b *strings.Builder, t *pattern.Token) {
	switch t.Kind {
	case pattern.Literal:
		b.WriteByte(t.Residue)
	case pattern.Class:
		b.WriteByte('[')
		b.WriteString(t.Set.Members())
		b.WriteByte(']')
	case pattern.Complement:
		var keep []byte
		for c := byte('A'); c <= 'Z'; c++ {
			if !t.Set.Contains(c) {
				keep = append(keep, c)
			}
		}
		if len(keep) == 0 {
			// Matches nothing.
			b.WriteString(`[^\x00-\x{10FFFF}]`)
			break
		}
		b.WriteByte('[')
		b.Write(keep)
		b.WriteByte(']')
	case pattern.Wildcard:
		b.WriteString("[A-Z]")
	}
	switch {
	case t.Min == 1 && t.Max == 1:
	case t.Min == t.Max:
		b.WriteString("{" + strconv.Itoa(t.Min) + "}")
	default:
		b.WriteString("{" + strconv.Itoa(t.Min) + "," + strconv.Itoa(t.Max) + "}")
	}
}
