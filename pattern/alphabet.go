package pattern

// Dontcare letters. They become a single wildcard token.
const (
	NucleotideDontcare = 'N'
	ProteinDontcare    = 'X'
)

// nucleotideCodes maps IUB ambiguity letters to the bases they stand for.
var nucleotideCodes = map[byte]string{
	'R': "AG",
	'Y': "CT",
	'S': "CG",
	'W': "AT",
	'K': "GT",
	'M': "AC",
	'B': "CGT",
	'D': "AGT",
	'H': "ACT",
	'V': "ACG",
}

// proteinCodes maps protein ambiguity letters to the residues they stand for.
var proteinCodes = map[byte]string{
	'B': "DN",
	'Z': "EQ",
	'J': "IL",
}

// Dontcare returns the wildcard letter of the alphabet.
func Dontcare(protein bool) byte {
	if protein {
		return ProteinDontcare
	}
	return NucleotideDontcare
}

// Ambiguity returns the residues an ambiguity letter expands to, or "" when
// c is not an ambiguity letter of the alphabet.
func Ambiguity(c byte, protein bool) string {
	if protein {
		return proteinCodes[c]
	}
	return nucleotideCodes[c]
}

// NormalizeResidue upper-cases c and, for nucleotides, folds U onto T.
func NormalizeResidue(c byte, protein bool) byte {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if !protein && c == 'U' {
		c = 'T'
	}
	return c
}

// NormalizeText returns an upper-cased copy of text with U folded onto T for
// nucleotides. The input is never modified.
func NormalizeText(text []byte, protein bool) []byte {
	out := make([]byte, len(text))
	for i, c := range text {
		out[i] = NormalizeResidue(c, protein)
	}
	return out
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
