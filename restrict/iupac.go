package restrict

import "fmt"

// 4-bit base codes. A site position matches a sequence residue when their
// codes share a bit.
const (
	baseA uint8 = 1 << iota
	baseC
	baseG
	baseT
)

var siteCodes = [256]uint8{
	'A': baseA,
	'C': baseC,
	'G': baseG,
	'T': baseT,
	'U': baseT,
	'R': baseA | baseG,
	'Y': baseC | baseT,
	'S': baseC | baseG,
	'W': baseA | baseT,
	'K': baseG | baseT,
	'M': baseA | baseC,
	'B': baseC | baseG | baseT,
	'D': baseA | baseG | baseT,
	'H': baseA | baseC | baseT,
	'V': baseA | baseC | baseG,
	'N': baseA | baseC | baseG | baseT,
}

// residueCodes encodes sequence residues. Ambiguous residues never satisfy
// a site.
var residueCodes = [256]uint8{
	'A': baseA,
	'C': baseC,
	'G': baseG,
	'T': baseT,
	'U': baseT,
}

var complements = [256]byte{
	'A': 'T', 'T': 'A', 'U': 'A',
	'C': 'G', 'G': 'C',
	'R': 'Y', 'Y': 'R',
	'K': 'M', 'M': 'K',
	'S': 'S', 'W': 'W',
	'B': 'V', 'V': 'B',
	'D': 'H', 'H': 'D',
	'N': 'N',
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c
}

// Complement returns the IUPAC complement of base, or 0 if base is not an
// IUPAC nucleotide code. U complements to A.
func Complement(base byte) byte {
	return complements[upper(base)]
}

// ReverseComplement returns the reverse complement of an IUPAC site.
func ReverseComplement(site string) (string, error) {
	out := make([]byte, len(site))
	for i := 0; i < len(site); i++ {
		c := Complement(site[i])
		if c == 0 {
			return "", fmt.Errorf("%w: invalid IUPAC base %q in %q", ErrBadEnzyme, site[i], site)
		}
		out[len(site)-1-i] = c
	}
	return string(out), nil
}

// Encode converts an IUPAC site into 4-bit codes.
func Encode(site string) ([]uint8, error) {
	out := make([]uint8, len(site))
	for i := 0; i < len(site); i++ {
		m := siteCodes[upper(site[i])]
		if m == 0 {
			return nil, fmt.Errorf("%w: invalid IUPAC base %q in %q", ErrBadEnzyme, site[i], site)
		}
		out[i] = m
	}
	return out, nil
}

// IsPlain reports whether site consists of A, C, G and T only.
func IsPlain(site string) bool {
	for i := 0; i < len(site); i++ {
		switch upper(site[i]) {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}
	return true
}

// normalizeSequence upper-cases seq into a fresh buffer, folds U onto T and
// reports whether every residue is A, C, G or T.
func normalizeSequence(seq []byte) ([]byte, bool) {
	out := make([]byte, len(seq))
	plain := true
	for i, c := range seq {
		c = upper(c)
		if c == 'U' {
			c = 'T'
		}
		out[i] = c
		if residueCodes[c] == 0 {
			plain = false
		}
	}
	return out, plain
}

// matchCodes reports whether the site codes match text at start.
func matchCodes(codes []uint8, text []byte, start int) bool {
	if start < 0 || start+len(codes) > len(text) {
		return false
	}
	for i, m := range codes {
		if m&residueCodes[text[start+i]] == 0 {
			return false
		}
	}
	return true
}
