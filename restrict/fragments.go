package restrict

import (
	"slices"

	"github.com/coregx/seqmatch/match"
)

// CutPositions returns the sorted, unique top-strand cut positions of hits,
// shifted back by begin. A cut at p falls after residue p.
func CutPositions(hits []match.Match, begin int) []int {
	var out []int
	for _, h := range hits {
		out = append(out, h.Cut1-begin)
		if h.NCuts == 4 {
			out = append(out, h.Cut3-begin)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Fragments returns the lengths of the fragments a digest leaves on a
// sequence of length residues, in sequence order. On a circular sequence
// the fragment spanning the origin comes last; a circular sequence cut once
// yields one fragment of full length. Cuts at the ends of a linear molecule
// do not split it.
func Fragments(hits []match.Match, length int, circular bool, begin int) []int {
	var bounds []int
	for _, p := range CutPositions(hits, begin) {
		b := p + 1
		if circular {
			b %= length
		} else if b <= 0 || b >= length {
			continue
		}
		bounds = append(bounds, b)
	}
	slices.Sort(bounds)
	bounds = slices.Compact(bounds)
	if circular && len(bounds) > 0 {
		var out []int
		for i := 1; i < len(bounds); i++ {
			out = append(out, bounds[i]-bounds[i-1])
		}
		return append(out, length-bounds[len(bounds)-1]+bounds[0])
	}
	var out []int
	prev := 0
	for _, b := range bounds {
		out = append(out, b-prev)
		prev = b
	}
	return append(out, length-prev)
}
