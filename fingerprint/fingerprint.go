// Package fingerprint scores protein sequences against fingerprints: ordered
// groups of gapless scoring matrices, one per conserved motif element.
//
// Each element is slid along the sequence and every offset whose percentage
// score reaches the element's threshold is a hit. A fingerprint as a whole
// reports whether all of its elements were found and whether their best
// hits appear in element order.
package fingerprint

import (
	"errors"
	"fmt"

	"github.com/coregx/seqmatch/match"
)

// Alphabet is the number of residue letters a matrix column scores.
const Alphabet = 26

// ErrBadMatrix is returned for an element that cannot be scored.
var ErrBadMatrix = errors.New("bad fingerprint matrix")

// Element is one gapless motif of a fingerprint.
//
// Weights[j][c-'A'] scores residue c at position j. Max is the best
// attainable score; when zero it is computed from the weights.
type Element struct {
	Weights   [][Alphabet]int
	Max       int
	Threshold int // minimum percentage score of a hit
}

// Len returns the element width.
func (e *Element) Len() int {
	return len(e.Weights)
}

func (e *Element) maxScore() int {
	if e.Max != 0 {
		return e.Max
	}
	total := 0
	for j := range e.Weights {
		best := e.Weights[j][0]
		for _, w := range e.Weights[j][1:] {
			best = max(best, w)
		}
		total += best
	}
	return total
}

// Fingerprint is a named, ordered set of elements.
type Fingerprint struct {
	Code      string
	Accession string
	Title     string
	Elements  []Element
}

// Validate checks that every element can be scored.
func (fp *Fingerprint) Validate() error {
	if len(fp.Elements) == 0 {
		return fmt.Errorf("%w: %s: no elements", ErrBadMatrix, fp.Code)
	}
	for i := range fp.Elements {
		e := &fp.Elements[i]
		if e.Len() == 0 {
			return fmt.Errorf("%w: %s element %d: empty", ErrBadMatrix, fp.Code, i)
		}
		if e.maxScore() <= 0 {
			return fmt.Errorf("%w: %s element %d: maximum score %d", ErrBadMatrix, fp.Code, i, e.maxScore())
		}
	}
	return nil
}

// Result is the outcome of scanning one sequence with one fingerprint.
type Result struct {
	Hits []match.Match

	// All is set when every element has at least one hit.
	All bool

	// Ordered is set when All holds and the best hits of the elements
	// appear in element order.
	Ordered bool
}

// encode maps residues to matrix rows; -1 marks a residue no row scores.
func encode(seq []byte) []int8 {
	out := make([]int8, len(seq))
	for i, c := range seq {
		switch {
		case c >= 'A' && c <= 'Z':
			out[i] = int8(c - 'A')
		case c >= 'a' && c <= 'z':
			out[i] = int8(c - 'a')
		default:
			out[i] = -1
		}
	}
	return out
}

// Scan scores seq against every element of fp. Hits are grouped by element
// in element order, then by offset. Match.Element is the zero-based element
// index and Match.Score the percentage score.
//
// allowOverlap relaxes the order test: best hits need only start after the
// previous element's best hit instead of after its end.
func (fp *Fingerprint) Scan(name string, seq []byte, allowOverlap bool) (Result, error) {
	if err := fp.Validate(); err != nil {
		return Result{}, err
	}
	codes := encode(seq)

	var res Result
	best := make([]int, len(fp.Elements))
	found := 0
	for ei := range fp.Elements {
		e := &fp.Elements[ei]
		m, maxScore := e.Len(), e.maxScore()
		best[ei] = -1
		bestScore := 0
		for i := 0; i+m <= len(codes); i++ {
			sum := 0
			for j := 0; j < m; j++ {
				if c := codes[i+j]; c >= 0 {
					sum += e.Weights[j][c]
				}
			}
			pc := sum * 100 / maxScore
			if pc < e.Threshold {
				continue
			}
			res.Hits = append(res.Hits, match.Match{
				Name:      name,
				Start:     i,
				Length:    m,
				Code:      fp.Code,
				Accession: fp.Accession,
				Title:     fp.Title,
				Score:     pc,
				Element:   ei,
			})
			if best[ei] < 0 || pc > bestScore {
				best[ei], bestScore = i, pc
			}
		}
		if best[ei] >= 0 {
			found++
		}
	}

	res.All = found == len(fp.Elements)
	if !res.All {
		return res, nil
	}
	res.Ordered = true
	for ei := 1; ei < len(best); ei++ {
		prev := best[ei-1]
		if !allowOverlap {
			prev += fp.Elements[ei-1].Len() - 1
		}
		if best[ei] <= prev {
			res.Ordered = false
			break
		}
	}
	return res, nil
}
