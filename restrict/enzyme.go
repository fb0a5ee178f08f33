// Package restrict finds restriction enzyme sites on both strands of a
// nucleotide sequence and turns them into cut positions.
//
// Sites use IUPAC ambiguity codes matched through 4-bit base sets. Circular
// sequences wrap sites and cuts across the origin. Hits are post-processed
// in order: mirror removal, cut-count and end-type filtering, isoschizomer
// reduction and sorting.
package restrict

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadEnzyme is returned for an enzyme record that cannot be used.
var ErrBadEnzyme = errors.New("bad enzyme")

// Enzyme is one restriction enzyme record.
//
// Cut offsets count residues from the start of the site: a positive offset c
// cuts after the c-th site residue, a negative one cuts |c| residues
// upstream of the site. Cut1 and Cut3 are on the strand the site is written
// on, Cut2 and Cut4 on its complement. Only enzymes with four cuts use Cut3
// and Cut4.
type Enzyme struct {
	Name    string
	Pattern string
	Len     int
	NCuts   int
	Blunt   bool
	Cut1    int
	Cut2    int
	Cut3    int
	Cut4    int
}

// Validate checks the record. The pattern is upper-cased in place.
func (e *Enzyme) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("%w: missing name", ErrBadEnzyme)
	}
	e.Pattern = strings.ToUpper(e.Pattern)
	if e.Pattern == "" {
		return fmt.Errorf("%w: %s: empty pattern", ErrBadEnzyme, e.Name)
	}
	if _, err := Encode(e.Pattern); err != nil {
		return fmt.Errorf("%s: %w", e.Name, err)
	}
	if e.Len == 0 {
		e.Len = len(e.Pattern)
	}
	if e.Len != len(e.Pattern) {
		return fmt.Errorf("%w: %s: length %d does not match pattern %s", ErrBadEnzyme, e.Name, e.Len, e.Pattern)
	}
	if e.NCuts != 2 && e.NCuts != 4 {
		return fmt.Errorf("%w: %s: cut count %d, want 2 or 4", ErrBadEnzyme, e.Name, e.NCuts)
	}
	cuts := []int{e.Cut1, e.Cut2}
	if e.NCuts == 4 {
		cuts = append(cuts, e.Cut3, e.Cut4)
	}
	for _, c := range cuts {
		if c == 0 {
			return fmt.Errorf("%w: %s: zero cut offset", ErrBadEnzyme, e.Name)
		}
	}
	return nil
}

// Ambiguous reports whether the site contains ambiguity codes.
func (e *Enzyme) Ambiguous() bool {
	return !IsPlain(e.Pattern)
}
