// Package match defines the hit record shared by every search engine and
// client, and the ordered collection hits are delivered in.
package match

import "fmt"

// Match is a single hit of a motif in a sequence.
//
// Start is the zero-based offset of the hit in the searched text plus the
// begin displacement supplied by the caller. Engines that match exactly
// always report Mismatches == 0.
//
// Restriction hits additionally carry strand, cut and circular-wrap data;
// fingerprint hits carry Element and Score.
type Match struct {
	Name   string // sequence or entry name
	Start  int
	Length int

	Code      string // motif or enzyme identifier
	Accession string
	Title     string
	Pattern   string // recognition pattern or canonical motif

	Score      int
	Mismatches int
	Element    int // fingerprint element index

	Forward bool // restriction: hit on the forward strand
	NCuts   int  // restriction: 2 or 4 cut positions are set
	Cut1    int
	Cut2    int
	Cut3    int
	Cut4    int
	Circ12  bool // Cut1 or Cut2 wrapped around a circular sequence
	Circ34  bool // Cut3 or Cut4 wrapped around a circular sequence

	Isoschizomers []string
}

// New creates a plain pattern hit.
func New(name string, start, length, mismatches int) Match {
	return Match{
		Name:       name,
		Start:      start,
		Length:     length,
		Mismatches: mismatches,
	}
}

// End returns the exclusive end coordinate of the hit.
func (m Match) End() int {
	return m.Start + m.Length
}

// Last returns the inclusive end coordinate of the hit.
func (m Match) Last() int {
	return m.Start + m.Length - 1
}

// Contains reports whether pos lies within the hit.
func (m Match) Contains(pos int) bool {
	return pos >= m.Start && pos < m.End()
}

// Overlaps reports whether m and o share at least one position.
func (m Match) Overlaps(o Match) bool {
	return m.Start < o.End() && o.Start < m.End()
}

// String returns a short human-readable form of the hit.
func (m Match) String() string {
	s := fmt.Sprintf("%s:%d-%d", m.Name, m.Start, m.Last())
	if m.Code != "" {
		s = m.Code + "@" + s
	}
	if m.Mismatches > 0 {
		s += fmt.Sprintf(" mm=%d", m.Mismatches)
	}
	return s
}

// List is an ordered hit collection. Insertion order is discovery order.
//
// The zero value is an empty list ready for use.
type List struct {
	items []Match
}

// NewList creates a list with room for n hits.
func NewList(n int) *List {
	return &List{items: make([]Match, 0, n)}
}

// Push appends m to the list.
func (l *List) Push(m Match) {
	l.items = append(l.items, m)
}

// Len returns the number of hits in the list.
func (l *List) Len() int {
	return len(l.items)
}

// At returns the i-th hit.
func (l *List) At(i int) Match {
	return l.items[i]
}

// Items returns the hits without copying. The slice is only valid until the
// next Push or Drain.
func (l *List) Items() []Match {
	return l.items
}

// Drain returns all hits and empties the list.
func (l *List) Drain() []Match {
	out := l.items
	l.items = nil
	return out
}

// Emitter stamps raw engine hits with the searched sequence's name and the
// caller's begin displacement before pushing them to a List.
type Emitter struct {
	Name  string
	Begin int
	List  *List
}

// NewEmitter creates an emitter that pushes to l.
func NewEmitter(name string, begin int, l *List) *Emitter {
	return &Emitter{Name: name, Begin: begin, List: l}
}

// Emit records a hit at the zero-based text offset start.
func (e *Emitter) Emit(start, length, mismatches int) {
	e.List.Push(New(e.Name, start+e.Begin, length, mismatches))
}
