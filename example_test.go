package seqmatch_test

import (
	"fmt"

	"github.com/coregx/seqmatch"
)

// ExampleCompile demonstrates class matching on a nucleotide sequence.
func ExampleCompile() {
	p, err := seqmatch.Compile("A[TG]C", false, 0)
	if err != nil {
		panic(err)
	}
	hits, err := p.Search("seq1", []byte("AGCATC"), 0)
	if err != nil {
		panic(err)
	}
	for _, h := range hits {
		fmt.Println(h.Start, h.Length)
	}
	// Output:
	// 0 3
	// 3 3
}

// ExamplePattern_Kind shows the algorithm chosen for a few patterns.
func ExamplePattern_Kind() {
	for _, raw := range []string{"GAATTC", "A[TG]C", "{A}C(1,2)C"} {
		fmt.Println(seqmatch.MustCompile(raw, false, 0).Kind())
	}
	fmt.Println(seqmatch.MustCompile("GAATTC", false, 1).Kind())
	// Output:
	// ShiftOr
	// Gonnet
	// Regex
	// Perleberg
}

// ExamplePattern_String shows the canonical form of a protein motif.
func ExamplePattern_String() {
	p := seqmatch.MustCompile("<[RK](2)-x-[DE]", true, 0)
	fmt.Println(p, p.RealLength())
	// Output: <[KR][KR]?[DE] 4
}

// ExamplePattern_Search demonstrates mismatches and a begin displacement.
func ExamplePattern_Search() {
	p := seqmatch.MustCompile("AC", false, 1)
	hits, _ := p.Search("s", []byte("ATC"), 1)
	for _, h := range hits {
		fmt.Println(h)
	}
	// Output:
	// s:1-2 mm=1
	// s:2-3 mm=1
}
