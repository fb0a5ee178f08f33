package restrict

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/seqmatch/match"
)

var (
	ecoRI = Enzyme{Name: "EcoRI", Pattern: "GAATTC", NCuts: 2, Cut1: 1, Cut2: 5}
	down  = Enzyme{Name: "DownI", Pattern: "GGGAC", NCuts: 2, Cut1: 10, Cut2: 14}
	blunt = Enzyme{Name: "NeoI", Pattern: "GAATTC", NCuts: 2, Blunt: true, Cut1: 3, Cut2: 3}
	amb   = Enzyme{Name: "AmbI", Pattern: "GRCGYC", NCuts: 2, Cut1: 2, Cut2: 4}
)

func scan(t *testing.T, enzymes []Enzyme, seq string, opts Options) []match.Match {
	t.Helper()
	hits, err := Scan(context.Background(), enzymes, "seq", []byte(seq), opts)
	require.NoError(t, err)
	return hits
}

func circular() Options {
	o := DefaultOptions()
	o.Circular = true
	return o
}

func TestEcoRIOnPlasmid(t *testing.T) {
	got := scan(t, []Enzyme{ecoRI}, "GAATTCxxxxxxGAATTC", circular())
	want := []match.Match{
		{Name: "seq", Start: 0, Length: 6, Code: "EcoRI", Pattern: "GAATTC", Forward: true, NCuts: 2, Cut1: 0, Cut2: 4},
		{Name: "seq", Start: 12, Length: 6, Code: "EcoRI", Pattern: "GAATTC", Forward: true, NCuts: 2, Cut1: 12, Cut2: 16},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("EcoRI hits (-want +got):\n%s", diff)
	}
}

func TestSiteAcrossOrigin(t *testing.T) {
	const seq = "ATTCxxxxGA"
	assert.Empty(t, scan(t, []Enzyme{ecoRI}, seq, DefaultOptions()))

	got := scan(t, []Enzyme{ecoRI}, seq, circular())
	want := []match.Match{
		{Name: "seq", Start: 8, Length: 6, Code: "EcoRI", Pattern: "GAATTC", Forward: true, NCuts: 2, Cut1: 8, Cut2: 2, Circ12: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrapped site (-want +got):\n%s", diff)
	}
}

func TestCutBeyondEnd(t *testing.T) {
	const seq = "AAGGGACAAAA"
	assert.Empty(t, scan(t, []Enzyme{down}, seq, DefaultOptions()), "linear hits with a cut past the end must be dropped")

	got := scan(t, []Enzyme{down}, seq, circular())
	want := []match.Match{
		{Name: "seq", Start: 2, Length: 5, Code: "DownI", Pattern: "GGGAC", Forward: true, NCuts: 2, Cut1: 0, Cut2: 4, Circ12: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("circular hit (-want +got):\n%s", diff)
	}
}

func TestReverseStrand(t *testing.T) {
	seq := strings.Repeat("A", 12) + "GTCCC" + "AA"
	got := scan(t, []Enzyme{down}, seq, DefaultOptions())
	want := []match.Match{
		{Name: "seq", Start: 12, Length: 5, Code: "DownI", Pattern: "GGGAC", Forward: false, NCuts: 2, Cut1: 2, Cut2: 6},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reverse hit (-want +got):\n%s", diff)
	}
}

func TestFourCutEnzyme(t *testing.T) {
	// Cuts 3 upstream and 2 downstream of a non-palindromic site.
	e := Enzyme{Name: "TwoSideI", Pattern: "ACGAG", NCuts: 4, Cut1: -3, Cut2: -2, Cut3: 7, Cut4: 8}
	seq := "TTTTTTACGAGTTTTTT"
	got := scan(t, []Enzyme{e}, seq, DefaultOptions())
	require.Len(t, got, 1)
	h := got[0]
	assert.True(t, h.Forward)
	assert.Equal(t, []int{3, 4, 12, 13}, []int{h.Cut1, h.Cut2, h.Cut3, h.Cut4})

	// The same site on the other strand.
	rc, err := ReverseComplement(e.Pattern)
	require.NoError(t, err)
	got = scan(t, []Enzyme{e}, "TTTTTT"+rc+"TTTTTT", DefaultOptions())
	require.Len(t, got, 1)
	h = got[0]
	assert.False(t, h.Forward)
	// rcut(c) = 6+5-1-c for c > 0, 6+5-2-c otherwise.
	assert.Equal(t, []int{2, 3, 11, 12}, []int{h.Cut1, h.Cut2, h.Cut3, h.Cut4})
}

func TestIsoschizomers(t *testing.T) {
	abc := ecoRI
	abc.Name = "AbcI"
	zzz := ecoRI
	zzz.Name = "ZzzI"
	enzymes := []Enzyme{ecoRI, zzz, abc, blunt}
	const seq = "AAGAATTCAA"

	got := scan(t, enzymes, seq, DefaultOptions())
	require.Len(t, got, 2)
	assert.Equal(t, "AbcI", got[0].Code)
	assert.Equal(t, []string{"EcoRI", "ZzzI"}, got[0].Isoschizomers)
	assert.Equal(t, "NeoI", got[1].Code, "a neoschizomer with other cuts stays separate")
	assert.Empty(t, got[1].Isoschizomers)

	opts := DefaultOptions()
	opts.AllIsoschizomers = true
	got = scan(t, enzymes, seq, opts)
	var names []string
	for _, h := range got {
		names = append(names, h.Code)
	}
	assert.Equal(t, []string{"AbcI", "EcoRI", "NeoI", "ZzzI"}, names)
}

func TestCutCountFilter(t *testing.T) {
	const seq = "GAATTCAAAGAATTCAAAGGGAC"
	opts := DefaultOptions()
	opts.MaxCuts = 1
	got := scan(t, []Enzyme{ecoRI, down}, seq, opts)
	assert.Empty(t, got, "DownI cuts past the end and EcoRI cuts twice")

	opts = DefaultOptions()
	opts.MinCuts = 2
	got = scan(t, []Enzyme{ecoRI, down}, seq, opts)
	require.Len(t, got, 2)
	for _, h := range got {
		assert.Equal(t, "EcoRI", h.Code)
	}
}

func TestEndTypeFilter(t *testing.T) {
	const seq = "AAGAATTCAA"
	opts := DefaultOptions()
	opts.AllowBlunt = false
	got := scan(t, []Enzyme{blunt, ecoRI}, seq, opts)
	require.Len(t, got, 1)
	assert.Equal(t, "EcoRI", got[0].Code)

	opts = DefaultOptions()
	opts.AllowSticky = false
	got = scan(t, []Enzyme{blunt, ecoRI}, seq, opts)
	require.Len(t, got, 1)
	assert.Equal(t, "NeoI", got[0].Code)
}

func TestAmbiguousSites(t *testing.T) {
	const seq = "AAGACGCCAA"
	got := scan(t, []Enzyme{amb}, seq, DefaultOptions())
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Start)
	assert.Equal(t, []int{3, 5}, []int{got[0].Cut1, got[0].Cut2})

	opts := DefaultOptions()
	opts.AmbiguityAllowed = false
	assert.Empty(t, scan(t, []Enzyme{amb}, seq, opts))

	// Ambiguous sequence residues never satisfy a site.
	assert.Empty(t, scan(t, []Enzyme{ecoRI}, "AAGANTTCAA", DefaultOptions()))
}

func TestSequenceNormalization(t *testing.T) {
	got := scan(t, []Enzyme{ecoRI}, "aagaauucaa", DefaultOptions())
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Start)
}

func TestBeginAndSort(t *testing.T) {
	const seq = "GAATTCAAAGGGACAAAAAAAAAAAAGAATTC"
	opts := DefaultOptions()
	opts.Begin = 100
	got := scan(t, []Enzyme{ecoRI, down}, seq, opts)
	var starts []int
	for _, h := range got {
		starts = append(starts, h.Start)
	}
	assert.Equal(t, []int{100, 109, 126}, starts)
	assert.Equal(t, 100, got[0].Cut1)
	assert.Equal(t, 104, got[0].Cut2)

	opts.SortByName = true
	got = scan(t, []Enzyme{ecoRI, down}, seq, opts)
	var order []string
	for _, h := range got {
		order = append(order, h.Code)
	}
	assert.Equal(t, []string{"DownI", "EcoRI", "EcoRI"}, order)
}

func randomDNA(n int, seed int64) string {
	rng := rand.New(rand.NewSource(seed))
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte("ACGT"[rng.Intn(4)])
	}
	return b.String()
}

func TestPrefilterMatchesFullScan(t *testing.T) {
	enzymes := []Enzyme{
		ecoRI, down, blunt, amb,
		{Name: "TaqI", Pattern: "TCGA", NCuts: 2, Cut1: 1, Cut2: 3},
		{Name: "MseI", Pattern: "TTAA", NCuts: 2, Cut1: 1, Cut2: 3},
		{Name: "HinfI", Pattern: "GANTC", NCuts: 2, Cut1: 1, Cut2: 4},
		{Name: "BsaI", Pattern: "GGTCTC", NCuts: 2, Cut1: 7, Cut2: 11},
	}
	seq := randomDNA(5000, 42)
	for _, circ := range []bool{false, true} {
		with := DefaultOptions()
		with.Circular = circ
		without := with
		without.Prefilter = false

		a := scan(t, enzymes, seq, with)
		b := scan(t, enzymes, seq, without)
		require.NotEmpty(t, a)
		if diff := cmp.Diff(b, a); diff != "" {
			t.Errorf("circular=%v: prefiltered scan differs (-full +prefiltered):\n%s", circ, diff)
		}
	}
}

func TestScannerReuse(t *testing.T) {
	s, err := NewScanner([]Enzyme{ecoRI, down}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	for _, seq := range []string{"GAATTC", "AAAA", "GGGACAAAAAAAAAAAAAA"} {
		hits, err := s.Scan(context.Background(), "s", []byte(seq))
		require.NoError(t, err)
		again, err := s.Scan(context.Background(), "s", []byte(seq))
		require.NoError(t, err)
		assert.Equal(t, hits, again)
	}
}

func TestScanCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Scan(ctx, []Enzyme{ecoRI}, "s", []byte("GAATTC"), DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
}

func TestScanEmpty(t *testing.T) {
	assert.Empty(t, scan(t, []Enzyme{ecoRI}, "", DefaultOptions()))
	assert.Empty(t, scan(t, nil, "GAATTC", DefaultOptions()))
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Options)
		field string
	}{
		{"min cuts", func(o *Options) { o.MinCuts = 0 }, "MinCuts"},
		{"max below min", func(o *Options) { o.MinCuts, o.MaxCuts = 3, 2 }, "MaxCuts"},
		{"no end type", func(o *Options) { o.AllowBlunt, o.AllowSticky = false, false }, "AllowBlunt"},
		{"concurrency", func(o *Options) { o.Concurrency = -1 }, "Concurrency"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.edit(&o)
			_, err := NewScanner([]Enzyme{ecoRI}, o)
			var oe *OptionError
			require.ErrorAs(t, err, &oe)
			assert.Equal(t, tt.field, oe.Field)
		})
	}
	assert.NoError(t, DefaultOptions().Validate())
}

func TestEnzymeValidate(t *testing.T) {
	bad := []Enzyme{
		{Pattern: "GAATTC", NCuts: 2, Cut1: 1, Cut2: 5},
		{Name: "E", NCuts: 2, Cut1: 1, Cut2: 5},
		{Name: "E", Pattern: "GAXTTC", NCuts: 2, Cut1: 1, Cut2: 5},
		{Name: "E", Pattern: "GAATTC", Len: 5, NCuts: 2, Cut1: 1, Cut2: 5},
		{Name: "E", Pattern: "GAATTC", NCuts: 3, Cut1: 1, Cut2: 5},
		{Name: "E", Pattern: "GAATTC", NCuts: 2, Cut1: 0, Cut2: 5},
		{Name: "E", Pattern: "GAATTC", NCuts: 4, Cut1: 1, Cut2: 5, Cut3: 8},
	}
	for i, e := range bad {
		if err := e.Validate(); !errors.Is(err, ErrBadEnzyme) {
			t.Errorf("case %d: Validate() = %v, want ErrBadEnzyme", i, err)
		}
	}

	good := Enzyme{Name: "EcoRI", Pattern: "gaattc", NCuts: 2, Cut1: 1, Cut2: 5}
	require.NoError(t, good.Validate())
	assert.Equal(t, "GAATTC", good.Pattern)
	assert.Equal(t, 6, good.Len)
	assert.False(t, good.Ambiguous())
}

func TestReverseComplement(t *testing.T) {
	tests := map[string]string{
		"GAATTC": "GAATTC",
		"GGGAC":  "GTCCC",
		"GRCGYC": "GRCGYC",
		"ACGTN":  "NACGT",
		"acgu":   "ACGT",
		"BDHVKM": "KMBDHV",
	}
	for in, want := range tests {
		got, err := ReverseComplement(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, "ReverseComplement(%q)", in)
	}
	_, err := ReverseComplement("GAXC")
	require.ErrorIs(t, err, ErrBadEnzyme)
	assert.Equal(t, byte('A'), Complement('u'))
	assert.Equal(t, byte(0), Complement('x'))
}

func TestEncode(t *testing.T) {
	codes, err := Encode("ANRy")
	require.NoError(t, err)
	assert.Equal(t, []uint8{baseA, baseA | baseC | baseG | baseT, baseA | baseG, baseC | baseT}, codes)
	_, err = Encode("AC-G")
	require.ErrorIs(t, err, ErrBadEnzyme)
}

func TestFragments(t *testing.T) {
	hits := []match.Match{
		{Cut1: 4, NCuts: 2},
		{Cut1: 11, NCuts: 2},
		{Cut1: 11, NCuts: 2},
	}
	assert.Equal(t, []int{5, 7, 8}, Fragments(hits, 20, false, 0))
	assert.Equal(t, []int{7, 13}, Fragments(hits, 20, true, 0))
	assert.Equal(t, []int{20}, Fragments(nil, 20, false, 0))
	assert.Equal(t, []int{20}, Fragments(hits[:1], 20, true, 0))

	shifted := []match.Match{{Cut1: 104, NCuts: 2}, {Cut1: 103, NCuts: 4, Cut3: 108}}
	assert.Equal(t, []int{3, 4, 8}, CutPositions(shifted, 100))
	assert.Equal(t, []int{4, 1, 4, 11}, Fragments(shifted, 20, false, 100))
}

func TestMirrorRemovalPrefersForward(t *testing.T) {
	hits := []match.Match{
		{Code: "E", Cut1: 5, Forward: false},
		{Code: "E", Cut1: 2, Forward: true},
		{Code: "E", Cut1: 5, Forward: true},
		{Code: "E", Cut1: 1 << 30, Forward: false},
		{Code: "E", Cut1: 2, Forward: false},
	}
	got := removeMirrors(hits)
	want := []match.Match{
		{Code: "E", Cut1: 2, Forward: true},
		{Code: "E", Cut1: 5, Forward: true},
		{Code: "E", Cut1: 1 << 30, Forward: false},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("removeMirrors (-want +got):\n%s", diff)
	}
}
