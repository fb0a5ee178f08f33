package restrict

import (
	"cmp"
	"slices"

	"bitbucket.org/creachadair/stringset"

	"github.com/coregx/seqmatch/match"
)

// removeMirrors drops the second report of a cut found on both strands,
// keeping the forward one. hits belong to one enzyme.
func removeMirrors(hits []match.Match) []match.Match {
	if len(hits) < 2 {
		return hits
	}
	slices.SortStableFunc(hits, func(a, b match.Match) int {
		if c := cmp.Compare(a.Cut1, b.Cut1); c != 0 {
			return c
		}
		switch {
		case a.Forward == b.Forward:
			return 0
		case a.Forward:
			return -1
		default:
			return 1
		}
	})
	out := hits[:1]
	for _, h := range hits[1:] {
		if h.Cut1 != out[len(out)-1].Cut1 {
			out = append(out, h)
		}
	}
	return out
}

type isoKey struct {
	start                  int
	cut1, cut2, cut3, cut4 int
	pattern                string
}

// reduceIsoschizomers folds hits of different enzymes that share a start,
// cuts and site into one hit reported under the alphabetically first
// enzyme name. The other names are listed in Isoschizomers.
func reduceIsoschizomers(hits []match.Match) []match.Match {
	if len(hits) < 2 {
		return hits
	}
	index := make(map[isoKey]int, len(hits))
	names := make([]stringset.Set, 0, len(hits))
	out := make([]match.Match, 0, len(hits))
	for _, h := range hits {
		k := isoKey{h.Start, h.Cut1, h.Cut2, h.Cut3, h.Cut4, h.Pattern}
		if i, ok := index[k]; ok {
			names[i].Add(h.Code)
			continue
		}
		index[k] = len(out)
		out = append(out, h)
		names = append(names, stringset.New(h.Code))
	}
	for i := range out {
		if names[i].Len() < 2 {
			continue
		}
		all := names[i].Elements()
		out[i].Code = all[0]
		out[i].Isoschizomers = all[1:]
	}
	return out
}

// sortHits orders hits by position then enzyme name, or by name then
// position.
func sortHits(hits []match.Match, byName bool) {
	slices.SortStableFunc(hits, func(a, b match.Match) int {
		if byName {
			return cmp.Or(cmp.Compare(a.Code, b.Code), cmp.Compare(a.Start, b.Start))
		}
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.Code, b.Code))
	})
}
