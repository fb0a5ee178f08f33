package restrict

import (
	"github.com/coregx/ahocorasick"
)

// prefilter finds every position where an unambiguous site starts, in
// either orientation, in one pass over the sequence.
type prefilter struct {
	auto *ahocorasick.Automaton
}

// newPrefilter returns nil when no site is unambiguous.
func newPrefilter(sites []site) (*prefilter, error) {
	builder := ahocorasick.NewBuilder()
	added := 0
	for i := range sites {
		if !sites[i].plain {
			continue
		}
		builder.AddPattern([]byte(sites[i].enzyme.Pattern))
		builder.AddPattern([]byte(sites[i].rc))
		added++
	}
	if added == 0 {
		return nil, nil
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &prefilter{auto: auto}, nil
}

// candidates returns, in increasing order, the starts below limit at which
// some site begins. The automaton reports the leftmost match, so restarting
// one past each start visits every such position.
func (p *prefilter) candidates(text []byte, limit int) []int {
	var out []int
	for at := 0; at < limit; {
		m := p.auto.Find(text, at)
		if m == nil || m.Start >= limit {
			break
		}
		out = append(out, m.Start)
		at = m.Start + 1
	}
	return out
}
