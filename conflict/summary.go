package conflict

import (
	"sort"

	"github.com/lixenwraith/territory/core"
)

// Pressure is the aggregated contest on a single tile this tick
type Pressure struct {
	Pos        core.Position
	Votes      []Vote // Deduplicated natural votes
	Guarantees int
	// Damaging counts guarantees that can hurt a tile's owner
	Damaging []core.PlayerID
}

// Against returns the votes and damaging directives cast by players other than p
func (pr Pressure) Against(p core.PlayerID) int {
	total := 0
	for _, v := range pr.Votes {
		if v.Player != p {
			total += v.Count
		}
	}
	for _, caster := range pr.Damaging {
		if caster != p {
			total++
		}
	}
	return total
}

// Summary is the read-only view of the aggregator that the AI pass consumes
type Summary struct {
	tiles map[core.Position]*Pressure
}

// Summarize builds a Summary from the aggregator's current contents without consuming them
func (a *Aggregator) Summarize() Summary {
	s := Summary{tiles: make(map[core.Position]*Pressure, len(a.natural)+len(a.guarantees))}

	for pos, records := range a.natural {
		s.at(pos).Votes = Tally(records)
	}
	for pos, gs := range a.guarantees {
		pr := s.at(pos)
		pr.Guarantees += len(gs)
		for _, g := range gs {
			if g.AffectOther && g.Kind != KindStrengthen {
				pr.Damaging = append(pr.Damaging, g.Player)
			}
		}
	}
	return s
}

func (s Summary) at(pos core.Position) *Pressure {
	pr, ok := s.tiles[pos]
	if !ok {
		pr = &Pressure{Pos: pos}
		s.tiles[pos] = pr
	}
	return pr
}

// Len returns the number of contested tiles
func (s Summary) Len() int {
	return len(s.tiles)
}

// Threats returns tiles under pressure from anyone but p among candidates, strongest first,
// ties row-major
func (s Summary) Threats(p core.PlayerID, candidates []core.Position) []Pressure {
	out := make([]Pressure, 0, len(candidates))
	for _, pos := range candidates {
		pr, ok := s.tiles[pos]
		if !ok || pr.Against(p) == 0 {
			continue
		}
		out = append(out, *pr)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ai, aj := out[i].Against(p), out[j].Against(p)
		if ai != aj {
			return ai > aj
		}
		return out[i].Pos.Less(out[j].Pos)
	})
	return out
}
