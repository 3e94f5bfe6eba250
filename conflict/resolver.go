package conflict

import (
	"github.com/lixenwraith/territory/component"
	"github.com/lixenwraith/territory/core"
)

// TileStore is the tile state the resolver reads and writes, the only writer of ownership
type TileStore interface {
	Tile(p core.Position) (component.TileComponent, bool)
	SetTile(p core.Position, t component.TileComponent)
}

// Change describes one applied tile transition
type Change struct {
	Pos         core.Position
	OldOwner    core.PlayerID
	OldStrength component.Strength
	NewOwner    core.PlayerID
	NewStrength component.Strength
}

// Gained reports whether the change gave the tile to player p
func (c Change) Gained(p core.PlayerID) bool {
	return c.NewStrength != component.StrengthNeutral && c.NewOwner == p &&
		(c.OldStrength == component.StrengthNeutral || c.OldOwner != p)
}

// Lost reports whether the change took the tile away from player p
func (c Change) Lost(p core.PlayerID) bool {
	return c.OldStrength != component.StrengthNeutral && c.OldOwner == p &&
		(c.NewStrength == component.StrengthNeutral || c.NewOwner != p)
}

// Outcome is the result of one resolution pass
// Gained and Lost count only tiles affecting the human player
type Outcome struct {
	Gained  int
	Lost    int
	Changes []Change
}

// Resolver turns a tick's aggregated conflicts into tile transitions
type Resolver struct {
	outcome Outcome
}

// NewResolver creates a resolver
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve applies natural conflicts (one transition per tile) then every guarantee in queue order,
// and resets the aggregator. Missing or non-colorable tiles are skipped
func (r *Resolver) Resolve(agg *Aggregator, tiles TileStore) Outcome {
	r.outcome = Outcome{}

	for _, pos := range agg.NaturalTiles() {
		r.resolveNatural(pos, agg.Natural(pos), tiles)
	}
	for _, pos := range agg.GuaranteeTiles() {
		for _, g := range agg.Guarantees(pos) {
			r.resolveGuarantee(g, tiles)
		}
	}

	agg.Reset()
	return r.outcome
}

func (r *Resolver) resolveNatural(pos core.Position, records []Record, tiles TileStore) {
	tile, ok := tiles.Tile(pos)
	if !ok || !tile.Colorable() {
		return
	}

	winner, ok := Winner(Tally(records))
	if !ok {
		return
	}

	before := tile
	switch {
	case !tile.Owned():
		tile.Claim(winner)
	case tile.Owner == winner:
		if tile.Strength == component.StrengthMax {
			return
		}
		tile.Strength = tile.Strength.Strengthen()
	default:
		tile.Strength = tile.Strength.Damage()
		if tile.Strength == component.StrengthNeutral {
			tile.Clear()
		}
	}
	r.commit(pos, before, tile, tiles)
}

func (r *Resolver) resolveGuarantee(g Guarantee, tiles TileStore) {
	tile, ok := tiles.Tile(g.Pos)
	if !ok || !tile.Colorable() {
		return
	}

	before := tile
	switch {
	case !tile.Owned():
		if !g.AffectNeutral || g.Kind == KindDamage {
			return
		}
		tile.Claim(g.Player)

	case tile.Owner == g.Player:
		if !g.AffectCasting {
			return
		}
		if g.Kind == KindDamage {
			tile.Strength = tile.Strength.Damage()
		} else {
			tile.Strength = tile.Strength.Strengthen()
		}

	default:
		if !g.AffectOther {
			return
		}
		if g.Kind == KindStrengthen {
			tile.Strength = tile.Strength.Strengthen()
		} else {
			tile.Strength = tile.Strength.Damage()
		}
	}

	if tile.Strength == component.StrengthNeutral {
		tile.Clear()
	}
	if tile == before {
		return
	}
	r.commit(g.Pos, before, tile, tiles)
}

func (r *Resolver) commit(pos core.Position, before, after component.TileComponent, tiles TileStore) {
	tiles.SetTile(pos, after)

	ch := Change{
		Pos:         pos,
		OldOwner:    before.Owner,
		OldStrength: before.Strength,
		NewOwner:    after.Owner,
		NewStrength: after.Strength,
	}
	if ch.Gained(core.HumanPlayer) {
		r.outcome.Gained++
	}
	if ch.Lost(core.HumanPlayer) {
		r.outcome.Lost++
	}
	r.outcome.Changes = append(r.outcome.Changes, ch)
}
