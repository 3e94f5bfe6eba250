package conflict

import (
	"testing"

	"github.com/lixenwraith/territory/component"
	"github.com/lixenwraith/territory/core"
)

// mapTiles is an in-memory TileStore
type mapTiles map[core.Position]component.TileComponent

func newMapTiles(w, h int) mapTiles {
	m := make(mapTiles)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m[core.Pos(x, y)] = component.TileComponent{Pos: core.Pos(x, y)}
		}
	}
	return m
}

func (m mapTiles) Tile(p core.Position) (component.TileComponent, bool) {
	t, ok := m[p]
	return t, ok
}

func (m mapTiles) SetTile(p core.Position, t component.TileComponent) {
	m[p] = t
}

func (m mapTiles) own(p core.Position, player core.PlayerID, s component.Strength) {
	t := m[p]
	t.Owner = player
	t.Strength = s
	m[p] = t
}

// Scenario A: two single votes on an empty tile, lowest player id wins the tie
func TestResolveScenarioATieBreak(t *testing.T) {
	tiles := newMapTiles(5, 5)
	agg := NewAggregator()
	pos := core.Pos(2, 2)

	agg.RecordNatural(pos, 2, 200)
	agg.RecordNatural(pos, 1, 100)

	NewResolver().Resolve(agg, tiles)

	tile := tiles[pos]
	if !tile.OwnedBy(1) {
		t.Fatalf("Expected player 1 to win the tie, got owner %d (owned=%v)", tile.Owner, tile.Owned())
	}
	if tile.Strength != component.StrengthOne {
		t.Errorf("Expected strength One, got %v", tile.Strength)
	}
	if agg.Len() != 0 {
		t.Errorf("Expected aggregator cleared after resolution, got %d entries", agg.Len())
	}
}

// Scenario B: own tile climbs to Five and stays there
func TestResolveScenarioBCeiling(t *testing.T) {
	tiles := newMapTiles(1, 1)
	pos := core.Pos(0, 0)
	tiles.own(pos, 1, component.StrengthFour)

	agg := NewAggregator()
	r := NewResolver()

	agg.RecordNatural(pos, 1, 10)
	out := r.Resolve(agg, tiles)
	if tiles[pos].Strength != component.StrengthFive || tiles[pos].Owner != 1 {
		t.Fatalf("Expected owner 1 at Five, got %d at %v", tiles[pos].Owner, tiles[pos].Strength)
	}
	if len(out.Changes) != 1 {
		t.Errorf("Expected one change, got %d", len(out.Changes))
	}

	agg.RecordNatural(pos, 1, 10)
	out = r.Resolve(agg, tiles)
	if tiles[pos].Strength != component.StrengthFive {
		t.Errorf("Expected Five to hold, got %v", tiles[pos].Strength)
	}
	if len(out.Changes) != 0 {
		t.Errorf("Expected no change at ceiling, got %+v", out.Changes)
	}
}

// Scenario C: damage guarantee on caster's own One tile clears it
func TestResolveScenarioCDamageGuarantee(t *testing.T) {
	for _, owner := range []core.PlayerID{0, 1} {
		tiles := newMapTiles(3, 3)
		pos := core.Pos(1, 1)
		tiles.own(pos, owner, component.StrengthOne)

		agg := NewAggregator()
		agg.RecordGuarantee(Guarantee{Pos: pos, Player: owner, AffectCasting: true, Kind: KindDamage})
		out := NewResolver().Resolve(agg, tiles)

		if tiles[pos].Owned() {
			t.Errorf("owner %d: expected tile cleared, got owner %d at %v", owner, tiles[pos].Owner, tiles[pos].Strength)
		}
		wantLost := 0
		if owner == core.HumanPlayer {
			wantLost = 1
		}
		if out.Lost != wantLost {
			t.Errorf("owner %d: expected lost counter %d, got %d", owner, wantLost, out.Lost)
		}
	}
}

func TestResolveDedupBySource(t *testing.T) {
	tiles := newMapTiles(3, 1)
	pos := core.Pos(1, 0)
	agg := NewAggregator()

	// Player 2 contributes the same source three times, player 1 has two distinct sources
	agg.RecordNatural(pos, 2, 50)
	agg.RecordNatural(pos, 2, 50)
	agg.RecordNatural(pos, 2, 50)
	agg.RecordNatural(pos, 1, 60)
	agg.RecordNatural(pos, 1, 61)

	votes := Tally(agg.Natural(pos))
	for _, v := range votes {
		if v.Player == 2 && v.Count != 1 {
			t.Errorf("Expected duplicate source to count once, got %d", v.Count)
		}
	}

	NewResolver().Resolve(agg, tiles)
	if !tiles[pos].OwnedBy(1) {
		t.Errorf("Expected player 1 to win 2 to 1, got owner %d", tiles[pos].Owner)
	}
}

func TestResolveSingleStepPerTick(t *testing.T) {
	tiles := newMapTiles(1, 1)
	pos := core.Pos(0, 0)
	tiles.own(pos, 3, component.StrengthThree)

	agg := NewAggregator()
	for i := 0; i < 50; i++ {
		agg.RecordNatural(pos, 1, core.Entity(100+i))
		agg.RecordNatural(pos, 2, core.Entity(1000+i))
	}
	agg.RecordNatural(pos, 3, 7)

	out := NewResolver().Resolve(agg, tiles)

	if tiles[pos].Owner != 3 || tiles[pos].Strength != component.StrengthTwo {
		t.Errorf("Expected owner 3 damaged one step to Two, got %d at %v", tiles[pos].Owner, tiles[pos].Strength)
	}
	if len(out.Changes) != 1 {
		t.Errorf("Expected exactly one change, got %d", len(out.Changes))
	}
}

func TestResolveNaturalDamageClearsAndSignals(t *testing.T) {
	tiles := newMapTiles(2, 1)
	pos := core.Pos(0, 0)
	tiles.own(pos, core.HumanPlayer, component.StrengthOne)

	agg := NewAggregator()
	agg.RecordNatural(pos, 4, 9)
	agg.RecordNatural(core.Pos(1, 0), core.HumanPlayer, 3)
	out := NewResolver().Resolve(agg, tiles)

	if tiles[pos].Owned() {
		t.Errorf("Expected tile cleared by enemy damage, got owner %d", tiles[pos].Owner)
	}
	if out.Lost != 1 || out.Gained != 1 {
		t.Errorf("Expected 1 lost and 1 gained, got %d lost %d gained", out.Lost, out.Gained)
	}
}

func TestResolveSkipsNonColorableAndMissing(t *testing.T) {
	tiles := newMapTiles(2, 1)
	wall := tiles[core.Pos(0, 0)]
	wall.Terrain = component.TerrainNonColorable
	tiles[core.Pos(0, 0)] = wall

	agg := NewAggregator()
	agg.RecordNatural(core.Pos(0, 0), 1, 1)
	agg.RecordNatural(core.Pos(9, 9), 1, 1)
	agg.RecordGuarantee(Guarantee{Pos: core.Pos(0, 0), Player: 1, AffectNeutral: true})

	out := NewResolver().Resolve(agg, tiles)
	if tiles[core.Pos(0, 0)].Owned() {
		t.Error("Expected non-colorable tile to stay unowned")
	}
	if len(out.Changes) != 0 {
		t.Errorf("Expected no changes, got %+v", out.Changes)
	}
}

func TestResolveEmptyIsNoop(t *testing.T) {
	out := NewResolver().Resolve(NewAggregator(), newMapTiles(0, 0))
	if out.Gained != 0 || out.Lost != 0 || len(out.Changes) != 0 {
		t.Errorf("Expected empty outcome, got %+v", out)
	}
}

func TestGuaranteeTable(t *testing.T) {
	const caster core.PlayerID = 1
	const other core.PlayerID = 2

	type start struct {
		owner    core.PlayerID
		strength component.Strength
	}
	neutral := start{0, component.StrengthNeutral}
	own := start{caster, component.StrengthTwo}
	enemy := start{other, component.StrengthTwo}

	tests := []struct {
		name         string
		start        start
		g            Guarantee
		wantOwned    bool
		wantOwner    core.PlayerID
		wantStrength component.Strength
	}{
		{"neutral claim natural", neutral, Guarantee{AffectNeutral: true, Kind: KindNatural}, true, caster, component.StrengthOne},
		{"neutral claim strengthen", neutral, Guarantee{AffectNeutral: true, Kind: KindStrengthen}, true, caster, component.StrengthOne},
		{"neutral damage ignored", neutral, Guarantee{AffectNeutral: true, Kind: KindDamage}, false, 0, component.StrengthNeutral},
		{"neutral flag off", neutral, Guarantee{AffectOther: true, AffectCasting: true}, false, 0, component.StrengthNeutral},
		{"own damage", own, Guarantee{AffectCasting: true, Kind: KindDamage}, true, caster, component.StrengthOne},
		{"own strengthen", own, Guarantee{AffectCasting: true, Kind: KindStrengthen}, true, caster, component.StrengthThree},
		{"own natural", own, Guarantee{AffectCasting: true, Kind: KindNatural}, true, caster, component.StrengthThree},
		{"own flag off", own, Guarantee{AffectOther: true, AffectNeutral: true, Kind: KindDamage}, true, caster, component.StrengthTwo},
		{"enemy damage", enemy, Guarantee{AffectOther: true, Kind: KindDamage}, true, other, component.StrengthOne},
		{"enemy natural", enemy, Guarantee{AffectOther: true, Kind: KindNatural}, true, other, component.StrengthOne},
		{"enemy strengthen", enemy, Guarantee{AffectOther: true, Kind: KindStrengthen}, true, other, component.StrengthThree},
		{"enemy flag off", enemy, Guarantee{AffectCasting: true, AffectNeutral: true, Kind: KindDamage}, true, other, component.StrengthTwo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := newMapTiles(1, 1)
			pos := core.Pos(0, 0)
			tiles.own(pos, tt.start.owner, tt.start.strength)

			g := tt.g
			g.Pos = pos
			g.Player = caster
			agg := NewAggregator()
			agg.RecordGuarantee(g)
			NewResolver().Resolve(agg, tiles)

			got := tiles[pos]
			if got.Owned() != tt.wantOwned {
				t.Fatalf("Expected owned=%v, got %v", tt.wantOwned, got.Owned())
			}
			if tt.wantOwned && got.Owner != tt.wantOwner {
				t.Errorf("Expected owner %d, got %d", tt.wantOwner, got.Owner)
			}
			if got.Strength != tt.wantStrength {
				t.Errorf("Expected strength %v, got %v", tt.wantStrength, got.Strength)
			}
		})
	}
}

func TestGuaranteesApplyIndependently(t *testing.T) {
	tiles := newMapTiles(1, 1)
	pos := core.Pos(0, 0)
	tiles.own(pos, 2, component.StrengthTwo)

	agg := NewAggregator()
	for i := 0; i < 3; i++ {
		agg.RecordGuarantee(Guarantee{Pos: pos, Player: 1, AffectOther: true, Kind: KindDamage})
	}
	NewResolver().Resolve(agg, tiles)

	// Two damages clear the tile, the third finds it neutral and does nothing
	if tiles[pos].Owned() {
		t.Errorf("Expected tile cleared, got owner %d at %v", tiles[pos].Owner, tiles[pos].Strength)
	}
}

func TestSummaryThreats(t *testing.T) {
	agg := NewAggregator()
	a, b := core.Pos(0, 0), core.Pos(1, 0)
	agg.RecordNatural(a, 2, 1)
	agg.RecordNatural(b, 2, 1)
	agg.RecordNatural(b, 3, 2)
	agg.RecordNatural(b, 1, 3)
	agg.RecordGuarantee(Guarantee{Pos: a, Player: 2, AffectOther: true, Kind: KindDamage})

	s := agg.Summarize()
	if s.Len() != 2 {
		t.Fatalf("Expected 2 contested tiles, got %d", s.Len())
	}
	threats := s.Threats(1, []core.Position{a, b, core.Pos(5, 5)})
	if len(threats) != 2 {
		t.Fatalf("Expected 2 threats, got %d", len(threats))
	}
	// Both tiles have 2 hostile points; row-major breaks the tie
	if threats[0].Pos != a {
		t.Errorf("Expected %v first, got %v", a, threats[0].Pos)
	}
	if agg.Len() != 5 {
		t.Errorf("Expected summary to leave aggregator intact, got %d", agg.Len())
	}
}
