// Package conflict collects a tick's conflict events per tile and resolves them into tile state changes
package conflict

import (
	"sort"

	"github.com/lixenwraith/territory/core"
)

// Kind selects the transition a guarantee applies
type Kind uint8

const (
	KindNatural Kind = iota
	KindDamage
	KindStrengthen
)

func (k Kind) String() string {
	switch k {
	case KindNatural:
		return "natural"
	case KindDamage:
		return "damage"
	case KindStrengthen:
		return "strengthen"
	}
	return "unknown"
}

// Record is one natural, vote-style conflict against a tile
type Record struct {
	Pos    core.Position
	Player core.PlayerID
	Source core.Entity
}

// Guarantee is a directive applied unconditionally, subject to its flags
type Guarantee struct {
	Pos           core.Position
	Player        core.PlayerID
	AffectCasting bool
	AffectNeutral bool
	AffectOther   bool
	Kind          Kind
}

// Aggregator is the per-tick accrual structure, cleared after every resolution pass
// Appends only; no ordering across tiles, insertion order within a tile is kept
type Aggregator struct {
	natural    map[core.Position][]Record
	guarantees map[core.Position][]Guarantee
	count      int
}

// NewAggregator creates an empty aggregator
func NewAggregator() *Aggregator {
	return &Aggregator{
		natural:    make(map[core.Position][]Record),
		guarantees: make(map[core.Position][]Guarantee),
	}
}

// RecordNatural appends a natural conflict; deduplication by source is the resolver's job
func (a *Aggregator) RecordNatural(pos core.Position, player core.PlayerID, source core.Entity) {
	a.natural[pos] = append(a.natural[pos], Record{Pos: pos, Player: player, Source: source})
	a.count++
}

// RecordGuarantee appends a guaranteed conflict directive
func (a *Aggregator) RecordGuarantee(g Guarantee) {
	a.guarantees[g.Pos] = append(a.guarantees[g.Pos], g)
	a.count++
}

// Natural returns the records queued for pos in insertion order
func (a *Aggregator) Natural(pos core.Position) []Record {
	return a.natural[pos]
}

// Guarantees returns the directives queued for pos in insertion order
func (a *Aggregator) Guarantees(pos core.Position) []Guarantee {
	return a.guarantees[pos]
}

// Len returns the total number of queued records and directives
func (a *Aggregator) Len() int {
	return a.count
}

// NaturalTiles returns every tile with natural records, row-major
func (a *Aggregator) NaturalTiles() []core.Position {
	return sortedKeys(a.natural)
}

// GuaranteeTiles returns every tile with directives, row-major
func (a *Aggregator) GuaranteeTiles() []core.Position {
	return sortedKeys(a.guarantees)
}

// Reset clears all queued conflicts, keeping allocated maps
func (a *Aggregator) Reset() {
	clear(a.natural)
	clear(a.guarantees)
	a.count = 0
}

func sortedKeys[V any](m map[core.Position]V) []core.Position {
	keys := make([]core.Position, 0, len(m))
	for p := range m {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}
