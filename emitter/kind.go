// Package emitter defines the closed set of building and ability kinds and their parameters
package emitter

// Kind enumerates emitter variants in their declared simulation order
type Kind uint8

const (
	KindPulser Kind = iota
	KindScatter
	KindLine
	KindNuke
	KindFortify
	KindExpand
	KindCount
)

// Kinds lists every kind in pipeline order
var Kinds = [KindCount]Kind{KindPulser, KindScatter, KindLine, KindNuke, KindFortify, KindExpand}

var kindNames = [KindCount]string{"pulser", "scatter", "line", "nuke", "fortify", "expand"}

func (k Kind) String() string {
	if k >= KindCount {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind maps a config name to its Kind
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return KindCount, false
}

// Class is the stacking class an emitter occupies on its tile and the point pool it draws from
type Class uint8

const (
	ClassBuilding Class = iota
	ClassAbility
	ClassCount
)

func (c Class) String() string {
	switch c {
	case ClassBuilding:
		return "building"
	case ClassAbility:
		return "ability"
	}
	return "unknown"
}

// ClassOf returns the stacking class for k
func ClassOf(k Kind) Class {
	switch k {
	case KindPulser, KindScatter:
		return ClassBuilding
	}
	return ClassAbility
}
