package config

import (
	"fmt"
	"time"

	"github.com/lixenwraith/territory/emitter"
	"github.com/lixenwraith/territory/parameter"
)

// RangeConfig is an inclusive hit count range
type RangeConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// EmitterConfig is one catalog entry, keyed by kind name
// Fields a kind does not use are ignored
type EmitterConfig struct {
	Cost       int          `yaml:"cost"`
	Strength   int          `yaml:"strength"`
	CooldownMS int          `yaml:"cooldown_ms"`
	Uses       int          `yaml:"uses"`
	Hits       *RangeConfig `yaml:"hits,omitempty"`
	MaxTiles   int          `yaml:"max_tiles,omitempty"`
	MaxPerSide int          `yaml:"max_per_side,omitempty"`
	Sampling   string       `yaml:"sampling,omitempty"`
}

func ms(d time.Duration) int {
	return int(d / time.Millisecond)
}

// DefaultEmitters returns the built-in catalog entries
func DefaultEmitters() map[string]EmitterConfig {
	return map[string]EmitterConfig{
		"pulser": {
			Cost:       parameter.PulserCost,
			Strength:   parameter.PulserStrength,
			CooldownMS: ms(parameter.PulserCooldown),
			Hits:       &RangeConfig{Min: parameter.PulserHitsMin, Max: parameter.PulserHitsMax},
			MaxTiles:   parameter.PulserMaxTiles,
		},
		"scatter": {
			Cost:       parameter.ScatterCost,
			Strength:   parameter.ScatterStrength,
			CooldownMS: ms(parameter.ScatterCooldown),
			Hits:       &RangeConfig{Min: parameter.ScatterShotsMin, Max: parameter.ScatterShotsMax},
		},
		"line": {
			Cost:       parameter.LineCost,
			Strength:   parameter.LineStrength,
			CooldownMS: ms(parameter.LineCooldown),
			Uses:       parameter.LineUses,
			MaxPerSide: parameter.LineMaxPerSide,
		},
		"nuke": {
			Cost:       parameter.NukeCost,
			Strength:   parameter.NukeStrength,
			CooldownMS: ms(parameter.NukeCooldown),
			Uses:       parameter.NukeUses,
		},
		"fortify": {
			Cost:       parameter.FortifyCost,
			Strength:   parameter.FortifyStrength,
			CooldownMS: ms(parameter.FortifyCooldown),
			Uses:       parameter.FortifyUses,
		},
		"expand": {
			Cost:       parameter.ExpandCost,
			Strength:   parameter.ExpandStrength,
			CooldownMS: ms(parameter.ExpandCooldown),
			Uses:       parameter.ExpandUses,
		},
	}
}

// Catalog builds the placement catalog, every kind must be present
func (c Config) Catalog() (emitter.Catalog, error) {
	var catalog emitter.Catalog

	for name, ec := range c.Emitters {
		kind, ok := emitter.ParseKind(name)
		if !ok {
			return catalog, fmt.Errorf("%w: emitter %q: %w", ErrInvalid, name, emitter.ErrUnknownKind)
		}
		spec, err := ec.spec(kind)
		if err != nil {
			return catalog, fmt.Errorf("%w: emitter %q: %v", ErrInvalid, name, err)
		}
		catalog[kind] = spec
	}

	for _, k := range emitter.Kinds {
		if catalog[k].Behavior == nil {
			return catalog, fmt.Errorf("%w: emitter %q missing", ErrInvalid, k)
		}
	}
	return catalog, nil
}

func (ec EmitterConfig) spec(kind emitter.Kind) (emitter.Spec, error) {
	if ec.Cost < 0 || ec.Strength < 0 || ec.Uses < 0 || ec.MaxTiles < 0 || ec.MaxPerSide < 0 {
		return emitter.Spec{}, fmt.Errorf("negative value")
	}
	if ec.CooldownMS <= 0 {
		return emitter.Spec{}, fmt.Errorf("cooldown %dms", ec.CooldownMS)
	}
	sampling, ok := emitter.ParseSampling(ec.Sampling)
	if !ok {
		return emitter.Spec{}, fmt.Errorf("sampling %q", ec.Sampling)
	}
	var hits emitter.HitRange
	if ec.Hits != nil {
		if ec.Hits.Min < 0 || ec.Hits.Max < ec.Hits.Min {
			return emitter.Spec{}, fmt.Errorf("hits [%d, %d]", ec.Hits.Min, ec.Hits.Max)
		}
		hits = emitter.HitRange{Min: ec.Hits.Min, Max: ec.Hits.Max}
	}

	var b emitter.Behavior
	switch kind {
	case emitter.KindPulser:
		b = emitter.Pulser{Strength: ec.Strength, Hits: hits, MaxTiles: ec.MaxTiles, Sampling: sampling}
	case emitter.KindScatter:
		b = emitter.Scatter{Strength: ec.Strength, Shots: hits}
	case emitter.KindLine:
		b = emitter.Line{Strength: ec.Strength, Hits: hits, MaxPerSide: ec.MaxPerSide, Sampling: sampling}
	case emitter.KindNuke:
		b = emitter.Nuke{Strength: ec.Strength}
	case emitter.KindFortify:
		b = emitter.Fortify{Strength: ec.Strength}
	case emitter.KindExpand:
		b = emitter.Expand{Strength: ec.Strength}
	default:
		return emitter.Spec{}, emitter.ErrUnknownKind
	}

	uses := ec.Uses
	if emitter.ClassOf(kind) == emitter.ClassBuilding {
		uses = 0
	}
	return emitter.Spec{
		Behavior: b,
		Cost:     ec.Cost,
		Cooldown: time.Duration(ec.CooldownMS) * time.Millisecond,
		Uses:     uses,
	}, nil
}
