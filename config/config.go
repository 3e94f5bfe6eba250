// Package config loads match setup from YAML
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/emitter"
	"github.com/lixenwraith/territory/engine"
	"github.com/lixenwraith/territory/grid"
	"github.com/lixenwraith/territory/mapgen"
	"github.com/lixenwraith/territory/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full match setup
type Config struct {
	Map          MapConfig                `yaml:"map"`
	Players      PlayersConfig            `yaml:"players"`
	EndCondition EndConditionConfig       `yaml:"end_condition"`
	Tick         TickConfig               `yaml:"tick"`
	Points       PointsConfig             `yaml:"points"`
	Emitters     map[string]EmitterConfig `yaml:"emitters"`
}

type MapConfig struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`
	Layout string `yaml:"layout"` // open | noise | maze
	// Braiding is the chance a maze dead end gains a second opening
	Braiding float64 `yaml:"braiding"`
	// ObstacleThreshold is the noise level above which tiles are non-colorable, >= 1 disables obstacles
	ObstacleThreshold float64 `yaml:"obstacle_threshold"`
	BuildingCapacity  int     `yaml:"building_capacity"`
	AbilityCapacity   int     `yaml:"ability_capacity"`
	StartRadius       int     `yaml:"start_radius"`
}

type PlayersConfig struct {
	Enemies int  `yaml:"enemies"`
	AI      bool `yaml:"ai"`
}

type EndConditionConfig struct {
	Mode   string  `yaml:"mode"` // domination | percentage
	Target float64 `yaml:"target"`
}

type TickConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

// Interval returns the tick length
func (t TickConfig) Interval() time.Duration {
	return time.Duration(t.IntervalMS) * time.Millisecond
}

type PointsConfig struct {
	AccrualMS        int `yaml:"accrual_ms"`
	StartingBuilding int `yaml:"starting_building"`
	StartingAbility  int `yaml:"starting_ability"`
}

// Default returns the built-in match setup
func Default() Config {
	return Config{
		Map: MapConfig{
			Width:             parameter.MapWidth,
			Height:            parameter.MapHeight,
			Seed:              1,
			Layout:            "noise",
			ObstacleThreshold: parameter.ObstacleThreshold,
			BuildingCapacity:  parameter.TileBuildingCapacity,
			AbilityCapacity:   parameter.TileAbilityCapacity,
			StartRadius:       parameter.StartRegionRadius,
		},
		Players: PlayersConfig{
			Enemies: parameter.Enemies,
			AI:      true,
		},
		EndCondition: EndConditionConfig{
			Mode:   "domination",
			Target: parameter.PercentageTarget,
		},
		Tick: TickConfig{
			IntervalMS: int(parameter.TickInterval / time.Millisecond),
		},
		Points: PointsConfig{
			AccrualMS:        int(parameter.PointsAccrualPeriod / time.Millisecond),
			StartingBuilding: parameter.StartingBuildingPoints,
			StartingAbility:  parameter.StartingAbilityPoints,
		},
		Emitters: DefaultEmitters(),
	}
}

// Load reads a YAML file over the defaults and validates the result
// Emitter entries in the file replace the default entry of the same kind
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: %w", err)
	}
	return Parse(raw)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects degenerate setups
func (c Config) Validate() error {
	switch {
	case c.Map.Width <= 0 || c.Map.Height <= 0:
		return fmt.Errorf("%w: map %dx%d", ErrInvalid, c.Map.Width, c.Map.Height)
	case c.Map.BuildingCapacity < 0 || c.Map.AbilityCapacity < 0 || c.Map.BuildingCapacity > 255 || c.Map.AbilityCapacity > 255:
		return fmt.Errorf("%w: tile capacity out of range", ErrInvalid)
	case c.Map.StartRadius < 0:
		return fmt.Errorf("%w: negative start radius", ErrInvalid)
	case c.Players.Enemies < 0 || c.Players.Enemies >= MaxPlayers:
		return fmt.Errorf("%w: enemies must be in [0, %d]", ErrInvalid, MaxPlayers-1)
	case c.Tick.IntervalMS <= 0:
		return fmt.Errorf("%w: tick interval %dms", ErrInvalid, c.Tick.IntervalMS)
	case c.Points.AccrualMS < 0 || c.Points.StartingBuilding < 0 || c.Points.StartingAbility < 0:
		return fmt.Errorf("%w: negative points setting", ErrInvalid)
	}

	if _, err := mapgen.ParseLayout(c.Map.Layout); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Map.Braiding < 0 || c.Map.Braiding > 1 {
		return fmt.Errorf("%w: braiding %v not in [0, 1]", ErrInvalid, c.Map.Braiding)
	}
	if _, err := c.endMode(); err != nil {
		return err
	}
	if c.EndCondition.Mode == "percentage" && (c.EndCondition.Target <= 0 || c.EndCondition.Target > 1) {
		return fmt.Errorf("%w: percentage target %v not in (0, 1]", ErrInvalid, c.EndCondition.Target)
	}
	if _, err := c.Catalog(); err != nil {
		return err
	}
	return nil
}

// MaxPlayers bounds the number of start regions a map can seat
const MaxPlayers = 8

// PlayerIDs returns the human player followed by every enemy
func (c Config) PlayerIDs() []core.PlayerID {
	ids := make([]core.PlayerID, 0, c.Players.Enemies+1)
	for i := 0; i <= c.Players.Enemies; i++ {
		ids = append(ids, core.PlayerID(i))
	}
	return ids
}

// Capacity returns per-class stacking capacity for every tile
func (c Config) Capacity() [emitter.ClassCount]uint8 {
	var capacity [emitter.ClassCount]uint8
	capacity[emitter.ClassBuilding] = uint8(c.Map.BuildingCapacity)
	capacity[emitter.ClassAbility] = uint8(c.Map.AbilityCapacity)
	return capacity
}

// MapOptions returns the generator options for the match map
func (c Config) MapOptions() mapgen.Options {
	layout, _ := mapgen.ParseLayout(c.Map.Layout)
	return mapgen.Options{
		Bounds:      grid.Bounds{Width: c.Map.Width, Height: c.Map.Height},
		Seed:        c.Map.Seed,
		Layout:      layout,
		Threshold:   c.Map.ObstacleThreshold,
		Braiding:    c.Map.Braiding,
		Players:     c.Players.Enemies + 1,
		StartRadius: c.Map.StartRadius,
	}
}

// Rules builds the world's config resource
func (c Config) Rules() (*engine.ConfigResource, error) {
	catalog, err := c.Catalog()
	if err != nil {
		return nil, err
	}
	mode, err := c.endMode()
	if err != nil {
		return nil, err
	}
	return &engine.ConfigResource{
		Catalog:       catalog,
		Players:       c.PlayerIDs(),
		AccrualPeriod: time.Duration(c.Points.AccrualMS) * time.Millisecond,
		EndMode:       mode,
		EndTarget:     c.EndCondition.Target,
	}, nil
}

func (c Config) endMode() (engine.EndMode, error) {
	switch c.EndCondition.Mode {
	case "", "domination":
		return engine.EndDomination, nil
	case "percentage":
		return engine.EndPercentage, nil
	}
	return 0, fmt.Errorf("%w: end condition %q", ErrInvalid, c.EndCondition.Mode)
}
