package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/parameter"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[core.SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns muted defaults, the CLI unmutes on request
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      false,
		MasterVolume: parameter.DefaultMasterVolume,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundTileGained: 0.3,
			core.SoundTileLost:   0.4,
			core.SoundSpawn:      0.6,
			core.SoundExpire:     0.3,
			core.SoundVictory:    0.8,
			core.SoundDefeat:     0.8,
		},
		SampleRate: parameter.AudioSampleRate,
	}
}

// Gain is the playback volume of a cue: master times the cue's own level, which defaults to 1
func (c *AudioConfig) Gain(st core.SoundType) float64 {
	if v, ok := c.EffectVolumes[st]; ok {
		return c.MasterVolume * v
	}
	return c.MasterVolume
}

var effectNames = map[string]core.SoundType{
	"gained":  core.SoundTileGained,
	"lost":    core.SoundTileLost,
	"spawn":   core.SoundSpawn,
	"expire":  core.SoundExpire,
	"victory": core.SoundVictory,
	"defeat":  core.SoundDefeat,
}

// LoadAudioConfig applies environment overrides over the defaults
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("TERRITORY_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv("TERRITORY_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// JSON object keyed by cue name, e.g. {"gained":0.2}
	if effectVols := os.Getenv("TERRITORY_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if st, ok := effectNames[name]; ok && v >= 0 {
					cfg.EffectVolumes[st] = v
				}
			}
		}
	}

	return cfg
}
