package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// noiseSeed keeps cached noise cues identical between runs
const noiseSeed = 7

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(noiseSeed)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain, math.Log2(0) is -Inf so zero is rendered silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one shaped note
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// arpeggio plays the notes back to back with the same shape
func arpeggio(freqs []float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, tone(f, wave, parameter.EndingNoteDuration, parameter.CueAttack, parameter.EndingRelease, rate))
	}
	return beep.Seq(notes...)
}

// Cue builds the unity-gain streamer for a sound, nil for unknown types
func Cue(st core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch st {
	case core.SoundTileGained:
		// Rising E6 to A6 blip
		return beep.Seq(
			tone(1318.51, WaveSine, parameter.GainedNoteDuration, parameter.CueAttack, parameter.GainedRelease, rate),
			tone(1760.0, WaveSine, parameter.GainedNoteDuration, parameter.CueAttack, parameter.GainedRelease, rate),
		)
	case core.SoundTileLost:
		return tone(110.0, WaveSaw, parameter.LostDuration, parameter.CueAttack, parameter.LostRelease, rate)
	case core.SoundSpawn:
		// Bell: A5 fundamental with octave overtone
		return beep.Mix(
			newVolume(tone(880.0, WaveSine, parameter.SpawnDuration, parameter.CueAttack, parameter.SpawnFundamentalRelease, rate), 0.7),
			newVolume(tone(1760.0, WaveSine, parameter.SpawnDuration, parameter.CueAttack, parameter.SpawnOvertoneRelease, rate), 0.3),
		)
	case core.SoundExpire:
		return tone(0, WaveNoise, parameter.ExpireDuration, parameter.ExpireAttack, parameter.ExpireRelease, rate)
	case core.SoundVictory:
		return arpeggio([]float64{523.25, 659.25, 783.99, 1046.50}, WaveSquare, rate)
	case core.SoundDefeat:
		return arpeggio([]float64{392.0, 311.13, 261.63, 196.0}, WaveSaw, rate)
	default:
		return nil
	}
}
