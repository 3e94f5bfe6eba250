package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/parameter"
)

// voice is the playback cursor of one cue type
type voice struct {
	buf    floatBuffer
	pos    int
	volume float64
}

func (v *voice) live() bool { return v.pos < len(v.buf) }

type playRequest struct {
	sound  core.SoundType
	volume float64
}

// Mixer renders cues into fixed-length blocks of 16-bit stereo PCM
// Every cue type owns a single voice: a cue triggered while still sounding restarts from its head,
// so a burst of captures never stacks into clipping
type Mixer struct {
	out   io.Writer
	cache *soundCache

	requests chan playRequest
	quit     chan struct{}
	closed   atomic.Bool
	failed   chan error

	// Owned by the mix goroutine
	voices [core.SoundTypeCount]voice

	played      atomic.Uint64
	retriggered atomic.Uint64
	dropped     atomic.Uint64
}

// NewMixer creates a mixer writing blocks to out
func NewMixer(out io.Writer, cache *soundCache) *Mixer {
	return &Mixer{
		out:      out,
		cache:    cache,
		requests: make(chan playRequest, parameter.AudioQueueSize),
		quit:     make(chan struct{}),
		failed:   make(chan error, 1),
	}
}

func (m *Mixer) Start() {
	go m.loop()
}

// Stop halts the mix goroutine, safe to call more than once
func (m *Mixer) Stop() {
	if m.closed.CompareAndSwap(false, true) {
		close(m.quit)
	}
}

// Play queues a cue at volume; a full queue drops the cue
func (m *Mixer) Play(st core.SoundType, volume float64) {
	if m.closed.Load() {
		return
	}
	select {
	case m.requests <- playRequest{sound: st, volume: volume}:
	default:
		m.dropped.Add(1)
	}
}

// Failed delivers the write error that stopped the mixer
func (m *Mixer) Failed() <-chan error {
	return m.failed
}

// Stats returns started and dropped cue counts
func (m *Mixer) Stats() (played, dropped uint64) {
	return m.played.Load(), m.dropped.Load()
}

// loop emits one block per buffer period; requests queued since the last block start with it
func (m *Mixer) loop() {
	ticker := time.NewTicker(parameter.AudioBufferDuration)
	defer ticker.Stop()

	block := make([]float64, parameter.AudioBufferSamples)
	pcm := make([]byte, len(block)*parameter.AudioBytesPerFrame)

	for {
		select {
		case <-m.quit:
			return
		case <-ticker.C:
		}

		m.collect()
		m.render(block)
		encodePCM(block, pcm)

		// Silent blocks are written too, the playback tool underruns otherwise
		if _, err := m.out.Write(pcm); err != nil {
			select {
			case m.failed <- fmt.Errorf("%w: %v", ErrPipeClosed, err):
			default:
			}
			return
		}
	}
}

// collect starts every queued request without blocking
func (m *Mixer) collect() {
	for {
		select {
		case req := <-m.requests:
			m.trigger(req)
		default:
			return
		}
	}
}

func (m *Mixer) trigger(req playRequest) {
	buf := m.cache.get(req.sound)
	if len(buf) == 0 {
		return
	}
	v := &m.voices[req.sound]
	if v.live() {
		m.retriggered.Add(1)
		req.volume = max(req.volume, v.volume)
	}
	*v = voice{buf: buf, volume: req.volume}
	m.played.Add(1)
}

// render sums the live voices into block
func (m *Mixer) render(block []float64) {
	clear(block)
	for i := range m.voices {
		v := &m.voices[i]
		if !v.live() {
			continue
		}
		for j := 0; j < len(block) && v.live(); j++ {
			block[j] += v.buf[v.pos] * v.volume
			v.pos++
		}
	}
}

// encodePCM writes mono samples as identical left and right int16 LE frames
// Values above the knee are compressed with tanh so overlapping cues saturate smoothly
func encodePCM(in []float64, out []byte) {
	const knee = 0.8
	for i, v := range in {
		if a := math.Abs(v); a > knee {
			v = math.Copysign(knee+(1-knee)*math.Tanh((a-knee)/(1-knee)), v)
		}
		s := uint16(int16(v * math.MaxInt16))
		f := i * parameter.AudioBytesPerFrame
		binary.LittleEndian.PutUint16(out[f:], s)
		binary.LittleEndian.PutUint16(out[f+2:], s)
	}
}
