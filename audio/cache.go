package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/territory/core"
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// soundCache stores rendered cues, each rendered once on first use
type soundCache struct {
	mu    sync.RWMutex
	rate  beep.SampleRate
	store [core.SoundTypeCount]floatBuffer
	ready [core.SoundTypeCount]bool
}

func newSoundCache(rate beep.SampleRate) *soundCache {
	return &soundCache{rate: rate}
}

// get returns cached buffer or renders on demand
func (c *soundCache) get(st core.SoundType) floatBuffer {
	if st < 0 || st >= core.SoundTypeCount {
		return nil
	}

	c.mu.RLock()
	if c.ready[st] {
		buf := c.store[st]
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.ready[st] {
		return c.store[st]
	}

	buf := render(Cue(st, c.rate))
	c.store[st] = buf
	c.ready[st] = true
	return buf
}

// preload renders the per-tick cues so the first capture does not stall the mixer
func (c *soundCache) preload() {
	c.get(core.SoundTileGained)
	c.get(core.SoundTileLost)
}

// render drains a streamer into a mono buffer
func render(s beep.Streamer) floatBuffer {
	if s == nil {
		return nil
	}
	var (
		out   floatBuffer
		chunk = make([][2]float64, 512)
	)
	for {
		n, ok := s.Stream(chunk)
		for i := 0; i < n; i++ {
			out = append(out, (chunk[i][0]+chunk[i][1])/2)
		}
		if !ok || n == 0 {
			return out
		}
	}
}
