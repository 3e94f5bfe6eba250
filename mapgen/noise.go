package mapgen

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/lixenwraith/territory/core"
	"github.com/lixenwraith/territory/grid"
)

const (
	noiseOctaves     = 3
	noiseFrequency   = 0.12
	noisePersistence = 0.5
)

// fillNoise blocks tiles whose fractal noise exceeds threshold
func fillNoise(blocked []bool, b grid.Bounds, seed int64, threshold float64) {
	if threshold >= 1 {
		return
	}
	noise := opensimplex.NewNormalized(seed)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			v := octaveNoise(noise, float64(x), float64(y))
			blocked[b.Index(core.Pos(x, y))] = v > threshold
		}
	}
}

// octaveNoise layers frequencies into a value in [0, 1]
func octaveNoise(noise opensimplex.Noise, x, y float64) float64 {
	total, amplitude, norm := 0.0, 1.0, 0.0
	frequency := noiseFrequency
	for range noiseOctaves {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		norm += amplitude
		amplitude *= noisePersistence
		frequency *= 2
	}
	return total / norm
}
