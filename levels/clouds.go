package levels

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/milk9111/pollo/prefabs"
)

const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3

	defaultNoiseScale = 500.0
)

// liftClouds raises each cloud by up to spec.CloudLift. The lift follows
// smooth noise over x, so clouds that spawn close together sit at similar
// heights.
func liftClouds(clouds []Entity, spec prefabs.LevelSpec) {
	if spec.CloudLift <= 0 || len(clouds) == 0 {
		return
	}
	scale := spec.CloudNoiseScale
	if scale <= 0 {
		scale = defaultNoiseScale
	}
	p := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, spec.CloudNoiseSeed)
	for i := range clouds {
		n := (p.Noise1D(clouds[i].X/scale) + 1) / 2
		n = math.Max(0, math.Min(1, n))
		clouds[i].Y = -spec.CloudLift * n
	}
}
