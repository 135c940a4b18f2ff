package physics

import (
	"math"
	"testing"

	"voxphys/internal/geom"
)

// gridSampler mimics a chunked terrain query: a flat floor of unit
// blocks with a few scattered pillars.
func gridSampler() Sampler {
	return func(query geom.AABB) []geom.AABB {
		var out []geom.AABB
		minX := int(math.Floor(query.Min.X))
		maxX := int(math.Ceil(query.Max.X))
		minZ := int(math.Floor(query.Min.Z))
		maxZ := int(math.Ceil(query.Max.Z))
		for x := minX; x < maxX; x++ {
			for z := minZ; z < maxZ; z++ {
				block := geom.AABB{
					Min: geom.Vector3{X: float64(x), Y: -1, Z: float64(z)},
					Max: geom.Vector3{X: float64(x + 1), Y: 0, Z: float64(z + 1)},
				}
				if query.Intersects(block) {
					out = append(out, block)
				}
				if x%4 == 0 && z%4 == 0 {
					pillar := geom.AABB{
						Min: geom.Vector3{X: float64(x), Y: 0, Z: float64(z)},
						Max: geom.Vector3{X: float64(x + 1), Y: 2, Z: float64(z + 1)},
					}
					if query.Intersects(pillar) {
						out = append(out, pillar)
					}
				}
			}
		}
		return out
	}
}

func BenchmarkResolve(b *testing.B) {
	sample := gridSampler()
	pos := geom.Vector3{X: 1.2, Y: 0, Z: 1.2}
	vel := geom.Vector3{X: 2, Y: -1, Z: 1.5}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Resolve(pos, vel, 1.0/60.0, playerShape, sample)
	}
}

func BenchmarkStep(b *testing.B) {
	sample := gridSampler()
	in := StepInput{
		Position:  geom.Vector3{X: 1.2, Y: 0, Z: 1.2},
		Velocity:  geom.Vector3{X: 2, Z: 1.5},
		Material:  "stone",
		Shape:     playerShape,
		Input:     geom.Vector3{X: 1},
		DeltaTime: 1.0 / 60.0,
		TimeStep:  1.0 / 60.0,
		Sample:    sample,
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Step(in)
	}
}
