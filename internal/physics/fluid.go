package physics

import (
	"voxphys/internal/geom"
	"voxphys/internal/numeric"
	"voxphys/internal/registry"
)

// Per-kind drag: the fraction of velocity removed per step at full
// immersion. Lava is thicker than water.
var fluidDrag = map[registry.Fluid]float64{
	registry.FluidWater: 0.5,
	registry.FluidLava:  0.7,
}

// FluidSample carries the head and feet block samples a caller took
// from the terrain subsystem: block ids plus the fluid fill level of
// each block in [0, 1].
type FluidSample struct {
	HeadBlock string
	FeetBlock string
	HeadLevel float64
	FeetLevel float64
}

// FluidState classifies a body's occupancy of fluid blocks into a kind
// and an immersion fraction of its vertical extent.
type FluidState struct {
	Kind      registry.Fluid
	Immersion numeric.UnitInterval
}

// FluidFromSamples derives the fluid state from head/feet samples.
// Feet below the surface contribute the lower half of the immersion
// range, a submerged head the upper half.
func FluidFromSamples(s FluidSample) FluidState {
	feet := registry.FluidOf(s.FeetBlock)
	head := registry.FluidOf(s.HeadBlock)
	if feet == registry.FluidNone {
		return FluidState{Kind: registry.FluidNone, Immersion: 0}
	}

	feetLevel := clampUnit(s.FeetLevel)
	immersion := feetLevel * 0.5
	if head == feet {
		immersion = 0.5 + clampUnit(s.HeadLevel)*0.5
	}
	return FluidState{Kind: feet, Immersion: numeric.UnitInterval(immersion)}
}

// InFluid reports whether any part of the body is below a fluid surface.
func (f FluidState) InFluid() bool {
	return f.Kind != registry.FluidNone && f.Immersion > 0
}

// FullySubmerged reports whether the head is under the surface too.
func (f FluidState) FullySubmerged() bool {
	return f.Kind != registry.FluidNone && f.Immersion >= 1
}

// ApplyResistance damps velocity proportionally to immersion using the
// fluid kind's drag. Out of fluid it is the identity.
func (f FluidState) ApplyResistance(velocity geom.Vector3) geom.Vector3 {
	if !f.InFluid() {
		return velocity
	}
	keep := 1 - fluidDrag[f.Kind]*float64(f.Immersion)
	return velocity.Scale(keep)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
