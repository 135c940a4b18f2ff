package physics

import (
	"voxphys/internal/geom"
	"voxphys/internal/numeric"
	"voxphys/internal/registry"
)

const (
	// iceThreshold marks the near-frictionless tier: velocity decays
	// multiplicatively and input has no direct effect.
	iceThreshold = 0.95
	// assistThreshold marks the near-zero tier, where a small direct
	// input contribution keeps motion possible at all.
	assistThreshold = 0.1
	assistInputGain = 0.05
)

// Friction is a per-material surface coefficient in [0, 1] together
// with the material it came from.
type Friction struct {
	Material    string
	Coefficient numeric.UnitInterval
}

// FrictionFromMaterial looks the coefficient up in the registry table.
// Unknown materials use registry.DefaultFriction.
func FrictionFromMaterial(material string) Friction {
	return Friction{
		Material:    material,
		Coefficient: numeric.UnitInterval(registry.FrictionOf(material)),
	}
}

// NewFriction builds a friction value with an explicit coefficient,
// overriding the material table.
func NewFriction(material string, coefficient float64) (Friction, error) {
	c, err := numeric.Unit(coefficient)
	if err != nil {
		return Friction{}, err
	}
	return Friction{Material: material, Coefficient: c}, nil
}

// Apply blends the body's velocity with the desired input velocity
// according to the coefficient tier. The model is deliberately a
// three-way branch, not a continuous blend:
//
//	> 0.95  ice-like: pure momentum decay, input ignored
//	< 0.1   near-zero: decayed momentum plus a tiny input assist
//	else    normal ground: horizontal velocity snaps to input
//
// The Y component is never modified by friction.
func (f Friction) Apply(velocity, input geom.Vector3) geom.Vector3 {
	c := float64(f.Coefficient)
	out := velocity
	switch {
	case c > iceThreshold:
		out.X = velocity.X * c
		out.Z = velocity.Z * c
	case c < assistThreshold:
		out.X = velocity.X*c + input.X*assistInputGain
		out.Z = velocity.Z*c + input.Z*assistInputGain
	default:
		out.X = input.X
		out.Z = input.Z
	}
	return out
}

// ClampHorizontal rescales the XZ components uniformly so their
// combined speed never exceeds maxSpeed. Y passes through unchanged.
func ClampHorizontal(velocity geom.Vector3, maxSpeed float64) geom.Vector3 {
	speed := velocity.HorizontalLen()
	if speed <= maxSpeed || speed == 0 {
		return velocity
	}
	scale := maxSpeed / speed
	return geom.Vector3{X: velocity.X * scale, Y: velocity.Y, Z: velocity.Z * scale}
}
