// Package physics implements the per-body simulation step: gravity,
// fluid buoyancy, surface friction and collision resolution against
// axis-aligned block volumes. The package never touches world storage;
// block geometry arrives through a caller-supplied Sampler.
package physics

import (
	"math"

	"voxphys/internal/fault"
	"voxphys/internal/geom"
	"voxphys/internal/numeric"
)

const (
	// StandardGravity is the default downward acceleration.
	StandardGravity = 9.80665
	// DefaultTerminalVelocity caps downward speed in air.
	DefaultTerminalVelocity = 78.4
	// fluidGravityScale is how much of surface gravity a fluid medium
	// transmits: magnitude, terminal velocity and multiplier all scale
	// by it.
	fluidGravityScale = 0.4

	// fallDamageThreshold is the longest drop that deals no damage.
	fallDamageThreshold = 3.0
	fallDamagePerUnit   = 0.5
)

// Gravity is a directional, magnitude-scaled acceleration profile with
// a terminal-velocity clamp and a medium multiplier.
type Gravity struct {
	direction  geom.Vector3 // unit length
	magnitude  numeric.PositiveFloat
	terminal   numeric.PositiveFloat
	multiplier numeric.UnitInterval
}

// DefaultGravity is straight-down standard gravity at full strength.
func DefaultGravity() Gravity {
	return Gravity{
		direction:  geom.Vector3{Y: -1},
		magnitude:  StandardGravity,
		terminal:   DefaultTerminalVelocity,
		multiplier: 1,
	}
}

// NewGravity builds a profile from raw values. The direction is
// normalized on construction; a zero-length direction is a
// ConstraintViolation, not a silent default.
func NewGravity(direction geom.Vector3, magnitude, terminalVelocity, multiplier float64) (Gravity, error) {
	unit, err := direction.Normalized()
	if err != nil {
		return Gravity{}, &fault.ConstraintViolation{Message: "gravity direction has zero length and cannot be normalized"}
	}
	mag, err := numeric.Positive(magnitude)
	if err != nil {
		return Gravity{}, err
	}
	term, err := numeric.Positive(terminalVelocity)
	if err != nil {
		return Gravity{}, err
	}
	mult, err := numeric.Unit(multiplier)
	if err != nil {
		return Gravity{}, err
	}
	return Gravity{direction: unit, magnitude: mag, terminal: term, multiplier: mult}, nil
}

// Direction returns the unit acceleration direction.
func (g Gravity) Direction() geom.Vector3 { return g.direction }

// Magnitude returns the acceleration magnitude.
func (g Gravity) Magnitude() float64 { return float64(g.magnitude) }

// TerminalVelocity returns the downward speed cap.
func (g Gravity) TerminalVelocity() float64 { return float64(g.terminal) }

// Multiplier returns the medium multiplier.
func (g Gravity) Multiplier() float64 { return float64(g.multiplier) }

// Apply accelerates velocity by dt seconds of gravity. The terminal
// clamp bounds only the downward Y component; upward motion and the
// horizontal axes are never clamped.
func (g Gravity) Apply(velocity geom.Vector3, dt float64) geom.Vector3 {
	accel := float64(g.magnitude) * float64(g.multiplier) * dt
	out := geom.Vector3{
		X: velocity.X + g.direction.X*accel,
		Y: velocity.Y + g.direction.Y*accel,
		Z: velocity.Z + g.direction.Z*accel,
	}
	if out.Y < -float64(g.terminal) {
		out.Y = -float64(g.terminal)
	}
	return out
}

// ForMedium selects the gravity profile for air or fluid. Fluids feel
// roughly 40% of surface gravity: magnitude and terminal velocity both
// scale, and the multiplier drops to the same fraction.
func (g Gravity) ForMedium(inFluid bool) Gravity {
	if !inFluid {
		return g
	}
	return Gravity{
		direction:  g.direction,
		magnitude:  numeric.PositiveFloat(float64(g.magnitude) * fluidGravityScale),
		terminal:   numeric.PositiveFloat(float64(g.terminal) * fluidGravityScale),
		multiplier: numeric.UnitInterval(fluidGravityScale),
	}
}

// WithMultiplier returns a copy with the medium multiplier replaced.
// Used to blend the fluid immersion fraction into gravity feel.
func (g Gravity) WithMultiplier(m numeric.UnitInterval) Gravity {
	g.multiplier = m
	return g
}

// JumpVelocity returns the initial vertical speed needed to reach the
// given apex height under this profile.
func (g Gravity) JumpVelocity(height float64) float64 {
	return math.Sqrt(2 * float64(g.magnitude) * float64(g.multiplier) * height)
}

// FallDamage converts a fall distance to damage: drops of up to
// fallDamageThreshold are free, everything beyond scales linearly.
func FallDamage(distance float64) float64 {
	if distance <= fallDamageThreshold {
		return 0
	}
	return (distance - fallDamageThreshold) * fallDamagePerUnit
}
