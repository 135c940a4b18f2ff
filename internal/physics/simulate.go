package physics

import (
	"voxphys/internal/geom"
	"voxphys/internal/numeric"
)

// Horizontal speed is capped in units per simulated-60fps tick, so the
// cap is independent of the caller's actual step rate.
const horizontalCapTicksPerSecond = 60

// StepInput is everything one body's simulation step needs. Shape is
// the body's AABB in zero-origin local space; Sample and Fluid are the
// terrain subsystem's view of the surroundings.
type StepInput struct {
	Position  geom.Vector3
	Velocity  geom.Vector3
	Material  string
	Shape     geom.AABB
	Input     geom.Vector3
	DeltaTime float64
	TimeStep  float64
	Sample    Sampler
	Fluid     FluidSample
}

// StepOutput is the corrected motion state after one step.
type StepOutput struct {
	Position geom.Vector3
	Velocity geom.Vector3
	Grounded bool
}

// Step advances one body by DeltaTime. The pipeline order is fixed:
// fluid classification, gravity for the medium scaled by immersion,
// fluid resistance, collision resolution, surface friction, horizontal
// speed cap.
func Step(in StepInput) (StepOutput, error) {
	if _, err := numeric.Positive(in.DeltaTime); err != nil {
		return StepOutput{}, err
	}

	fluid := FluidFromSamples(in.Fluid)

	gravity := DefaultGravity().ForMedium(fluid.InFluid())
	if fluid.InFluid() {
		gravity = gravity.WithMultiplier(numeric.UnitInterval(gravity.Multiplier() * float64(fluid.Immersion)))
	}

	velocity := gravity.Apply(in.Velocity, in.DeltaTime)
	velocity = fluid.ApplyResistance(velocity)

	res := Resolve(in.Position, velocity, in.DeltaTime, in.Shape, in.Sample)

	velocity = FrictionFromMaterial(in.Material).Apply(res.Velocity, in.Input)
	velocity = ClampHorizontal(velocity, in.TimeStep*horizontalCapTicksPerSecond)

	return StepOutput{
		Position: res.Position,
		Velocity: velocity,
		Grounded: res.Grounded,
	}, nil
}
