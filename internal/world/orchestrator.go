package world

import (
	"sync"

	"voxphys/internal/fault"
	"voxphys/internal/geom"
	"voxphys/internal/physics"
	"voxphys/internal/profiling"
)

// BodyStep pairs a body snapshot with the per-tick inputs its
// simulation step needs.
type BodyStep struct {
	Body  Body
	Shape geom.AABB
	Input geom.Vector3
	Fluid physics.FluidSample
}

// StepOptions configures one orchestrated tick.
type StepOptions struct {
	DeltaTime float64
	Sample    physics.Sampler
}

// StepResult is one body's outcome, returned in input order.
type StepResult struct {
	BodyID   BodyID
	Position geom.Vector3
	Velocity geom.Vector3
	Grounded bool
}

// Orchestrator steps all bodies of a world against sampled block
// geometry, then advances the world state exactly once per tick.
type Orchestrator struct {
	repo *Repository
}

// NewOrchestrator wires an orchestrator to a world repository.
func NewOrchestrator(repo *Repository) *Orchestrator {
	return &Orchestrator{repo: repo}
}

// Repo exposes the backing repository for read access.
func (o *Orchestrator) Repo() *Repository {
	return o.repo
}

// StepWorld simulates every body independently (they interact only
// with sampled block geometry, never each other), fans in, advances
// the world aggregate once and persists it. If any body's step fails,
// the whole call fails and the repository keeps its pre-call snapshot.
func (o *Orchestrator) StepWorld(worldID ID, steps []BodyStep, opts StepOptions) ([]StepResult, error) {
	defer profiling.Track("world.StepWorld")()

	w, ok := o.repo.Find(worldID)
	if !ok {
		return nil, &fault.NotFound{Entity: "PhysicsWorld", Reference: string(worldID)}
	}

	results := make([]StepResult, len(steps))
	errs := make([]error, len(steps))

	var wg sync.WaitGroup
	for i, step := range steps {
		wg.Add(1)
		go func(i int, step BodyStep) {
			defer wg.Done()
			out, err := physics.Step(physics.StepInput{
				Position:  step.Body.Motion.Position,
				Velocity:  step.Body.Motion.Velocity,
				Material:  step.Body.Material,
				Shape:     step.Shape,
				Input:     step.Input,
				DeltaTime: opts.DeltaTime,
				TimeStep:  float64(w.Config.TimeStep),
				Sample:    opts.Sample,
				Fluid:     step.Fluid,
			})
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = StepResult{
				BodyID:   step.Body.ID,
				Position: out.Position,
				Velocity: out.Velocity,
				Grounded: out.Grounded,
			}
		}(i, step)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	stepped, err := w.Step(opts.DeltaTime, len(steps))
	if err != nil {
		return nil, err
	}
	o.repo.Save(stepped)
	return results, nil
}
