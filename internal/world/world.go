// Package world holds the physics world and rigid body aggregates, the
// in-memory world repository and the per-tick orchestrator. Aggregates
// are immutable snapshots: every mutator consumes the old value and
// returns a new one, so readers never observe a partial update.
package world

import (
	"fmt"
	"sync/atomic"
	"time"

	"voxphys/internal/geom"
	"voxphys/internal/numeric"
)

// ID identifies a physics world. Generated at creation, never reused.
type ID string

// Config carries the per-world simulation tunables. Immutable once
// attached to a world except through UpdateConfig, which revalidates
// the merged struct.
type Config struct {
	TimeStep         numeric.PositiveFloat
	MaxSubSteps      int
	Damping          numeric.UnitInterval
	SolverIterations int
}

// NewConfig validates all tunables. MaxSubSteps is bounded to [1, 10]
// and SolverIterations to [1, 40].
func NewConfig(timeStep float64, maxSubSteps int, damping float64, solverIterations int) (Config, error) {
	ts, err := numeric.Positive(timeStep)
	if err != nil {
		return Config{}, err
	}
	subSteps, err := numeric.IntInRange(maxSubSteps, 1, 10, "maxSubSteps")
	if err != nil {
		return Config{}, err
	}
	damp, err := numeric.Unit(damping)
	if err != nil {
		return Config{}, err
	}
	iters, err := numeric.IntInRange(solverIterations, 1, 40, "solverIterations")
	if err != nil {
		return Config{}, err
	}
	return Config{TimeStep: ts, MaxSubSteps: subSteps, Damping: damp, SolverIterations: iters}, nil
}

// DefaultConfig is a 60Hz step with moderate solver settings.
func DefaultConfig() Config {
	return Config{TimeStep: 1.0 / 60.0, MaxSubSteps: 4, Damping: 0.01, SolverIterations: 10}
}

// ConfigPatch is a partial config update; nil fields keep the current
// value. The merged result is validated as a whole.
type ConfigPatch struct {
	TimeStep         *float64
	MaxSubSteps      *int
	Damping          *float64
	SolverIterations *int
}

// State is the mutable portion of a world snapshot. TotalTime only
// ever increases, via Step.
type State struct {
	IsRunning    bool
	TotalTime    numeric.NonNegativeFloat
	EntityCount  int
	ActiveBodies int
	LastStepAt   int64 // epoch millis
}

// World is an immutable physics world snapshot.
type World struct {
	ID        ID
	Config    Config
	Gravity   geom.Vector3
	State     State
	CreatedAt time.Time
	UpdatedAt time.Time
}

var worldSeq atomic.Uint64

// New creates an idle, empty world with a fresh id.
func New(cfg Config, gravity geom.Vector3) World {
	now := time.Now()
	return World{
		ID:        ID(fmt.Sprintf("world-%d", worldSeq.Add(1))),
		Config:    cfg,
		Gravity:   gravity,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Start marks the world running. Starting a running world is a no-op
// that returns the receiver unchanged, not an error.
func (w World) Start() World {
	if w.State.IsRunning {
		return w
	}
	w.State.IsRunning = true
	w.UpdatedAt = time.Now()
	return w
}

// Stop marks the world idle. Stopping an idle world is a no-op.
func (w World) Stop() World {
	if !w.State.IsRunning {
		return w
	}
	w.State.IsRunning = false
	w.UpdatedAt = time.Now()
	return w
}

// Step records dt seconds of simulated time and the active body count.
// Legal while stopped: stepping does not require IsRunning, it only
// accounts for simulated time. TotalTime is monotonic.
func (w World) Step(dt float64, activeBodies int) (World, error) {
	if _, err := numeric.Positive(dt); err != nil {
		return World{}, err
	}
	w.State.TotalTime += numeric.NonNegativeFloat(dt)
	w.State.ActiveBodies = activeBodies
	w.State.LastStepAt = time.Now().UnixMilli()
	w.UpdatedAt = time.Now()
	return w, nil
}

// UpdateConfig merges the patch over the current config and validates
// the result before attaching it.
func (w World) UpdateConfig(p ConfigPatch) (World, error) {
	timeStep := float64(w.Config.TimeStep)
	if p.TimeStep != nil {
		timeStep = *p.TimeStep
	}
	maxSubSteps := w.Config.MaxSubSteps
	if p.MaxSubSteps != nil {
		maxSubSteps = *p.MaxSubSteps
	}
	damping := float64(w.Config.Damping)
	if p.Damping != nil {
		damping = *p.Damping
	}
	iterations := w.Config.SolverIterations
	if p.SolverIterations != nil {
		iterations = *p.SolverIterations
	}
	cfg, err := NewConfig(timeStep, maxSubSteps, damping, iterations)
	if err != nil {
		return World{}, err
	}
	w.Config = cfg
	w.UpdatedAt = time.Now()
	return w, nil
}

// WithEntityCount returns a snapshot with the entity count replaced.
func (w World) WithEntityCount(n int) World {
	w.State.EntityCount = n
	w.UpdatedAt = time.Now()
	return w
}
