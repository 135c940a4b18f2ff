package world

import (
	"fmt"
	"sync/atomic"
	"time"

	"voxphys/internal/geom"
	"voxphys/internal/numeric"
	"voxphys/internal/registry"
)

// BodyID identifies a rigid body.
type BodyID string

// BodyType determines how the simulation treats a body.
type BodyType string

const (
	BodyStatic    BodyType = "static"
	BodyDynamic   BodyType = "dynamic"
	BodyKinematic BodyType = "kinematic"
)

// DefaultRestitution applies when a body spec does not override it.
const DefaultRestitution = 0.3

// Motion is a body's kinematic state.
type Motion struct {
	Position     geom.Vector3
	Velocity     geom.Vector3
	Acceleration geom.Vector3
}

// Body is an immutable rigid body snapshot. WorldID is set at creation
// and never changes; a body belongs to exactly one world.
type Body struct {
	ID          BodyID
	WorldID     ID
	EntityID    string
	Type        BodyType
	Material    string
	Mass        numeric.PositiveFloat
	Motion      Motion
	Restitution numeric.UnitInterval
	Friction    numeric.UnitInterval
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BodySpec is the input to the body factory. Friction defaults from
// the material table and Restitution to DefaultRestitution when nil.
type BodySpec struct {
	WorldID     ID
	EntityID    string
	Type        BodyType
	Material    string
	Mass        float64
	Position    geom.Vector3
	Friction    *float64
	Restitution *float64
}

var bodySeq atomic.Uint64

// NewBody validates the spec and builds a body at rest.
func NewBody(spec BodySpec) (Body, error) {
	mass, err := numeric.Positive(spec.Mass)
	if err != nil {
		return Body{}, err
	}

	frictionValue := registry.FrictionOf(spec.Material)
	if spec.Friction != nil {
		frictionValue = *spec.Friction
	}
	friction, err := numeric.Unit(frictionValue)
	if err != nil {
		return Body{}, err
	}

	restitutionValue := float64(DefaultRestitution)
	if spec.Restitution != nil {
		restitutionValue = *spec.Restitution
	}
	restitution, err := numeric.Unit(restitutionValue)
	if err != nil {
		return Body{}, err
	}

	now := time.Now()
	return Body{
		ID:          BodyID(fmt.Sprintf("body-%d", bodySeq.Add(1))),
		WorldID:     spec.WorldID,
		EntityID:    spec.EntityID,
		Type:        spec.Type,
		Material:    spec.Material,
		Mass:        mass,
		Motion:      Motion{Position: spec.Position},
		Restitution: restitution,
		Friction:    friction,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ApplyForce integrates a force over dt with semi-implicit Euler:
// a = F/m, v += a*dt, p += v*dt.
func (b Body) ApplyForce(force geom.Vector3, dt float64) (Body, error) {
	if _, err := numeric.Positive(dt); err != nil {
		return Body{}, err
	}
	accel := force.Scale(1 / float64(b.Mass))
	velocity := b.Motion.Velocity.Add(accel.Scale(dt))
	position := b.Motion.Position.Add(velocity.Scale(dt))
	b.Motion = Motion{Position: position, Velocity: velocity, Acceleration: accel}
	b.UpdatedAt = time.Now()
	return b, nil
}

// WithMotion returns a snapshot with the motion state replaced. Used
// by the orchestrator to commit a simulation step's result.
func (b Body) WithMotion(m Motion) Body {
	b.Motion = m
	b.UpdatedAt = time.Now()
	return b
}

// TouchGround settles a body that just landed. Static bodies never
// accumulate velocity, so theirs is damped to zero outright; other
// types only lose their vertical component.
func (b Body) TouchGround() Body {
	if b.Type == BodyStatic {
		b.Motion.Velocity = geom.Zero
	} else {
		b.Motion.Velocity.Y = 0
	}
	b.Motion.Acceleration = geom.Zero
	b.UpdatedAt = time.Now()
	return b
}
