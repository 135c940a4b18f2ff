package physics

import (
	"voxphys/internal/geom"
)

const (
	// QueryMargin is the fixed radius around the intended position used
	// to ask the sampler for candidate block volumes.
	QueryMargin = 1.0
	// StepHeight is the vertical nudge allowed when walking into a
	// one-block-high ledge.
	StepHeight = 0.5
)

// Sampler returns the block AABBs overlapping a query volume. It is the
// core's only view of world geometry; degenerate or air entries are the
// sampler's job to filter, never this package's.
type Sampler func(query geom.AABB) []geom.AABB

// Axes flags which axes saw a collision during resolution.
type Axes struct {
	X bool
	Y bool
	Z bool
}

// Any reports whether any axis collided.
func (a Axes) Any() bool {
	return a.X || a.Y || a.Z
}

// Result is the outcome of one collision resolution: corrected
// position and velocity, per-axis collision flags, the grounded flag
// and the candidate blocks that were considered.
type Result struct {
	Position geom.Vector3
	Velocity geom.Vector3
	Grounded bool
	Collided Axes
	Nearby   []geom.AABB
}

// Resolve sweeps body (a shape in zero-origin local space) from
// position by velocity*dt against the sampled block volumes.
//
// Axes resolve in strict Y, X, Z order: each axis applies only its own
// displacement component and tests it at the positions the earlier
// axes already resolved. Y-first keeps vertical landings from being
// masked by wall contact. Penetration tests are strict, so resting
// face contact never re-flags an axis.
func Resolve(position, velocity geom.Vector3, dt float64, body geom.AABB, sample Sampler) Result {
	intended := position.Add(velocity.Scale(dt))
	blocks := sample(body.Translate(intended).Extended(QueryMargin))

	pos := position
	vel := velocity
	var collided Axes
	grounded := false
	hitCeiling := false

	// Y axis at the current horizontal position. Snapping moves the body
	// out of the block, so later candidates re-test against the
	// corrected position and the highest floor (or lowest ceiling) wins.
	pos.Y = intended.Y
	for _, block := range blocks {
		if !penetrates(body.Translate(pos), block) {
			continue
		}
		collided.Y = true
		if velocity.Y < 0 {
			pos.Y = block.Max.Y - body.Min.Y
			grounded = true
		} else if velocity.Y > 0 {
			pos.Y = block.Min.Y - body.Max.Y
			hitCeiling = true
		}
	}
	if collided.Y {
		vel.Y = 0
	}

	// X axis at the resolved Y.
	pos.X = intended.X
	for _, block := range blocks {
		if !penetrates(body.Translate(pos), block) {
			continue
		}
		collided.X = true
		if velocity.X > 0 {
			pos.X = block.Min.X - body.Max.X
		} else if velocity.X < 0 {
			pos.X = block.Max.X - body.Min.X
		}
	}
	if collided.X {
		vel.X = 0
	}

	// Z axis at the resolved X and Y.
	pos.Z = intended.Z
	for _, block := range blocks {
		if !penetrates(body.Translate(pos), block) {
			continue
		}
		collided.Z = true
		if velocity.Z > 0 {
			pos.Z = block.Min.Z - body.Max.Z
		} else if velocity.Z < 0 {
			pos.Z = block.Max.Z - body.Min.Z
		}
	}
	if collided.Z {
		vel.Z = 0
	}

	// Step assist: a grounded body stopped by a wall may climb a ledge
	// of up to StepHeight when the raised probe is clear. A ceiling
	// contact vetoes the step; the grounding contact itself does not,
	// since a body resting under gravity re-contacts the floor every
	// step.
	if (collided.X || collided.Z) && !hitCeiling && grounded {
		probe := body.Translate(geom.Vector3{X: pos.X, Y: pos.Y + StepHeight, Z: pos.Z})
		blocked := false
		for _, block := range blocks {
			if penetrates(probe, block) {
				blocked = true
				break
			}
		}
		if !blocked {
			pos.Y = position.Y + StepHeight
			// Restore the unclamped horizontal displacement from the
			// pre-resolution velocity.
			pos.X = position.X + velocity.X*dt
			pos.Z = position.Z + velocity.Z*dt
			collided.X = false
			collided.Z = false
		}
	}

	return Result{
		Position: pos,
		Velocity: vel,
		Grounded: grounded,
		Collided: collided,
		Nearby:   blocks,
	}
}

// CanPlaceBlock reports whether a body standing at position with the
// given shape is free of contact against the sampled geometry:
// placement is legal iff a zero-velocity probe reports no collided
// axis. Resting face contact does not block placement.
func CanPlaceBlock(position geom.Vector3, body geom.AABB, sample Sampler) bool {
	res := Resolve(position, geom.Zero, 0, body, sample)
	return !res.Collided.Any()
}

// penetrates is the strict overlap test used during resolution. Unlike
// AABB.Intersects, faces in resting contact do not count, so a body
// standing exactly on a block face is not treated as colliding with it.
func penetrates(b, o geom.AABB) bool {
	return b.Max.X > o.Min.X && b.Min.X < o.Max.X &&
		b.Max.Y > o.Min.Y && b.Min.Y < o.Max.Y &&
		b.Max.Z > o.Min.Z && b.Min.Z < o.Max.Z
}
