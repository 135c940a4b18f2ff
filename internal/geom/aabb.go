package geom

import (
	"fmt"

	"voxphys/internal/fault"
)

// AABB is an axis-aligned box described by its min and max corners.
// It represents both static block volumes and swept body volumes.
type AABB struct {
	Min Vector3
	Max Vector3
}

// NewAABB validates that max >= min on every axis.
func NewAABB(min, max Vector3) (AABB, error) {
	if max.X < min.X || max.Y < min.Y || max.Z < min.Z {
		return AABB{}, &fault.ConstraintViolation{
			Message: fmt.Sprintf("aabb max must not be below min: min=%v max=%v", min, max),
		}
	}
	return AABB{Min: min, Max: max}, nil
}

// Intersects reports whether the two boxes overlap on all three axes.
// Touching faces count as an intersection (inclusive bounds).
func (b AABB) Intersects(o AABB) bool {
	return b.Max.X >= o.Min.X && b.Min.X <= o.Max.X &&
		b.Max.Y >= o.Min.Y && b.Min.Y <= o.Max.Y &&
		b.Max.Z >= o.Min.Z && b.Min.Z <= o.Max.Z
}

// Translate shifts both corners by offset. Size is invariant.
func (b AABB) Translate(offset Vector3) AABB {
	return AABB{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// Size returns the extent of the box per axis.
func (b AABB) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Extended grows the box by margin on every side. Used to build the
// block-sampler query volume around an intended position.
func (b AABB) Extended(margin float64) AABB {
	m := Vector3{X: margin, Y: margin, Z: margin}
	return AABB{Min: b.Min.Sub(m), Max: b.Max.Add(m)}
}
