// Package geom provides the immutable Vector3 and AABB value types the
// physics core is built on. Constructors validate their inputs; all
// arithmetic produces new values, never in-place mutation.
package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"voxphys/internal/fault"
)

// Vector3 is an immutable 3D vector with finite components.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Zero is the origin vector.
var Zero = Vector3{}

// NewVector validates all three components as finite floats.
func NewVector(x, y, z float64) (Vector3, error) {
	for _, c := range [3]float64{x, y, z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Vector3{}, &fault.SchemaViolation{
				Message: "vector component must be finite",
				Issue:   fmt.Sprintf("got (%v, %v, %v)", x, y, z),
			}
		}
	}
	return Vector3{X: x, Y: y, Z: z}, nil
}

// Vec converts to an mgl64 vector for math interop.
func (v Vector3) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// FromVec converts back from an mgl64 vector.
func FromVec(m mgl64.Vec3) Vector3 {
	return Vector3{X: m.X(), Y: m.Y(), Z: m.Z()}
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Len returns the Euclidean length.
func (v Vector3) Len() float64 {
	return v.Vec().Len()
}

// HorizontalLen returns the length of the XZ projection.
func (v Vector3) HorizontalLen() float64 {
	return math.Hypot(v.X, v.Z)
}

// Normalized returns the unit vector in v's direction. Fails with a
// ConstraintViolation when v has zero length.
func (v Vector3) Normalized() (Vector3, error) {
	if v.Len() == 0 {
		return Vector3{}, &fault.ConstraintViolation{Message: "cannot normalize zero-length vector"}
	}
	return FromVec(v.Vec().Normalize()), nil
}
