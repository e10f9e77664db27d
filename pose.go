package spatial

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Pose3 is a rigid transform p ↦ Rotation·p + Translation. The zero value
// is the identity pose.
type Pose3 struct {
	Rotation    Rotation3
	Translation r3.Vector
}

// NewPose3 builds a pose from a rotation and a translation.
func NewPose3(rotation Rotation3, translation r3.Vector) Pose3 {
	return Pose3{Rotation: rotation, Translation: translation}
}

// IdentityPose returns the identity transform.
func IdentityPose() Pose3 {
	return Pose3{Rotation: IdentityRotation()}
}

// TransformPoint applies the pose to a point: Rotation·p + Translation.
func (p Pose3) TransformPoint(pt r3.Vector) r3.Vector {
	return p.Rotation.RotateVector(pt).Add(p.Translation)
}

// Mul composes poses so that (a.Mul(b)).TransformPoint(p) equals
// a.TransformPoint(b.TransformPoint(p)).
func (p Pose3) Mul(o Pose3) Pose3 {
	return Pose3{
		Rotation:    p.Rotation.Mul(o.Rotation),
		Translation: p.TransformPoint(o.Translation),
	}
}

// Inverse returns the inverse transform. Built only from the exact
// Rotation3.Inverse, so p.Inverse().Inverse() equals p exactly, and
// p.Mul(p.Inverse()) is the identity up to floating error.
func (p Pose3) Inverse() Pose3 {
	rinv := p.Rotation.Inverse()
	return Pose3{
		Rotation:    rinv,
		Translation: rinv.RotateVector(p.Translation).Mul(-1),
	}
}

// Div returns p composed with the inverse of o.
func (p Pose3) Div(o Pose3) Pose3 {
	return p.Mul(o.Inverse())
}

// PoseFromFlat builds a pose from the flattened [x, y, z, roll, pitch, yaw]
// form, angles in radians with the same fixed-axis X→Y→Z convention as
// FromEulerAngles.
func PoseFromFlat(v [6]float64) Pose3 {
	return Pose3{
		Rotation:    FromEulerAngles(v[3], v[4], v[5]),
		Translation: r3.Vector{X: v[0], Y: v[1], Z: v[2]},
	}
}

// Flat returns the pose in the flattened [x, y, z, roll, pitch, yaw] form.
func (p Pose3) Flat() [6]float64 {
	roll, pitch, yaw := p.Rotation.EulerAngles()
	return [6]float64{p.Translation.X, p.Translation.Y, p.Translation.Z, roll, pitch, yaw}
}

// PoseFromFlatAxisAngle builds a pose from [x, y, z, rx, ry, rz] where the
// last three components are an axis-angle vector: direction is the rotation
// axis, magnitude the angle in radians. A zero rotation vector means no
// rotation.
func PoseFromFlatAxisAngle(v [6]float64) Pose3 {
	aa := r3.Vector{X: v[3], Y: v[4], Z: v[5]}
	rot := IdentityRotation()
	if theta := aa.Norm(); theta > zeroEps {
		r, err := AxisAngleRotation(aa, theta)
		if err != nil {
			// Unreachable: the norm was checked above.
			panic(fmt.Sprintf("axis-angle rotation from %v: %v", aa, err))
		}
		rot = r
	}
	return Pose3{
		Rotation:    rot,
		Translation: r3.Vector{X: v[0], Y: v[1], Z: v[2]},
	}
}

// FlatAxisAngle returns the pose in [x, y, z, rx, ry, rz] axis-angle form.
// The axis reported for a near-zero rotation is +x, giving a zero rotation
// vector.
func (p Pose3) FlatAxisAngle() [6]float64 {
	axis, angle := p.Rotation.AxisAngle(r3.Vector{X: 1})
	aa := axis.Mul(angle)
	return [6]float64{p.Translation.X, p.Translation.Y, p.Translation.Z, aa.X, aa.Y, aa.Z}
}

// String implements fmt.Stringer.
func (p Pose3) String() string {
	return fmt.Sprintf("Pose3{rot: %v, trans: (%g, %g, %g)}",
		p.Rotation, p.Translation.X, p.Translation.Y, p.Translation.Z)
}
