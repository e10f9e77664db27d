// Package pbconv converts between the spatial value types and their wire
// messages in spatialpb. Conversions are field-for-field; absent message
// fields decode as zero, and rotation decoding applies the zero→identity
// quaternion substitution so an all-default message means "no rotation".
package pbconv

import (
	"github.com/golang/geo/r3"

	"github.com/banshee-data/spatial"
	"github.com/banshee-data/spatial/spatialpb"
)

// VectorToProto converts a vector to its wire message.
func VectorToProto(v r3.Vector) *spatialpb.Vector3 {
	return &spatialpb.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// VectorFromProto converts a wire message to a vector. A nil message is
// the zero vector.
func VectorFromProto(m *spatialpb.Vector3) r3.Vector {
	if m == nil {
		return r3.Vector{}
	}
	return r3.Vector{X: m.X, Y: m.Y, Z: m.Z}
}

// QuaternionToProto converts a quaternion to its wire message.
func QuaternionToProto(q spatial.Quaternion) *spatialpb.Quaternion {
	return &spatialpb.Quaternion{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

// QuaternionFromProto converts a wire message to a quaternion. A nil or
// all-default message is the zero quaternion; no substitution happens at
// this level.
func QuaternionFromProto(m *spatialpb.Quaternion) spatial.Quaternion {
	if m == nil {
		return spatial.Zero()
	}
	return spatial.Quaternion{X: m.X, Y: m.Y, Z: m.Z, W: m.W}
}

// RotationToProto converts a rotation to its quaternion wire message.
func RotationToProto(r spatial.Rotation3) *spatialpb.Quaternion {
	return QuaternionToProto(r.Quat())
}

// RotationFromProto builds a rotation from a quaternion wire message. The
// zero quaternion (including a nil or all-default message) becomes the
// identity rotation; other degenerate quaternions fail with
// spatial.ErrInvalidRotation.
func RotationFromProto(m *spatialpb.Quaternion) (spatial.Rotation3, error) {
	return spatial.NewRotation3(QuaternionFromProto(m), false)
}

// PoseToProto converts a pose to its Transform wire message, position from
// the translation and rotation from the quaternion components.
func PoseToProto(p spatial.Pose3) *spatialpb.Transform {
	return &spatialpb.Transform{
		Position: VectorToProto(p.Translation),
		Rotation: RotationToProto(p.Rotation),
	}
}

// PoseFromProto converts a Transform wire message to a pose. Absent
// position or rotation decode as zero translation and identity rotation.
func PoseFromProto(m *spatialpb.Transform) (spatial.Pose3, error) {
	if m == nil {
		return spatial.IdentityPose(), nil
	}
	rot, err := RotationFromProto(m.Rotation)
	if err != nil {
		return spatial.Pose3{}, err
	}
	return spatial.Pose3{
		Rotation:    rot,
		Translation: VectorFromProto(m.Position),
	}, nil
}
