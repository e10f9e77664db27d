package frame

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/banshee-data/spatial"
)

// Pose3 is a rigid transform tagged with the coordinate system it acts in.
type Pose3 struct {
	frame *CoordinateSystem
	p     spatial.Pose3
}

// NewPose3 tags p with the given coordinate system.
func NewPose3(cs *CoordinateSystem, p spatial.Pose3) Pose3 {
	return Pose3{frame: cs, p: p}
}

// Frame returns the coordinate system the pose acts in.
func (a Pose3) Frame() *CoordinateSystem { return a.frame }

// Pose returns the untagged pose payload.
func (a Pose3) Pose() spatial.Pose3 { return a.p }

// Rotation returns the pose's rotation as a frame-tagged value.
func (a Pose3) Rotation() Rotation3 {
	return Rotation3{frame: a.frame, r: a.p.Rotation}
}

// Translation returns the pose's translation as a frame-tagged value.
func (a Pose3) Translation() Vector3 {
	return Vector3{frame: a.frame, v: a.p.Translation}
}

// rotate applies the pose's rotation with the frame's conjugation
// convention, matching Rotation3.RotateVector.
func (a Pose3) rotate(v r3.Vector) r3.Vector {
	if a.frame.rightHanded {
		return a.p.Rotation.RotateVector(v)
	}
	return a.p.Rotation.Inverse().RotateVector(v)
}

// TransformPoint applies the pose to a point, failing when the frames
// differ. The rotation follows the frame's conjugation convention, so
// transforming and then converting frames agrees with converting and then
// transforming.
func (a Pose3) TransformPoint(pt Vector3) (Vector3, error) {
	if err := sameFrame(a.frame, pt.frame); err != nil {
		return Vector3{}, err
	}
	return Vector3{frame: a.frame, v: a.rotate(pt.v).Add(a.p.Translation)}, nil
}

// Mul composes poses, failing when the frames differ. Both the rotation
// part and the translation term follow the frame's handedness convention,
// the rotation via Rotation3.Mul's operand order and the translation via
// the same conjugation as TransformPoint.
func (a Pose3) Mul(b Pose3) (Pose3, error) {
	rot, err := a.Rotation().Mul(b.Rotation())
	if err != nil {
		return Pose3{}, err
	}
	return Pose3{
		frame: a.frame,
		p: spatial.Pose3{
			Rotation:    rot.r,
			Translation: a.rotate(b.p.Translation).Add(a.p.Translation),
		},
	}, nil
}

// Div composes a with the inverse of b.
func (a Pose3) Div(b Pose3) (Pose3, error) {
	return a.Mul(b.Inverse())
}

// Inverse returns the inverse pose in the same frame, the pose whose Mul
// with a yields the identity under the frame's conjugation convention.
func (a Pose3) Inverse() Pose3 {
	if a.frame.rightHanded {
		return Pose3{frame: a.frame, p: a.p.Inverse()}
	}
	return Pose3{frame: a.frame, p: spatial.Pose3{
		Rotation:    a.p.Rotation.Inverse(),
		Translation: a.p.Rotation.RotateVector(a.p.Translation).Mul(-1),
	}}
}

// Equal reports exact equality of translation and rotation (mod double
// cover), failing when the frames differ.
func (a Pose3) Equal(b Pose3) (bool, error) {
	if err := sameFrame(a.frame, b.frame); err != nil {
		return false, err
	}
	return a.p.Translation == b.p.Translation && a.p.Rotation.EqualExact(b.p.Rotation), nil
}

// ToRDF re-expresses the pose in the canonical RDF frame; rotation and
// translation convert independently.
func (a Pose3) ToRDF() Pose3 {
	rot := a.Rotation().ToRDF()
	trans := a.Translation().ToRDF()
	return Pose3{frame: RDF, p: spatial.Pose3{Rotation: rot.r, Translation: trans.v}}
}

// PoseFromRDF re-expresses a pose from the RDF frame in cs. The input must
// literally be tagged with RDF.
func (cs *CoordinateSystem) PoseFromRDF(p Pose3) (Pose3, error) {
	rot, err := cs.RotationFromRDF(p.Rotation())
	if err != nil {
		return Pose3{}, err
	}
	trans, err := cs.VectorFromRDF(p.Translation())
	if err != nil {
		return Pose3{}, err
	}
	return Pose3{frame: cs, p: spatial.Pose3{Rotation: rot.r, Translation: trans.v}}, nil
}

// ToFrame re-expresses the pose in target, routing through RDF.
func (a Pose3) ToFrame(target *CoordinateSystem) Pose3 {
	if a.frame == target {
		return a
	}
	out, err := target.PoseFromRDF(a.ToRDF())
	if err != nil {
		// Unreachable: ToRDF always yields an RDF-tagged value.
		panic(err)
	}
	return out
}

// String implements fmt.Stringer.
func (a Pose3) String() string {
	return fmt.Sprintf("%v@%s", a.p, a.frame.name)
}
