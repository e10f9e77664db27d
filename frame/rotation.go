package frame

import (
	"fmt"

	"github.com/banshee-data/spatial"
)

// Rotation3 is a rotation tagged with the coordinate system it acts in.
type Rotation3 struct {
	frame *CoordinateSystem
	r     spatial.Rotation3
}

// NewRotation3 tags r with the given coordinate system.
func NewRotation3(cs *CoordinateSystem, r spatial.Rotation3) Rotation3 {
	return Rotation3{frame: cs, r: r}
}

// Frame returns the coordinate system the rotation acts in.
func (a Rotation3) Frame() *CoordinateSystem { return a.frame }

// Rotation returns the untagged rotation payload.
func (a Rotation3) Rotation() spatial.Rotation3 { return a.r }

// Mul composes rotations, failing when the frames differ. Like
// Quaternion.Mul, operands compose in reflected order in a left-handed
// frame.
func (a Rotation3) Mul(b Rotation3) (Rotation3, error) {
	if err := sameFrame(a.frame, b.frame); err != nil {
		return Rotation3{}, err
	}
	if a.frame.rightHanded {
		return Rotation3{frame: a.frame, r: a.r.Mul(b.r)}, nil
	}
	return Rotation3{frame: a.frame, r: b.r.Mul(a.r)}, nil
}

// Div composes a with the inverse of b, with the same handedness-dependent
// operand order as Mul.
func (a Rotation3) Div(b Rotation3) (Rotation3, error) {
	return a.Mul(Rotation3{frame: b.frame, r: b.r.Inverse()})
}

// Inverse returns the inverse rotation in the same frame.
func (a Rotation3) Inverse() Rotation3 {
	return Rotation3{frame: a.frame, r: a.r.Inverse()}
}

// RotateVector rotates v by a, failing when the frames differ. In a
// left-handed frame the conjugation reverses to q⁻¹·v·q, the vector
// counterpart of Mul's reflected operand order; with both in place,
// rotating and then converting frames agrees with converting and then
// rotating.
func (a Rotation3) RotateVector(v Vector3) (Vector3, error) {
	if err := sameFrame(a.frame, v.frame); err != nil {
		return Vector3{}, err
	}
	if a.frame.rightHanded {
		return Vector3{frame: a.frame, v: a.r.RotateVector(v.v)}, nil
	}
	return Vector3{frame: a.frame, v: a.r.Inverse().RotateVector(v.v)}, nil
}

// EqualExact reports component-exact rotation equality mod double cover,
// failing when the frames differ.
func (a Rotation3) EqualExact(b Rotation3) (bool, error) {
	if err := sameFrame(a.frame, b.frame); err != nil {
		return false, err
	}
	return a.r.EqualExact(b.r), nil
}

// ApproxEqual reports whether the relative rotation angle between a and b
// is at most tol radians, failing when the frames differ.
func (a Rotation3) ApproxEqual(b Rotation3, tol float64) (bool, error) {
	if err := sameFrame(a.frame, b.frame); err != nil {
		return false, err
	}
	return a.r.ApproxEqual(b.r, tol), nil
}

// ToRDF re-expresses the rotation in the canonical RDF frame by converting
// its quaternion.
func (a Rotation3) ToRDF() Rotation3 {
	q := NewQuaternion(a.frame, a.r.Quat()).ToRDF()
	return Rotation3{frame: RDF, r: mustRotation(q.q)}
}

// RotationFromRDF re-expresses a rotation from the RDF frame in cs. The
// input must literally be tagged with RDF.
func (cs *CoordinateSystem) RotationFromRDF(r Rotation3) (Rotation3, error) {
	q, err := cs.QuaternionFromRDF(NewQuaternion(r.frame, r.r.Quat()))
	if err != nil {
		return Rotation3{}, err
	}
	return Rotation3{frame: cs, r: mustRotation(q.q)}, nil
}

// ToFrame re-expresses the rotation in target, routing through RDF.
func (a Rotation3) ToFrame(target *CoordinateSystem) Rotation3 {
	if a.frame == target {
		return a
	}
	out, err := target.RotationFromRDF(a.ToRDF())
	if err != nil {
		// Unreachable: ToRDF always yields an RDF-tagged value.
		panic(err)
	}
	return out
}

// String implements fmt.Stringer.
func (a Rotation3) String() string {
	return fmt.Sprintf("%v@%s", a.r, a.frame.name)
}

// mustRotation rebuilds a Rotation3 from a quaternion whose norm is known
// to be preserved by an orthonormal basis change.
func mustRotation(q spatial.Quaternion) spatial.Rotation3 {
	r, err := spatial.NewRotation3(q, false)
	if err != nil {
		panic(err)
	}
	return r
}
