package frame

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Vector3 is a 3D vector tagged with the coordinate system it is expressed
// in. The frame is part of the value's identity: binary operations fail
// with ErrFrameMismatch unless both operands carry the same frame.
type Vector3 struct {
	frame *CoordinateSystem
	v     r3.Vector
}

// NewVector3 tags v with the given coordinate system.
func NewVector3(cs *CoordinateSystem, v r3.Vector) Vector3 {
	return Vector3{frame: cs, v: v}
}

// Frame returns the coordinate system the vector is expressed in.
func (a Vector3) Frame() *CoordinateSystem { return a.frame }

// Vec returns the untagged vector payload.
func (a Vector3) Vec() r3.Vector { return a.v }

// Add returns a + b, failing when the frames differ.
func (a Vector3) Add(b Vector3) (Vector3, error) {
	if err := sameFrame(a.frame, b.frame); err != nil {
		return Vector3{}, err
	}
	return Vector3{frame: a.frame, v: a.v.Add(b.v)}, nil
}

// Sub returns a - b, failing when the frames differ.
func (a Vector3) Sub(b Vector3) (Vector3, error) {
	if err := sameFrame(a.frame, b.frame); err != nil {
		return Vector3{}, err
	}
	return Vector3{frame: a.frame, v: a.v.Sub(b.v)}, nil
}

// Neg returns -a in the same frame.
func (a Vector3) Neg() Vector3 { return Vector3{frame: a.frame, v: a.v.Mul(-1)} }

// Scale returns a scaled by k in the same frame.
func (a Vector3) Scale(k float64) Vector3 { return Vector3{frame: a.frame, v: a.v.Mul(k)} }

// Dot returns the inner product, failing when the frames differ.
func (a Vector3) Dot(b Vector3) (float64, error) {
	if err := sameFrame(a.frame, b.frame); err != nil {
		return 0, err
	}
	return a.v.Dot(b.v), nil
}

// Equal reports exact component equality, failing when the frames differ.
func (a Vector3) Equal(b Vector3) (bool, error) {
	if err := sameFrame(a.frame, b.frame); err != nil {
		return false, err
	}
	return a.v == b.v, nil
}

// ToRDF re-expresses the vector in the canonical RDF frame.
func (a Vector3) ToRDF() Vector3 {
	return Vector3{frame: RDF, v: a.frame.RDFFromLocal(a.v)}
}

// VectorFromRDF re-expresses a vector from the RDF frame in cs. The input
// must literally be tagged with RDF.
func (cs *CoordinateSystem) VectorFromRDF(v Vector3) (Vector3, error) {
	if err := requireRDF(v.frame); err != nil {
		return Vector3{}, err
	}
	return Vector3{frame: cs, v: cs.LocalFromRDF(v.v)}, nil
}

// ToFrame re-expresses the vector in target, routing through RDF. Same-frame
// conversion is the identity.
func (a Vector3) ToFrame(target *CoordinateSystem) Vector3 {
	if a.frame == target {
		return a
	}
	out, err := target.VectorFromRDF(a.ToRDF())
	if err != nil {
		// Unreachable: ToRDF always yields an RDF-tagged value.
		panic(err)
	}
	return out
}

// String implements fmt.Stringer.
func (a Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)@%s", a.v.X, a.v.Y, a.v.Z, a.frame.name)
}
