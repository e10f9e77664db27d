package frame

import (
	"fmt"

	"github.com/banshee-data/spatial"
)

// Quaternion is a quaternion tagged with the coordinate system its
// imaginary part is expressed in.
type Quaternion struct {
	frame *CoordinateSystem
	q     spatial.Quaternion
}

// NewQuaternion tags q with the given coordinate system.
func NewQuaternion(cs *CoordinateSystem, q spatial.Quaternion) Quaternion {
	return Quaternion{frame: cs, q: q}
}

// Frame returns the coordinate system the quaternion is expressed in.
func (a Quaternion) Frame() *CoordinateSystem { return a.frame }

// Quat returns the untagged quaternion payload.
func (a Quaternion) Quat() spatial.Quaternion { return a.q }

// Add returns a + b, failing when the frames differ.
func (a Quaternion) Add(b Quaternion) (Quaternion, error) {
	if err := sameFrame(a.frame, b.frame); err != nil {
		return Quaternion{}, err
	}
	return Quaternion{frame: a.frame, q: a.q.Add(b.q)}, nil
}

// Sub returns a - b, failing when the frames differ.
func (a Quaternion) Sub(b Quaternion) (Quaternion, error) {
	if err := sameFrame(a.frame, b.frame); err != nil {
		return Quaternion{}, err
	}
	return Quaternion{frame: a.frame, q: a.q.Sub(b.q)}, nil
}

// Neg returns -a in the same frame.
func (a Quaternion) Neg() Quaternion { return Quaternion{frame: a.frame, q: a.q.Neg()} }

// Scale returns a scaled by the real factor k, in the same frame.
func (a Quaternion) Scale(k float64) Quaternion {
	return Quaternion{frame: a.frame, q: a.q.Scale(k)}
}

// Mul composes the quaternions, failing when the frames differ. The
// Hamiltonian product i·j=k encodes the right-hand rule, so in a
// left-handed frame the operands compose in reflected order; that recovers
// the correct geometric composition without a second quaternion algebra.
func (a Quaternion) Mul(b Quaternion) (Quaternion, error) {
	if err := sameFrame(a.frame, b.frame); err != nil {
		return Quaternion{}, err
	}
	if a.frame.rightHanded {
		return Quaternion{frame: a.frame, q: a.q.Mul(b.q)}, nil
	}
	return Quaternion{frame: a.frame, q: b.q.Mul(a.q)}, nil
}

// Div returns a composed with the inverse of b, with the same
// handedness-dependent operand order as Mul. A zero divisor fails with
// spatial.ErrZeroMagnitude.
func (a Quaternion) Div(b Quaternion) (Quaternion, error) {
	if err := sameFrame(a.frame, b.frame); err != nil {
		return Quaternion{}, err
	}
	binv, err := b.q.Inverse()
	if err != nil {
		return Quaternion{}, err
	}
	if a.frame.rightHanded {
		return Quaternion{frame: a.frame, q: a.q.Mul(binv)}, nil
	}
	return Quaternion{frame: a.frame, q: binv.Mul(a.q)}, nil
}

// Conj returns the conjugate in the same frame.
func (a Quaternion) Conj() Quaternion { return Quaternion{frame: a.frame, q: a.q.Conj()} }

// Inverse returns the quaternion inverse in the same frame, failing with
// spatial.ErrZeroMagnitude on a zero quaternion.
func (a Quaternion) Inverse() (Quaternion, error) {
	inv, err := a.q.Inverse()
	if err != nil {
		return Quaternion{}, err
	}
	return Quaternion{frame: a.frame, q: inv}, nil
}

// Norm returns |a|.
func (a Quaternion) Norm() float64 { return a.q.Norm() }

// Normalize returns the unit-norm quaternion in the same frame, failing
// with spatial.ErrZeroMagnitude on a zero quaternion.
func (a Quaternion) Normalize() (Quaternion, error) {
	n, err := a.q.Normalize()
	if err != nil {
		return Quaternion{}, err
	}
	return Quaternion{frame: a.frame, q: n}, nil
}

// Equal reports exact component equality, failing when the frames differ.
func (a Quaternion) Equal(b Quaternion) (bool, error) {
	if err := sameFrame(a.frame, b.frame); err != nil {
		return false, err
	}
	return a.q.Equal(b.q), nil
}

// ToRDF re-expresses the quaternion in the canonical RDF frame. Only the
// imaginary vector part changes basis; the real scalar is frame-invariant.
func (a Quaternion) ToRDF() Quaternion {
	return Quaternion{
		frame: RDF,
		q:     spatial.FromRealImaginary(a.q.Real(), a.frame.RDFFromLocal(a.q.Imag())),
	}
}

// QuaternionFromRDF re-expresses a quaternion from the RDF frame in cs.
// The input must literally be tagged with RDF.
func (cs *CoordinateSystem) QuaternionFromRDF(q Quaternion) (Quaternion, error) {
	if err := requireRDF(q.frame); err != nil {
		return Quaternion{}, err
	}
	return Quaternion{
		frame: cs,
		q:     spatial.FromRealImaginary(q.q.Real(), cs.LocalFromRDF(q.q.Imag())),
	}, nil
}

// ToFrame re-expresses the quaternion in target, routing through RDF.
func (a Quaternion) ToFrame(target *CoordinateSystem) Quaternion {
	if a.frame == target {
		return a
	}
	out, err := target.QuaternionFromRDF(a.ToRDF())
	if err != nil {
		// Unreachable: ToRDF always yields an RDF-tagged value.
		panic(err)
	}
	return out
}

// String implements fmt.Stringer.
func (a Quaternion) String() string {
	return fmt.Sprintf("%v@%s", a.q, a.frame.name)
}
