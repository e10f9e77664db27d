package frame

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/spatial"
)

// ErrFrameMismatch reports a binary operation attempted across values
// expressed in different coordinate systems.
var ErrFrameMismatch = errors.New("coordinate frame mismatch")

// basisEps is the tolerance for the orthonormality checks at frame
// construction time.
const basisEps = 1e-9

// CoordinateSystem is a named frame. up and front are the directions, in
// the frame's own coordinates, that point canonically up and forward;
// right is derived from them and the declared handedness. The two
// change-of-basis matrices to and from the canonical RDF frame are
// precomputed at construction and never change.
//
// Frames compare by identity: two values interoperate only when they carry
// the same *CoordinateSystem pointer.
type CoordinateSystem struct {
	name        string
	rightHanded bool

	up    r3.Vector
	front r3.Vector
	right r3.Vector

	rdfFromLocal *mat.Dense
	localFromRDF *mat.Dense
}

// New builds a coordinate system from its name, the local directions of up
// and front, and its handedness. up and front must be unit length and
// mutually orthogonal; violations return spatial.ErrInvalidValue rather
// than panicking, since a malformed frame definition is a recoverable
// caller error.
func New(name string, up, front r3.Vector, rightHanded bool) (*CoordinateSystem, error) {
	if math.Abs(up.Norm()-1) > basisEps {
		return nil, fmt.Errorf("%w: frame %q up vector has norm %g, want 1", spatial.ErrInvalidValue, name, up.Norm())
	}
	if math.Abs(front.Norm()-1) > basisEps {
		return nil, fmt.Errorf("%w: frame %q front vector has norm %g, want 1", spatial.ErrInvalidValue, name, front.Norm())
	}
	if math.Abs(up.Dot(front)) > basisEps {
		return nil, fmt.Errorf("%w: frame %q up and front are not orthogonal (dot %g)", spatial.ErrInvalidValue, name, up.Dot(front))
	}

	right := front.Cross(up)
	if !rightHanded {
		right = right.Mul(-1)
	}
	if math.Abs(right.Norm()-1) > basisEps || math.Abs(right.Dot(up)) > basisEps || math.Abs(right.Dot(front)) > basisEps {
		return nil, fmt.Errorf("%w: frame %q derived right vector is not orthonormal", spatial.ErrInvalidValue, name)
	}

	down := up.Mul(-1)
	rdfFromLocal := mat.NewDense(3, 3, []float64{
		right.X, right.Y, right.Z,
		down.X, down.Y, down.Z,
		front.X, front.Y, front.Z,
	})
	localFromRDF := mat.DenseCopyOf(rdfFromLocal.T())

	return &CoordinateSystem{
		name:         name,
		rightHanded:  rightHanded,
		up:           up,
		front:        front,
		right:        right,
		rdfFromLocal: rdfFromLocal,
		localFromRDF: localFromRDF,
	}, nil
}

// RDF is the canonical Right-Down-Front frame, the hub every cross-frame
// conversion routes through. It is initialized once and never mutated.
var RDF = mustNew("rdf", r3.Vector{Y: -1}, r3.Vector{Z: 1}, true)

func mustNew(name string, up, front r3.Vector, rightHanded bool) *CoordinateSystem {
	cs, err := New(name, up, front, rightHanded)
	if err != nil {
		panic(err)
	}
	return cs
}

// Name returns the frame's name.
func (cs *CoordinateSystem) Name() string { return cs.name }

// RightHanded reports whether the frame obeys the right-hand rule.
func (cs *CoordinateSystem) RightHanded() bool { return cs.rightHanded }

// RDFFromLocal maps a vector in this frame's coordinates to RDF
// coordinates.
func (cs *CoordinateSystem) RDFFromLocal(v r3.Vector) r3.Vector {
	return mulVec(cs.rdfFromLocal, v)
}

// LocalFromRDF maps a vector in RDF coordinates to this frame's
// coordinates.
func (cs *CoordinateSystem) LocalFromRDF(v r3.Vector) r3.Vector {
	return mulVec(cs.localFromRDF, v)
}

// RDFFromLocalMatrix returns a copy of the local→RDF change-of-basis
// matrix. Its determinant is +1 for right-handed frames and -1 for
// left-handed ones.
func (cs *CoordinateSystem) RDFFromLocalMatrix() *mat.Dense {
	return mat.DenseCopyOf(cs.rdfFromLocal)
}

// LocalFromRDFMatrix returns a copy of the RDF→local change-of-basis
// matrix.
func (cs *CoordinateSystem) LocalFromRDFMatrix() *mat.Dense {
	return mat.DenseCopyOf(cs.localFromRDF)
}

// Up returns the frame's canonical up direction as a frame-tagged vector.
func (cs *CoordinateSystem) Up() Vector3 { return Vector3{frame: cs, v: cs.up} }

// Down returns the frame's canonical down direction.
func (cs *CoordinateSystem) Down() Vector3 { return Vector3{frame: cs, v: cs.up.Mul(-1)} }

// Front returns the frame's canonical front direction.
func (cs *CoordinateSystem) Front() Vector3 { return Vector3{frame: cs, v: cs.front} }

// Back returns the frame's canonical back direction.
func (cs *CoordinateSystem) Back() Vector3 { return Vector3{frame: cs, v: cs.front.Mul(-1)} }

// Right returns the frame's canonical right direction.
func (cs *CoordinateSystem) Right() Vector3 { return Vector3{frame: cs, v: cs.right} }

// Left returns the frame's canonical left direction.
func (cs *CoordinateSystem) Left() Vector3 { return Vector3{frame: cs, v: cs.right.Mul(-1)} }

// String implements fmt.Stringer.
func (cs *CoordinateSystem) String() string {
	hand := "right-handed"
	if !cs.rightHanded {
		hand = "left-handed"
	}
	return fmt.Sprintf("CoordinateSystem(%s, %s)", cs.name, hand)
}

func mulVec(m *mat.Dense, v r3.Vector) r3.Vector {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))
	return r3.Vector{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}

func sameFrame(a, b *CoordinateSystem) error {
	if a != b {
		return fmt.Errorf("%w: %q vs %q", ErrFrameMismatch, a.name, b.name)
	}
	return nil
}

func requireRDF(cs *CoordinateSystem) error {
	if cs != RDF {
		return fmt.Errorf("%w: value is in frame %q, want %q", ErrFrameMismatch, cs.name, RDF.name)
	}
	return nil
}
