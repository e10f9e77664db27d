package spatial

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// zeroEps is the norm threshold below which a quaternion is treated as zero
// for inversion and normalization purposes.
const zeroEps = 1e-12

// Quaternion is a four-component Hamiltonian quaternion W + X·i + Y·j + Z·k.
// It carries no notion of rotation or frame and is never implicitly
// normalized; Rotation3 adds the unit-norm expectation on top.
type Quaternion struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// NewQuaternion validates the components and returns the quaternion
// x·i + y·j + z·k + w. It returns ErrInvalidValue if any component is NaN
// or infinite.
func NewQuaternion(x, y, z, w float64) (Quaternion, error) {
	for _, c := range [4]float64{x, y, z, w} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Quaternion{}, fmt.Errorf("%w: non-finite quaternion component %v", ErrInvalidValue, c)
		}
	}
	return Quaternion{X: x, Y: y, Z: z, W: w}, nil
}

// One returns the multiplicative identity (0,0,0,1).
func One() Quaternion { return Quaternion{W: 1} }

// Zero returns the additive identity (0,0,0,0). The zero quaternion is a
// valid value but cannot be inverted or normalized.
func Zero() Quaternion { return Quaternion{} }

// I returns the unit basis quaternion i.
func I() Quaternion { return Quaternion{X: 1} }

// J returns the unit basis quaternion j.
func J() Quaternion { return Quaternion{Y: 1} }

// K returns the unit basis quaternion k.
func K() Quaternion { return Quaternion{Z: 1} }

// FromReal returns the real quaternion (0,0,0,w). It is the promotion rule
// for treating a plain scalar as a quaternion.
func FromReal(w float64) Quaternion { return Quaternion{W: w} }

// FromImaginary returns the pure-imaginary quaternion (v.X, v.Y, v.Z, 0).
func FromImaginary(v r3.Vector) Quaternion {
	return Quaternion{X: v.X, Y: v.Y, Z: v.Z}
}

// FromRealImaginary combines a real part and an imaginary vector part.
func FromRealImaginary(real float64, imag r3.Vector) Quaternion {
	return Quaternion{X: imag.X, Y: imag.Y, Z: imag.Z, W: real}
}

// RandomUnit returns a quaternion drawn uniformly from the unit 3-sphere.
// Four independent normal deviates normalized to unit length are uniform on
// S³; the loop guards against the (measure-zero) all-zero draw.
func RandomUnit(rng *rand.Rand) Quaternion {
	for {
		q := Quaternion{
			X: rng.NormFloat64(),
			Y: rng.NormFloat64(),
			Z: rng.NormFloat64(),
			W: rng.NormFloat64(),
		}
		if n := q.Norm(); n > zeroEps {
			return q.Scale(1 / n)
		}
	}
}

// Imag returns the imaginary (vector) part of q.
func (q Quaternion) Imag() r3.Vector { return r3.Vector{X: q.X, Y: q.Y, Z: q.Z} }

// Real returns the real (scalar) part of q.
func (q Quaternion) Real() float64 { return q.W }

// Add returns q + p component-wise.
func (q Quaternion) Add(p Quaternion) Quaternion {
	return Quaternion{X: q.X + p.X, Y: q.Y + p.Y, Z: q.Z + p.Z, W: q.W + p.W}
}

// Sub returns q - p component-wise.
func (q Quaternion) Sub(p Quaternion) Quaternion {
	return Quaternion{X: q.X - p.X, Y: q.Y - p.Y, Z: q.Z - p.Z, W: q.W - p.W}
}

// Neg returns -q.
func (q Quaternion) Neg() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Scale returns q scaled by the real factor k.
func (q Quaternion) Scale(k float64) Quaternion {
	return Quaternion{X: k * q.X, Y: k * q.Y, Z: k * q.Z, W: k * q.W}
}

// Mul returns the Hamiltonian product q·p. The product follows i²=j²=k²=-1,
// ij=k, jk=i, ki=j and is not commutative. The expansion below is exactly
// the matrix-vector product LeftMatrix(q)·p (and RightMatrix(p)·q), an
// equivalence the tests rely on.
func (q Quaternion) Mul(p Quaternion) Quaternion {
	return Quaternion{
		X: q.W*p.X + q.X*p.W + q.Y*p.Z - q.Z*p.Y,
		Y: q.W*p.Y - q.X*p.Z + q.Y*p.W + q.Z*p.X,
		Z: q.W*p.Z + q.X*p.Y - q.Y*p.X + q.Z*p.W,
		W: q.W*p.W - q.X*p.X - q.Y*p.Y - q.Z*p.Z,
	}
}

// Conj returns the conjugate of q: the imaginary part negated. A quaternion
// equals its conjugate iff it is real.
func (q Quaternion) Conj() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// NormSquared returns |q|².
func (q Quaternion) NormSquared() float64 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Norm returns |q|.
func (q Quaternion) Norm() float64 { return math.Sqrt(q.NormSquared()) }

// Inverse returns q⁻¹ = conj(q)/|q|². It returns ErrZeroMagnitude when the
// norm is at or below the zero threshold.
func (q Quaternion) Inverse() (Quaternion, error) {
	n2 := q.NormSquared()
	if n2 <= zeroEps*zeroEps {
		return Quaternion{}, fmt.Errorf("%w: cannot invert quaternion with norm %g", ErrZeroMagnitude, math.Sqrt(n2))
	}
	return q.Conj().Scale(1 / n2), nil
}

// Normalize returns q scaled to unit norm, or ErrZeroMagnitude when the norm
// is at or below the zero threshold.
func (q Quaternion) Normalize() (Quaternion, error) {
	n := q.Norm()
	if n <= zeroEps {
		return Quaternion{}, fmt.Errorf("%w: cannot normalize quaternion with norm %g", ErrZeroMagnitude, n)
	}
	return q.Scale(1 / n), nil
}

// Div returns q·p⁻¹. A zero divisor fails with the same ErrZeroMagnitude as
// DivScalar, so callers can assert on one failure kind for both overloads.
func (q Quaternion) Div(p Quaternion) (Quaternion, error) {
	inv, err := p.Inverse()
	if err != nil {
		return Quaternion{}, err
	}
	return q.Mul(inv), nil
}

// DivScalar returns q scaled by 1/k, failing with ErrZeroMagnitude when k is
// at or below the zero threshold in magnitude.
func (q Quaternion) DivScalar(k float64) (Quaternion, error) {
	if math.Abs(k) <= zeroEps {
		return Quaternion{}, fmt.Errorf("%w: cannot invert quaternion with norm %g", ErrZeroMagnitude, math.Abs(k))
	}
	return q.Scale(1 / k), nil
}

// Equal reports exact component equality. Callers needing floating
// tolerance use EqualWithin instead; the two notions are deliberately kept
// separate.
func (q Quaternion) Equal(p Quaternion) bool {
	return q == p
}

// EqualWithin reports per-component equality within the given relative and
// absolute tolerances.
func (q Quaternion) EqualWithin(p Quaternion, rtol, atol float64) bool {
	return scalar.EqualWithinAbsOrRel(q.X, p.X, atol, rtol) &&
		scalar.EqualWithinAbsOrRel(q.Y, p.Y, atol, rtol) &&
		scalar.EqualWithinAbsOrRel(q.Z, p.Z, atol, rtol) &&
		scalar.EqualWithinAbsOrRel(q.W, p.W, atol, rtol)
}

// Vec returns the components of q as a 4-vector in (x, y, z, w) order,
// suitable for multiplication with LeftMatrix or RightMatrix.
func (q Quaternion) Vec() *mat.VecDense {
	return mat.NewVecDense(4, []float64{q.X, q.Y, q.Z, q.W})
}

// QuaternionFromVec rebuilds a quaternion from a 4-vector in (x, y, z, w)
// order.
func QuaternionFromVec(v mat.Vector) Quaternion {
	return Quaternion{X: v.AtVec(0), Y: v.AtVec(1), Z: v.AtVec(2), W: v.AtVec(3)}
}

// LeftMatrix returns the 4×4 matrix L(q) with L(q)·p = q·p for any p, in
// (x, y, z, w) component order.
func (q Quaternion) LeftMatrix() *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		q.W, -q.Z, q.Y, q.X,
		q.Z, q.W, -q.X, q.Y,
		-q.Y, q.X, q.W, q.Z,
		-q.X, -q.Y, -q.Z, q.W,
	})
}

// RightMatrix returns the 4×4 matrix R(q) with R(q)·p = p·q for any p, in
// (x, y, z, w) component order.
func (q Quaternion) RightMatrix() *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		q.W, q.Z, -q.Y, q.X,
		-q.Z, q.W, q.X, q.Y,
		q.Y, -q.X, q.W, q.Z,
		-q.X, -q.Y, -q.Z, q.W,
	})
}

// String implements fmt.Stringer in i,j,k notation.
func (q Quaternion) String() string {
	return fmt.Sprintf("(%g%+gi%+gj%+gk)", q.W, q.X, q.Y, q.Z)
}
