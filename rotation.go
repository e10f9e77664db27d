package spatial

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// Orthogonality tolerances for RotationFromMatrix, matching the numpy
// allclose defaults the upstream data pipelines assume.
const (
	orthoRTol = 1e-5
	orthoATol = 1e-8
)

// smallAngle is the |ω|·dt threshold below which FromAngularVelocity
// switches to the linearized update to avoid cancellation in sin(θ/2).
const smallAngle = 1e-6

// Rotation3 is a 3D rotation represented by a quaternion expected to stay
// near unit norm. q and -q represent the same rotation (double cover), so
// exact equality is EqualExact and tolerant equality is ApproxEqual; the
// two are deliberately distinct operations.
//
// The zero value is the identity rotation.
type Rotation3 struct {
	q Quaternion
}

// NewRotation3 builds a rotation from a quaternion. The exact zero
// quaternion is silently replaced by the identity, matching the wire
// convention that an all-default quaternion message means "no rotation".
// When normalize is true the quaternion is normalized first; construction
// does not renormalize otherwise, so repeated compositions accumulate only
// floating multiplication error. Returns ErrInvalidRotation when the norm
// is at or below the zero threshold.
func NewRotation3(q Quaternion, normalize bool) (Rotation3, error) {
	if q == Zero() {
		q = One()
	}
	if normalize {
		n, err := q.Normalize()
		if err != nil {
			return Rotation3{}, fmt.Errorf("%w: %v", ErrInvalidRotation, err)
		}
		q = n
	}
	if q.Norm() <= zeroEps {
		return Rotation3{}, fmt.Errorf("%w: quaternion norm %g too small", ErrInvalidRotation, q.Norm())
	}
	return Rotation3{q: q}, nil
}

// IdentityRotation returns the identity rotation.
func IdentityRotation() Rotation3 { return Rotation3{q: One()} }

// RX180 returns the 180° rotation about the x axis (quaternion i).
func RX180() Rotation3 { return Rotation3{q: I()} }

// RY180 returns the 180° rotation about the y axis (quaternion j).
func RY180() Rotation3 { return Rotation3{q: J()} }

// RZ180 returns the 180° rotation about the z axis (quaternion k).
func RZ180() Rotation3 { return Rotation3{q: K()} }

// XRotation returns the rotation by angle radians about the x axis.
func XRotation(angle float64) Rotation3 {
	return Rotation3{q: FromRealImaginary(math.Cos(angle/2), r3.Vector{X: math.Sin(angle / 2)})}
}

// YRotation returns the rotation by angle radians about the y axis.
func YRotation(angle float64) Rotation3 {
	return Rotation3{q: FromRealImaginary(math.Cos(angle/2), r3.Vector{Y: math.Sin(angle / 2)})}
}

// ZRotation returns the rotation by angle radians about the z axis.
func ZRotation(angle float64) Rotation3 {
	return Rotation3{q: FromRealImaginary(math.Cos(angle/2), r3.Vector{Z: math.Sin(angle / 2)})}
}

// AxisAngleRotation returns the rotation by angle radians about axis. The
// axis is normalized first; a zero axis fails with ErrZeroMagnitude.
func AxisAngleRotation(axis r3.Vector, angle float64) (Rotation3, error) {
	n := axis.Norm()
	if n <= zeroEps {
		return Rotation3{}, fmt.Errorf("%w: rotation axis has norm %g", ErrZeroMagnitude, n)
	}
	axis = axis.Mul(1 / n)
	return Rotation3{q: FromRealImaginary(math.Cos(angle/2), axis.Mul(math.Sin(angle/2)))}, nil
}

// RandomRotation returns a rotation drawn uniformly from SO(3).
func RandomRotation(rng *rand.Rand) Rotation3 {
	return Rotation3{q: RandomUnit(rng)}
}

// FromEulerAngles builds the rotation applying roll about x, then pitch
// about y, then yaw about z (fixed-axis X→Y→Z convention).
func FromEulerAngles(roll, pitch, yaw float64) Rotation3 {
	return ZRotation(yaw).Mul(YRotation(pitch)).Mul(XRotation(roll))
}

// FromAngularVelocity integrates a constant angular velocity omega
// (radians/sec, axis scaled by rate) over dt seconds. Below the small-angle
// threshold the linearization q ≈ (½·dt·ω, 1), normalized, avoids
// cancellation in the half-angle sine.
func FromAngularVelocity(omega r3.Vector, dt float64) Rotation3 {
	theta := omega.Norm() * math.Abs(dt)
	if theta < smallAngle {
		q, err := FromRealImaginary(1, omega.Mul(dt/2)).Normalize()
		if err != nil {
			return IdentityRotation()
		}
		return Rotation3{q: q}
	}
	axis := omega.Normalize()
	half := omega.Norm() * dt / 2
	return Rotation3{q: FromRealImaginary(math.Cos(half), axis.Mul(math.Sin(half)))}
}

// RotationBetween returns the shortest-arc rotation taking src to target,
// computed without trigonometry: both directions are embedded in
// orthonormal bases sharing the rotation axis src×target, and the rotation
// is the change of basis between them. When src and target are parallel the
// axis degenerates and any direction orthogonal to src serves (identity for
// aligned inputs, a 180° rotation for opposed inputs). Zero-length inputs
// fail with ErrZeroMagnitude.
func RotationBetween(src, target r3.Vector) (Rotation3, error) {
	if src.Norm() <= zeroEps || target.Norm() <= zeroEps {
		return Rotation3{}, fmt.Errorf("%w: cannot rotate between zero-length directions", ErrZeroMagnitude)
	}
	a := src.Normalize()
	b := target.Normalize()

	z := a.Cross(b)
	if z.Norm() <= zeroEps {
		z = a.Cross(leastAlignedBasis(a))
	}
	z = z.Normalize()

	ya := z.Cross(a)
	yb := z.Cross(b)

	// Columns of each basis matrix are the basis directions, so the
	// change of basis taking (a, ya, z) to (b, yb, z) is B·Aᵀ.
	am := mat.NewDense(3, 3, []float64{
		a.X, ya.X, z.X,
		a.Y, ya.Y, z.Y,
		a.Z, ya.Z, z.Z,
	})
	bm := mat.NewDense(3, 3, []float64{
		b.X, yb.X, z.X,
		b.Y, yb.Y, z.Y,
		b.Z, yb.Z, z.Z,
	})
	var m mat.Dense
	m.Mul(bm, am.T())
	return RotationFromMatrix(&m)
}

// leastAlignedBasis returns the standard basis vector least aligned with v,
// guaranteeing a non-degenerate cross product.
func leastAlignedBasis(v r3.Vector) r3.Vector {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	switch {
	case ax <= ay && ax <= az:
		return r3.Vector{X: 1}
	case ay <= az:
		return r3.Vector{Y: 1}
	default:
		return r3.Vector{Z: 1}
	}
}

// RotationFromMatrix converts a rotation matrix to a Rotation3 using
// Shepperd's branch selection: the largest of the trace and the three
// diagonal entries decides which quaternion component is solved for first,
// avoiding cancellation. Inputs larger than 3×3 are read from their upper
// left 3×3 block. Fails with ErrWrongShape for smaller inputs and
// ErrNotOrthogonal when m·mᵀ is not the identity within tolerance.
func RotationFromMatrix(m mat.Matrix) (Rotation3, error) {
	rows, cols := m.Dims()
	if rows < 3 || cols < 3 {
		return Rotation3{}, fmt.Errorf("%w: need at least 3×3, got %d×%d", ErrWrongShape, rows, cols)
	}
	b := block3x3(m)

	var prod mat.Dense
	prod.Mul(b, b.T())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(prod.At(i, j)-want) > orthoATol+orthoRTol*math.Abs(want) {
				return Rotation3{}, fmt.Errorf("%w: m·mᵀ deviates from identity at (%d,%d) by %g",
					ErrNotOrthogonal, i, j, prod.At(i, j)-want)
			}
		}
	}

	var x, y, z, w float64
	if t := b.At(0, 0) + b.At(1, 1) + b.At(2, 2) + 1; t > 1 {
		// Real component dominant: solve w from the trace, the rest from
		// the skew-symmetric differences.
		s := 0.5 / math.Sqrt(t)
		w = 0.25 / s
		x = (b.At(2, 1) - b.At(1, 2)) * s
		y = (b.At(0, 2) - b.At(2, 0)) * s
		z = (b.At(1, 0) - b.At(0, 1)) * s
	} else if b.At(0, 0) > b.At(1, 1) && b.At(0, 0) > b.At(2, 2) {
		s := 2 * math.Sqrt(1+b.At(0, 0)-b.At(1, 1)-b.At(2, 2))
		x = 0.25 * s
		y = (b.At(0, 1) + b.At(1, 0)) / s
		z = (b.At(0, 2) + b.At(2, 0)) / s
		w = (b.At(2, 1) - b.At(1, 2)) / s
	} else if b.At(1, 1) > b.At(2, 2) {
		s := 2 * math.Sqrt(1+b.At(1, 1)-b.At(0, 0)-b.At(2, 2))
		x = (b.At(0, 1) + b.At(1, 0)) / s
		y = 0.25 * s
		z = (b.At(1, 2) + b.At(2, 1)) / s
		w = (b.At(0, 2) - b.At(2, 0)) / s
	} else {
		s := 2 * math.Sqrt(1+b.At(2, 2)-b.At(0, 0)-b.At(1, 1))
		x = (b.At(0, 2) + b.At(2, 0)) / s
		y = (b.At(1, 2) + b.At(2, 1)) / s
		z = 0.25 * s
		w = (b.At(1, 0) - b.At(0, 1)) / s
	}
	q := Quaternion{X: x, Y: y, Z: z, W: w}
	if w < 0 {
		q = q.Neg()
	}
	return NewRotation3(q, true)
}

// block3x3 copies the upper-left 3×3 block of m.
func block3x3(m mat.Matrix) *mat.Dense {
	b := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b.Set(i, j, m.At(i, j))
		}
	}
	return b
}

// Quat returns the underlying quaternion. The zero Rotation3 value reports
// the identity quaternion.
func (r Rotation3) Quat() Quaternion {
	if r.q == Zero() {
		return One()
	}
	return r.q
}

// Mul composes rotations: (r.Mul(s)).RotateVector(v) equals
// r.RotateVector(s.RotateVector(v)). No renormalization is performed.
func (r Rotation3) Mul(s Rotation3) Rotation3 {
	return Rotation3{q: r.Quat().Mul(s.Quat())}
}

// Inverse returns the exact inverse rotation via conjugation; it involves
// no division, so r.Inverse().Inverse() equals r bit for bit.
func (r Rotation3) Inverse() Rotation3 {
	return Rotation3{q: r.Quat().Conj()}
}

// RotateVector rotates v by r through quaternion conjugation q·v·q⁻¹.
// Using the true inverse rather than the conjugate keeps the result
// correctly scaled even when the quaternion has drifted off unit norm.
func (r Rotation3) RotateVector(v r3.Vector) r3.Vector {
	q := r.Quat()
	inv := q.Conj().Scale(1 / q.NormSquared())
	return q.Mul(FromImaginary(v)).Mul(inv).Imag()
}

// EqualExact reports whether two rotations have component-identical
// quaternions, accounting for the double cover (q and -q are the same
// rotation).
func (r Rotation3) EqualExact(s Rotation3) bool {
	return r.Quat() == s.Quat() || r.Quat() == s.Quat().Neg()
}

// ApproxEqual reports whether the relative rotation between r and s has
// angle at most tol radians.
func (r Rotation3) ApproxEqual(s Rotation3, tol float64) bool {
	return r.AngleTo(s) <= tol
}

// AngleTo returns the angle in radians of the relative rotation between r
// and s, in [0, π]. The chord form below stays well-conditioned for nearly
// identical rotations, where an acos of the quaternion dot product loses
// half the available precision.
func (r Rotation3) AngleTo(s Rotation3) float64 {
	a, erra := r.Quat().Normalize()
	b, errb := s.Quat().Normalize()
	if erra != nil || errb != nil {
		// Unreachable under the construction invariant |q| > 0.
		return math.Pi
	}
	chord := a.Sub(b).Norm()
	if alt := a.Add(b).Norm(); alt < chord {
		// The closer of ±b: q and -q are the same rotation.
		chord = alt
	}
	return 4 * math.Asin(math.Min(1, chord/2))
}

// AxisAngle extracts the rotation axis and angle, choosing the
// representative with angle in [0, π]. When the angle is too small to
// resolve an axis, defaultAxis is reported instead.
func (r Rotation3) AxisAngle(defaultAxis r3.Vector) (axis r3.Vector, angle float64) {
	q := r.Quat()
	imag := q.Imag()
	real := q.W
	if real < 0 {
		imag = imag.Mul(-1)
		real = -real
	}
	n := imag.Norm()
	angle = 2 * math.Atan2(n, real)
	if n <= zeroEps {
		return defaultAxis, angle
	}
	return imag.Mul(1 / n), angle
}

// AxisAngleInDirection extracts axis and angle like AxisAngle, then flips
// both signs if needed so the axis points into the hemisphere of direction;
// the returned angle is in [-π, π].
func (r Rotation3) AxisAngleInDirection(defaultAxis, direction r3.Vector) (axis r3.Vector, angle float64) {
	axis, angle = r.AxisAngle(defaultAxis)
	if axis.Dot(direction) < 0 {
		axis = axis.Mul(-1)
		angle = -angle
	}
	return axis, angle
}

// Matrix3x3 returns the rotation matrix of r, computed as the upper-left
// 3×3 block of LeftMatrix(q)·RightMatrix(q⁻¹); applied to (v, 0) that
// product is exactly q·v·q⁻¹.
func (r Rotation3) Matrix3x3() *mat.Dense {
	q := r.Quat()
	inv := q.Conj().Scale(1 / q.NormSquared())
	var m4 mat.Dense
	m4.Mul(q.LeftMatrix(), inv.RightMatrix())
	return mat.DenseCopyOf(m4.Slice(0, 3, 0, 3))
}

// EulerAngles returns fixed-axis X→Y→Z (roll, pitch, yaw) angles in
// radians, with FromEulerAngles as its inverse away from gimbal lock. At
// ±90° pitch roll and yaw alias; the lock branch pins roll to 0 and
// attributes the whole remaining rotation to yaw.
func (r Rotation3) EulerAngles() (roll, pitch, yaw float64) {
	m := r.Matrix3x3()
	pitch = math.Atan2(-m.At(2, 0), math.Hypot(m.At(2, 1), m.At(2, 2)))
	if math.Cos(pitch) < 1e-3 {
		roll = 0
		yaw = math.Atan2(-m.At(0, 1), m.At(1, 1))
		return roll, pitch, yaw
	}
	yaw = math.Atan2(m.At(1, 0), m.At(0, 0))
	roll = math.Atan2(m.At(2, 1), m.At(2, 2))
	return roll, pitch, yaw
}

// String implements fmt.Stringer.
func (r Rotation3) String() string {
	return fmt.Sprintf("Rotation3%v", r.Quat())
}
