// Package quaternion implements quaternion algebra over float32 and
// float64 scalars: construction, arithmetic, conjugate/inverse/length,
// and conversion from Euler angles. Quaternions here are plain value
// types; nothing enforces unit length, so normalize before treating a
// value as a rotation.
package quaternion

import "math"

// Float is the scalar type of a quaternion. The exact type set (no ~)
// lets Epsilon resolve the machine epsilon with a type switch.
type Float interface {
	float32 | float64
}

// Quaternion is a value in the quaternion algebra, with W the scalar
// part and X, Y, Z the vector part.
type Quaternion[T Float] struct {
	W, X, Y, Z T
}

// New returns the quaternion (w, x, y, z).
func New[T Float](w, x, y, z T) Quaternion[T] {
	return Quaternion[T]{W: w, X: x, Y: y, Z: z}
}

// Identity returns the multiplicative identity (1, 0, 0, 0).
func Identity[T Float]() Quaternion[T] {
	return Quaternion[T]{W: 1}
}

// Zero returns the additive identity (0, 0, 0, 0), which is also the
// zero value of the type.
func Zero[T Float]() Quaternion[T] {
	return Quaternion[T]{}
}

// Epsilon returns the machine epsilon of the scalar type. ApproxEqual
// uses it as the tolerance bound.
func Epsilon[T Float]() T {
	switch any(T(0)).(type) {
	case float32:
		return T(math.Nextafter32(1, 2) - 1)
	default:
		return T(math.Nextafter(1, 2) - 1)
	}
}

// Add returns q + other, component-wise.
func (q Quaternion[T]) Add(other Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		W: q.W + other.W,
		X: q.X + other.X,
		Y: q.Y + other.Y,
		Z: q.Z + other.Z,
	}
}

// Sub returns q - other, component-wise.
func (q Quaternion[T]) Sub(other Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		W: q.W - other.W,
		X: q.X - other.X,
		Y: q.Y - other.Y,
		Z: q.Z - other.Z,
	}
}

// Neg returns -q, component-wise.
func (q Quaternion[T]) Neg() Quaternion[T] {
	return Quaternion[T]{W: -q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Scale returns q with every component multiplied by t.
func (q Quaternion[T]) Scale(t T) Quaternion[T] {
	return Quaternion[T]{W: q.W * t, X: q.X * t, Y: q.Y * t, Z: q.Z * t}
}

// Dot returns the four-component dot product of q and other.
func (q Quaternion[T]) Dot(other Quaternion[T]) T {
	return q.W*other.W + q.X*other.X + q.Y*other.Y + q.Z*other.Z
}

// Mul returns the Hamilton product q × other. Multiplication is not
// commutative; operand order matters.
func (q Quaternion[T]) Mul(other Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
	}
}

// Div returns q × other⁻¹, right-multiplication by the inverse, so
// a.Mul(b).Div(b) recovers a (within floating-point tolerance).
func (q Quaternion[T]) Div(other Quaternion[T]) Quaternion[T] {
	return q.Mul(other.Inverse())
}

// Conjugate returns (w, -x, -y, -z).
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// SquareLength returns w²+x²+y²+z², equal to q.Dot(q).
func (q Quaternion[T]) SquareLength() T {
	return q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z
}

// Length returns the Euclidean norm of q.
func (q Quaternion[T]) Length() T {
	return sqrt(q.SquareLength())
}

// Inverse returns the multiplicative inverse, the conjugate scaled by
// the reciprocal of the square length. A zero-length quaternion yields
// IEEE infinities or NaNs; there is no guarded failure path.
func (q Quaternion[T]) Inverse() Quaternion[T] {
	return q.Conjugate().Scale(1 / q.SquareLength())
}

// ApproxEqual reports whether the squared length of q - other is
// strictly below the scalar type's machine epsilon. The relation is
// tolerance-based and therefore not transitive.
func (q Quaternion[T]) ApproxEqual(other Quaternion[T]) bool {
	return q.Sub(other).SquareLength() < Epsilon[T]()
}

func sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}
