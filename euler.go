package quaternion

import "math"

// FromEulerAngles returns the rotation quaternion for the given Euler
// angles in radians, applied in x-y-z order. The result is unit length
// within floating-point tolerance for any real input.
func FromEulerAngles[T Float](x, y, z T) Quaternion[T] {
	sx, cx := sincos(x / 2)
	sy, cy := sincos(y / 2)
	sz, cz := sincos(z / 2)

	return Quaternion[T]{
		W: cx*cy*cz + sx*sy*sz,
		X: sx*cy*cz + cx*sy*sz,
		Y: cx*sy*cz + sx*cy*sz,
		Z: cx*cy*sz + sx*sy*cz,
	}
}

func sincos[T Float](x T) (sin, cos T) {
	s, c := math.Sincos(float64(x))
	return T(s), T(c)
}
