package quaternion

// In-place counterparts to the value-returning operations. Each
// delegates to the immutable form so results match it bit for bit;
// MulInPlace in particular cannot update fields one at a time without
// reading partially overwritten operands.

// AddInPlace adds other into q component-wise.
func (q *Quaternion[T]) AddInPlace(other Quaternion[T]) {
	*q = q.Add(other)
}

// SubInPlace subtracts other from q component-wise.
func (q *Quaternion[T]) SubInPlace(other Quaternion[T]) {
	*q = q.Sub(other)
}

// MulInPlace sets q to the Hamilton product q × other.
func (q *Quaternion[T]) MulInPlace(other Quaternion[T]) {
	*q = q.Mul(other)
}

// ScaleInPlace multiplies every component of q by t.
func (q *Quaternion[T]) ScaleInPlace(t T) {
	*q = q.Scale(t)
}

// ConjugateInPlace negates the vector part of q.
func (q *Quaternion[T]) ConjugateInPlace() {
	*q = q.Conjugate()
}

// InverseInPlace sets q to its multiplicative inverse.
func (q *Quaternion[T]) InverseInPlace() {
	*q = q.Inverse()
}
