package quaternion

import "testing"

// The mutating forms must agree with the immutable forms exactly, not
// just within tolerance.

func TestAddInPlace(t *testing.T) {
	a := New[float64](1, 2, 3, 4)
	b := New[float64](5, 6, 7, 8)

	got := a
	got.AddInPlace(b)
	if got != a.Add(b) {
		t.Errorf("AddInPlace mismatch: got (%v,%v,%v,%v)", got.W, got.X, got.Y, got.Z)
	}
}

func TestSubInPlace(t *testing.T) {
	a := New[float64](1, 2, 3, 4)
	b := New[float64](5, 6, 7, 8)

	got := a
	got.SubInPlace(b)
	if got != a.Sub(b) {
		t.Errorf("SubInPlace mismatch: got (%v,%v,%v,%v)", got.W, got.X, got.Y, got.Z)
	}
}

func TestMulInPlace(t *testing.T) {
	a := New[float64](1, 2, 3, 4)
	b := New[float64](5, 6, 7, 8)

	got := a
	got.MulInPlace(b)
	if got != New[float64](-60, 12, 30, 24) {
		t.Errorf("MulInPlace mismatch: got (%v,%v,%v,%v)", got.W, got.X, got.Y, got.Z)
	}
}

func TestScaleInPlace(t *testing.T) {
	a := New[float64](1, 2, 3, 4)

	got := a
	got.ScaleInPlace(0.5)
	if got != a.Scale(0.5) {
		t.Errorf("ScaleInPlace mismatch: got (%v,%v,%v,%v)", got.W, got.X, got.Y, got.Z)
	}
}

func TestConjugateInPlace(t *testing.T) {
	a := New[float64](1, 2, 3, 4)

	got := a
	got.ConjugateInPlace()
	if got != New[float64](1, -2, -3, -4) {
		t.Errorf("ConjugateInPlace mismatch: got (%v,%v,%v,%v)", got.W, got.X, got.Y, got.Z)
	}
}

func TestInverseInPlace(t *testing.T) {
	a := New[float64](1, 2, 3, 4)

	got := a
	got.InverseInPlace()
	if got != a.Inverse() {
		t.Errorf("InverseInPlace mismatch: got (%v,%v,%v,%v)", got.W, got.X, got.Y, got.Z)
	}
}
