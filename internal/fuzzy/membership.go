package fuzzy

// Trimf is a triangular membership function with non-decreasing control
// points a <= b <= c. Degree rises linearly from 0 at a to 1 at b and falls
// linearly back to 0 at c. Degenerate shapes (a == b or b == c) act as
// left/right shoulders and must not divide by zero.
type Trimf struct {
	A, B, C float64
}

// NewTrimf builds a triangular membership function. Control points are
// ordered by the caller; the constructor exists so rule tables read as
// NewTrimf(0, 0, 4) rather than anonymous struct literals.
func NewTrimf(a, b, c float64) Trimf {
	return Trimf{A: a, B: b, C: c}
}

// Evaluate returns the membership degree of x in [0, 1]. Total over the real
// line: anything outside [a, c] clamps to 0, the peak b is exactly 1.
func (f Trimf) Evaluate(x float64) float64 {
	if x < f.A || x > f.C {
		return 0
	}
	if x == f.B {
		return 1
	}
	if x < f.B {
		if f.B == f.A {
			return 1
		}
		return (x - f.A) / (f.B - f.A)
	}
	if f.C == f.B {
		return 1
	}
	return (f.C - x) / (f.C - f.B)
}
