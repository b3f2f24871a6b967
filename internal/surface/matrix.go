package surface

import "math"

// Matrix is a 2D affine transform:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix { return Matrix{A: 1, D: 1} }

// Translate returns m with a translation applied before it, matching the
// canvas translate() call order.
func (m Matrix) Translate(x, y float64) Matrix {
	m.E += m.A*x + m.C*y
	m.F += m.B*x + m.D*y
	return m
}

// Rotate returns m with a rotation (radians) applied before it.
func (m Matrix) Rotate(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{
		A: m.A*c + m.C*s,
		B: m.B*c + m.D*s,
		C: m.C*c - m.A*s,
		D: m.D*c - m.B*s,
		E: m.E,
		F: m.F,
	}
}

// Apply maps (x, y) through m.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}
