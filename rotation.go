package ephemeris

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// perifocalRot holds the six non-trivial entries of the perifocal to
// ecliptic rotation Rz(-Ω)·Rx(-i)·Rz(-ω). The third column is never needed
// since the orbital-plane z component is zero by construction.
type perifocalRot struct {
	m11, m12, m21, m22, m31, m32 float64
}

// newPerifocalRot builds the rotation for the argument of periapsis ω, the
// longitude of the ascending node Ω and the inclination i, all in degrees.
func newPerifocalRot(ω, Ω, i float64) perifocalRot {
	sω, cω := math.Sincos(ω * deg2rad)
	sΩ, cΩ := math.Sincos(Ω * deg2rad)
	si, ci := math.Sincos(i * deg2rad)
	return perifocalRot{
		m11: cΩ*cω - sΩ*sω*ci,
		m12: -cΩ*sω - sΩ*cω*ci,
		m21: sΩ*cω + cΩ*sω*ci,
		m22: -sΩ*sω + cΩ*cω*ci,
		m31: sω * si,
		m32: cω * si,
	}
}

// Apply rotates the orbital-plane coordinates (x, y) into the reference plane.
func (r perifocalRot) Apply(x, y float64) []float64 {
	return []float64{
		r.m11*x + r.m12*y,
		r.m21*x + r.m22*y,
		r.m31*x + r.m32*y,
	}
}

// PQW2Ecliptic rotates an orbital-plane vector (z'=0) into the body's
// reference plane. Angles are in degrees.
func PQW2Ecliptic(ω, Ω, i, x, y float64) []float64 {
	return newPerifocalRot(ω, Ω, i).Apply(x, y)
}

// R3R1R3 performs a 3-1-3 Euler parameter rotation.
// From Schaub and Junkins (the one in Vallado is wrong... surprisingly, right? =/)
func R3R1R3(θ1, θ2, θ3 float64) *mat64.Dense {
	sθ1, cθ1 := math.Sincos(θ1)
	sθ2, cθ2 := math.Sincos(θ2)
	sθ3, cθ3 := math.Sincos(θ3)
	return mat64.NewDense(3, 3, []float64{cθ3*cθ1 - sθ3*cθ2*sθ1, cθ3*sθ1 + sθ3*cθ2*cθ1, sθ3 * sθ2,
		-sθ3*cθ1 - cθ3*cθ2*sθ1, -sθ3*sθ1 + cθ3*cθ2*cθ1, cθ3 * sθ2,
		sθ2 * sθ1, -sθ2 * cθ1, cθ2})
}

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 rotation about the 2nd axis.
func R2(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat64.Dense, v []float64) (o []float64) {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}
