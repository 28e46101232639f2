package ephemeris

import "math"

const (
	// KeplerTolerance is the default convergence tolerance in degrees.
	KeplerTolerance = 1e-8
	// KeplerMaxIter caps the Newton-Raphson iteration count.
	KeplerMaxIter = 50
)

// SolveKepler returns the eccentric anomaly E in degrees such that
// M = E - e*·sin(E), with e* the degree-scaled eccentricity e·180/π.
// The mean anomaly M is in degrees, best conditioned within [-180, 180].
func SolveKepler(M, e float64) float64 {
	return SolveKeplerTol(M, e, KeplerTolerance, KeplerMaxIter)
}

// SolveKeplerTol is SolveKepler with an explicit tolerance (degrees) and
// iteration cap. It always returns a finite value for e < 1: on exhaustion
// the last iterate is returned.
func SolveKeplerTol(M, e, tol float64, maxIter int) float64 {
	if e == 0 {
		// Circular orbit, E and M coincide.
		return M
	}
	eStar := e * rad2deg
	E := M + eStar*math.Sin(M*deg2rad)
	for iter := 0; iter < maxIter; iter++ {
		sinE, cosE := math.Sincos(E * deg2rad)
		ΔM := M - (E - eStar*sinE)
		ΔE := ΔM / (1 - e*cosE)
		E += ΔE
		if math.Abs(ΔE) <= tol {
			break
		}
	}
	return E
}

// PlanePosition returns the orbital-plane coordinates for a semi-major axis
// a, eccentricity e and eccentric anomaly E in degrees. The output is in the
// same length unit as a; the z component is zero by construction.
func PlanePosition(a, e, E float64) (x, y float64) {
	sinE, cosE := math.Sincos(E * deg2rad)
	x = a * (cosE - e)
	y = a * math.Sqrt(1-e*e) * sinE
	return
}

// PlaneVelocity returns the orbital-plane velocity in m/s. The semi-major
// axis must be in meters and μ is the gravitational parameter of the central
// body in m³/s².
func PlaneVelocity(aMeters, e, E, μ float64) (vx, vy float64) {
	sinE, cosE := math.Sincos(E * deg2rad)
	n := math.Sqrt(μ / (aMeters * aMeters * aMeters))
	dEdt := n / (1 - e*cosE)
	vx = -aMeters * sinE * dEdt
	vy = aMeters * math.Sqrt(1-e*e) * cosE * dEdt
	return
}

// TrueAnomaly returns the true anomaly ν in degrees for an eccentric anomaly
// E in degrees. The result stays on the same half-plane revolution as E, so
// ν is continuous as E crosses ±90°.
func TrueAnomaly(E, e float64) float64 {
	sinE, cosE := math.Sincos(E * deg2rad)
	ν := math.Atan2(math.Sqrt(1-e*e)*sinE, cosE-e) * rad2deg
	// Unwrap onto the revolution of E.
	for ν-E > 180 {
		ν -= 360
	}
	for E-ν > 180 {
		ν += 360
	}
	return ν
}
