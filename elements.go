package ephemeris

import (
	"fmt"
	"math"
)

// Elements defines an orbit via the six Keplerian elements tabulated for a
// reference epoch. Angles are in degrees. The semi-major axis is in AU for
// heliocentric bodies and in km for moons. Values are never mutated in
// place: At returns a new set.
type Elements struct {
	A        float64 // semi-major axis
	E        float64 // eccentricity
	I        float64 // inclination
	L        float64 // mean longitude
	LongPeri float64 // longitude of periapsis ϖ
	LongNode float64 // longitude of the ascending node Ω
	Epoch    Epoch
	Rates    *ElementRates // per Julian century, nil when time-invariant
}

// ElementRates mirrors the six elements with linear rates per Julian century.
type ElementRates struct {
	DA        float64
	DE        float64
	DI        float64
	DL        float64
	DLongPeri float64
	DLongNode float64
}

// At returns the elements linearly extrapolated to the target epoch. With no
// rate set, only the epoch is restamped. Centuries may be negative or large;
// accuracy outside the validated range is a documented caveat, not a check.
func (el Elements) At(epoch Epoch) Elements {
	if el.Rates == nil {
		el.Epoch = epoch
		return el
	}
	T := epoch.CenturiesFrom(el.Epoch)
	return Elements{
		A:        el.A + el.Rates.DA*T,
		E:        el.E + el.Rates.DE*T,
		I:        el.I + el.Rates.DI*T,
		L:        el.L + el.Rates.DL*T,
		LongPeri: el.LongPeri + el.Rates.DLongPeri*T,
		LongNode: el.LongNode + el.Rates.DLongNode*T,
		Epoch:    epoch,
		Rates:    el.Rates,
	}
}

// ArgPeriapsis returns the argument of periapsis ω = ϖ - Ω in degrees.
func (el Elements) ArgPeriapsis() float64 {
	return el.LongPeri - el.LongNode
}

// MeanAnomaly returns M = L - ϖ normalized to [-180, 180] degrees.
func (el Elements) MeanAnomaly() float64 {
	return NormalizeDeg180(el.L - el.LongPeri)
}

// Periapsis returns the periapsis distance in the unit of the semi-major axis.
func (el Elements) Periapsis() float64 {
	return el.A * (1 - el.E)
}

// Apoapsis returns the apoapsis distance in the unit of the semi-major axis.
func (el Elements) Apoapsis() float64 {
	return el.A * (1 + el.E)
}

// PeriodYears returns the orbital period in Julian years for a heliocentric
// orbit whose semi-major axis is in AU.
func (el Elements) PeriodYears() float64 {
	return math.Sqrt(el.A * el.A * el.A)
}

// String implements the Stringer interface.
func (el Elements) String() string {
	return fmt.Sprintf("a=%.6f e=%.6f i=%.4f L=%.4f ϖ=%.4f Ω=%.4f @ %.2f",
		el.A, el.E, el.I, el.L, el.LongPeri, el.LongNode, float64(el.Epoch))
}

// OrbitShape classifies an orbit by its eccentricity.
type OrbitShape uint8

// The shapes, by growing eccentricity.
const (
	Circular OrbitShape = iota
	Elliptical
	Parabolic
	Hyperbolic
)

// String implements the Stringer interface.
func (s OrbitShape) String() string {
	switch s {
	case Circular:
		return "circular"
	case Elliptical:
		return "elliptical"
	case Parabolic:
		return "parabolic"
	case Hyperbolic:
		return "hyperbolic"
	default:
		return "unknown"
	}
}

// Shape classifies the conic section of these elements. The propagation path
// only supports e < 1; parabolic and hyperbolic orbits are classified here
// but not propagated.
func (el Elements) Shape() OrbitShape {
	switch {
	case el.E < eccentricityε:
		return Circular
	case el.E < 1:
		return Elliptical
	case el.E == 1:
		return Parabolic
	default:
		return Hyperbolic
	}
}
