package ephemeris

import (
	"fmt"
	"math"

	"github.com/gonum/matrix/mat64"
)

// ObliquityJ2000 is the mean obliquity of the ecliptic at J2000 in degrees.
const ObliquityJ2000 = 23.439291111

// Frame enumerates the supported reference frames.
type Frame uint8

const (
	// EclipticJ2000 is the mean ecliptic and equinox of J2000.
	EclipticJ2000 Frame = iota
	// EquatorialJ2000 is the mean equator and equinox of J2000.
	EquatorialJ2000
	// ICRF is numerically treated as identical to EquatorialJ2000.
	ICRF
	// HeliocentricEcliptic is an alias of EclipticJ2000 with the Sun at origin.
	HeliocentricEcliptic
)

// String implements the Stringer interface.
func (f Frame) String() string {
	switch f {
	case EclipticJ2000:
		return "EclipticJ2000"
	case EquatorialJ2000:
		return "EquatorialJ2000"
	case ICRF:
		return "ICRF"
	case HeliocentricEcliptic:
		return "HeliocentricEcliptic"
	default:
		return "unknown frame"
	}
}

// ParseFrame returns the frame from its name.
func ParseFrame(name string) (Frame, error) {
	switch name {
	case "ecliptic", "EclipticJ2000":
		return EclipticJ2000, nil
	case "equatorial", "EquatorialJ2000":
		return EquatorialJ2000, nil
	case "icrf", "ICRF":
		return ICRF, nil
	case "heliocentric", "HeliocentricEcliptic":
		return HeliocentricEcliptic, nil
	default:
		return EclipticJ2000, fmt.Errorf("undefined frame '%s'", name)
	}
}

// valid reports whether this is one of the declared frames.
func (f Frame) valid() bool {
	return f <= HeliocentricEcliptic
}

// equivalentTo reports whether two frames share the same axes.
func (f Frame) equivalentTo(o Frame) bool {
	fl := f
	ol := o
	if fl == HeliocentricEcliptic {
		fl = EclipticJ2000
	}
	if ol == HeliocentricEcliptic {
		ol = EclipticJ2000
	}
	if fl == ICRF {
		fl = EquatorialJ2000
	}
	if ol == ICRF {
		ol = EquatorialJ2000
	}
	return fl == ol
}

// EclipticToEquatorial rotates an ecliptic J2000 vector about the shared
// X axis by the J2000 obliquity.
func EclipticToEquatorial(v []float64) []float64 {
	sε, cε := math.Sincos(ObliquityJ2000 * deg2rad)
	return []float64{v[0], cε*v[1] - sε*v[2], sε*v[1] + cε*v[2]}
}

// EquatorialToEcliptic is the exact inverse of EclipticToEquatorial.
func EquatorialToEcliptic(v []float64) []float64 {
	sε, cε := math.Sincos(ObliquityJ2000 * deg2rad)
	return []float64{v[0], cε*v[1] + sε*v[2], -sε*v[1] + cε*v[2]}
}

// ConvertJ2000ToJNow rotates an equatorial J2000 vector into the mean
// equator of date using the IAU 1976 precession angles ζ, z and θ (cubic
// polynomials in Julian centuries from J2000, coefficients in arcseconds),
// composed as Rz(-z)·Ry(θ)·Rz(-ζ). At the J2000 epoch this is the identity.
func ConvertJ2000ToJNow(v []float64, epoch Epoch) []float64 {
	T := epoch.CenturiesFromJ2000()
	const as2rad = deg2rad / 3600
	ζ := (2306.2181*T + 0.30188*T*T + 0.017998*T*T*T) * as2rad
	z := (2306.2181*T + 1.09468*T*T + 0.018203*T*T*T) * as2rad
	θ := (2004.3109*T - 0.42665*T*T - 0.041833*T*T*T) * as2rad
	var zθ, p mat64.Dense
	zθ.Mul(R3(-z), R2(θ))
	p.Mul(&zθ, R3(-ζ))
	return MxV33(&p, v)
}
