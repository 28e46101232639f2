package ephemeris

import (
	"errors"
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestEclipticEquatorialRoundTrip(t *testing.T) {
	vectors := [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{1.234e11, -5.678e10, 9.101e9},
		{-0.5, 0.25, -0.125},
	}
	for _, v := range vectors {
		back := EquatorialToEcliptic(EclipticToEquatorial(v))
		for i := 0; i < 3; i++ {
			if !floats.EqualWithinAbsOrRel(back[i], v[i], 1e-10, 1e-10) {
				t.Fatalf("round trip failed for %+v: got %+v", v, back)
			}
		}
		if !floats.EqualWithinRel(norm(EclipticToEquatorial(v)), norm(v), 1e-12) {
			t.Fatalf("rotation did not preserve the norm of %+v", v)
		}
	}
}

func TestEclipticToEquatorialKnown(t *testing.T) {
	// The ecliptic Y axis maps to (0, cos ε, sin ε).
	sε, cε := math.Sincos(ObliquityJ2000 * deg2rad)
	got := EclipticToEquatorial([]float64{0, 1, 0})
	if !vectorsEqual(got, []float64{0, cε, sε}) {
		t.Fatalf("Y axis mapped to %+v", got)
	}
	// The shared X axis is untouched.
	if !vectorsEqual(EclipticToEquatorial([]float64{1, 0, 0}), []float64{1, 0, 0}) {
		t.Fatal("X axis should be invariant")
	}
}

func TestPrecessionIdentityAtJ2000(t *testing.T) {
	v := []float64{1.0, -2.0, 3.0}
	got := ConvertJ2000ToJNow(v, J2000)
	for i := 0; i < 3; i++ {
		if !floats.EqualWithinAbs(got[i], v[i], 1e-12) {
			t.Fatalf("precession at T=0 not identity: %+v", got)
		}
	}
}

func TestPrecessionDrift(t *testing.T) {
	// One century of precession moves the equinox by about 1.4 degrees but
	// never changes the vector magnitude.
	epoch := J2000.Add(DaysPerCentury)
	v := []float64{1, 0, 0}
	got := ConvertJ2000ToJNow(v, epoch)
	if !floats.EqualWithinRel(norm(got), 1, 1e-12) {
		t.Fatal("precession did not preserve the norm")
	}
	angle := math.Acos(dot(got, v)) * rad2deg
	if angle < 1 || angle > 2 {
		t.Fatalf("precession over one century rotated by %f degrees", angle)
	}
}

func TestStateVectorInFrame(t *testing.T) {
	s := NewStateVector([]float64{1.496e11, 0, 1e10}, []float64{0, 29.8e3, 0}, J2000, EclipticJ2000)

	same, err := s.InFrame(EclipticJ2000)
	if err != nil || same != s {
		t.Fatal("same-frame transform should be a no-op")
	}
	// Heliocentric ecliptic is an alias: no rotation.
	alias, err := s.InFrame(HeliocentricEcliptic)
	if err != nil || alias.R != s.R {
		t.Fatal("alias frame should not rotate")
	}

	eq, err := s.InFrame(EquatorialJ2000)
	if err != nil {
		t.Fatal(err)
	}
	if eq.R == s.R {
		t.Fatal("ecliptic to equatorial should rotate")
	}
	if !floats.EqualWithinRel(eq.RNorm(), s.RNorm(), 1e-12) {
		t.Fatal("transform did not preserve the position norm")
	}
	// ICRF is numerically identical to the J2000 equator.
	icrf, err := s.InFrame(ICRF)
	if err != nil || icrf.R != eq.R {
		t.Fatal("ICRF should match EquatorialJ2000")
	}

	back, err := eq.InFrame(EclipticJ2000)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if !floats.EqualWithinRel(back.R[i], s.R[i], 1e-10) && !floats.EqualWithinAbs(back.R[i], s.R[i], 1e-4) {
			t.Fatalf("frame round trip failed: %+v vs %+v", back.R, s.R)
		}
	}

	if _, err := s.InFrame(Frame(42)); !errors.Is(err, ErrUnsupportedTransform) {
		t.Fatalf("expected ErrUnsupportedTransform, got %v", err)
	}
}

func TestParseFrame(t *testing.T) {
	for name, exp := range map[string]Frame{
		"ecliptic": EclipticJ2000, "equatorial": EquatorialJ2000,
		"icrf": ICRF, "heliocentric": HeliocentricEcliptic,
	} {
		got, err := ParseFrame(name)
		if err != nil || got != exp {
			t.Fatalf("ParseFrame(%s) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseFrame("galactic"); err == nil {
		t.Fatal("expected an error for an unsupported frame name")
	}
}
