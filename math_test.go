package ephemeris

import (
	"testing"

	"github.com/gonum/floats"
)

func TestCross(t *testing.T) {
	i := []float64{1, 0, 0}
	j := []float64{0, 1, 0}
	k := []float64{0, 0, 1}
	if !vectorsEqual(cross(i, j), k) {
		t.Fatal("i x j != k")
	}
	if !vectorsEqual(cross(j, k), i) {
		t.Fatal("j x k != i")
	}
	if !vectorsEqual(cross([]float64{2, 3, 4}, []float64{5, 6, 7}), []float64{-3, 6, -3}) {
		t.Fatal("cross fail")
	}
}

func TestNormUnitDot(t *testing.T) {
	v := []float64{3, 4, 0}
	if norm(v) != 5 {
		t.Fatalf("|v|=%f instead of 5", norm(v))
	}
	if !vectorsEqual(unit(v), []float64{0.6, 0.8, 0}) {
		t.Fatal("unit vector incorrect")
	}
	if !vectorsEqual(unit([]float64{0, 0, 0}), []float64{0, 0, 0}) {
		t.Fatal("unit of nil vector should be nil")
	}
	if !floats.EqualWithinAbs(dot([]float64{1, 2, 3}, []float64{4, -5, 6}), 12, 1e-12) {
		t.Fatal("dot incorrect")
	}
	if sign(-3) != -1 || sign(3) != 1 || sign(0) != 1 {
		t.Fatal("sign incorrect")
	}
}

func TestAngleConversions(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 0.5 {
		if ok, err := anglesEqual(deg, Rad2deg(Deg2rad(deg))); !ok {
			t.Fatalf("incorrect conversion for %3.2f: %s", deg, err)
		}
	}
	if ok, _ := anglesEqual(1, Rad2deg(Deg2rad(-359))); !ok {
		t.Fatal("incorrect conversion for -359")
	}
}

func TestNormalizeDeg(t *testing.T) {
	cases := map[float64]float64{
		0: 0, 90: 90, 180: -180, 181: -179, 359: -1,
		360: 0, 720: 0, -90: -90, -181: 179, 540.5: -179.5,
	}
	for in, exp := range cases {
		if got := NormalizeDeg180(in); !floats.EqualWithinAbs(got, exp, 1e-12) {
			t.Fatalf("NormalizeDeg180(%f) = %f, expected %f", in, got, exp)
		}
	}
	if got := NormalizeDeg360(-90); got != 270 {
		t.Fatalf("NormalizeDeg360(-90) = %f, expected 270", got)
	}
	if got := NormalizeDeg360(725); got != 5 {
		t.Fatalf("NormalizeDeg360(725) = %f, expected 5", got)
	}
}
