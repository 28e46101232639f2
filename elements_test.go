package ephemeris

import (
	"testing"

	"github.com/gonum/floats"
)

func testElements() Elements {
	return Elements{
		A: 1.00000261, E: 0.01671123, I: -0.00001531,
		L: 100.46457166, LongPeri: 102.93768193, LongNode: 0,
		Epoch: J2000,
		Rates: &ElementRates{0.00000562, -0.00004392, -0.01294668, 35999.37244981, 0.32327364, 0},
	}
}

func TestElementsAtWithoutRates(t *testing.T) {
	el := testElements()
	el.Rates = nil
	later := el.At(J2000.Add(12345.6))
	if later.Epoch == el.Epoch {
		t.Fatal("epoch was not restamped")
	}
	if later.A != el.A || later.E != el.E || later.I != el.I ||
		later.L != el.L || later.LongPeri != el.LongPeri || later.LongNode != el.LongNode {
		t.Fatal("elements without rates must not change numerically")
	}
}

func TestElementsAtLinearity(t *testing.T) {
	el := testElements()
	Δ := 3652.5 // a tenth of a century
	one := el.At(el.Epoch.Add(Δ))
	two := el.At(el.Epoch.Add(2 * Δ))
	T := Δ / DaysPerCentury
	if !floats.EqualWithinAbs(two.L, one.L+el.Rates.DL*T, 1e-6) {
		t.Fatalf("L does not superpose: %f vs %f", two.L, one.L+el.Rates.DL*T)
	}
	if !floats.EqualWithinAbs(two.A, one.A+el.Rates.DA*T, 1e-12) {
		t.Fatal("a does not superpose")
	}
	if !floats.EqualWithinAbs(two.E, one.E+el.Rates.DE*T, 1e-12) {
		t.Fatal("e does not superpose")
	}
	// Negative centuries are equally valid.
	past := el.At(el.Epoch.Add(-Δ))
	if !floats.EqualWithinAbs(past.L, el.L-el.Rates.DL*T, 1e-6) {
		t.Fatal("extrapolation backwards in time failed")
	}
}

func TestElementsDerived(t *testing.T) {
	el := testElements()
	if ok, err := anglesEqual(el.ArgPeriapsis(), 102.93768193); !ok {
		t.Fatalf("argument of periapsis: %s", err)
	}
	M := el.MeanAnomaly()
	if M < -180 || M > 180 {
		t.Fatalf("mean anomaly %f not normalized", M)
	}
	if ok, err := anglesEqual(M, 100.46457166-102.93768193); !ok {
		t.Fatalf("mean anomaly: %s", err)
	}
	if !floats.EqualWithinAbs(el.Periapsis(), el.A*(1-el.E), 1e-12) {
		t.Fatal("periapsis incorrect")
	}
	if !floats.EqualWithinAbs(el.Apoapsis(), el.A*(1+el.E), 1e-12) {
		t.Fatal("apoapsis incorrect")
	}
	if !floats.EqualWithinAbs(el.PeriodYears(), 1, 1e-4) {
		t.Fatalf("Earth period %f years", el.PeriodYears())
	}
}

func TestOrbitShape(t *testing.T) {
	cases := map[float64]OrbitShape{
		0: Circular, 1e-6: Circular, 0.3: Elliptical,
		0.999: Elliptical, 1: Parabolic, 1.5: Hyperbolic,
	}
	for e, exp := range cases {
		el := Elements{E: e}
		if got := el.Shape(); got != exp {
			t.Fatalf("e=%f classified as %s, expected %s", e, got, exp)
		}
	}
}
