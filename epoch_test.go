package ephemeris

import (
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestEpochJ2000(t *testing.T) {
	dt := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	epoch := NewEpoch(dt)
	if !floats.EqualWithinAbs(epoch.JD(), 2451545.0, 1e-6) {
		t.Fatalf("J2000 epoch is JD %f", epoch.JD())
	}
	if !floats.EqualWithinAbs(epoch.CenturiesFromJ2000(), 0, 1e-10) {
		t.Fatal("J2000 should be zero centuries from itself")
	}
	back := epoch.Time()
	if back.Sub(dt).Abs() > time.Second {
		t.Fatalf("time round trip drifted: %s", back)
	}
}

func TestEpochArithmetic(t *testing.T) {
	e := J2000.Add(36525)
	if !floats.EqualWithinAbs(e.DaysFrom(J2000), 36525, 1e-9) {
		t.Fatalf("days from J2000: %f", e.DaysFrom(J2000))
	}
	if !floats.EqualWithinAbs(e.CenturiesFromJ2000(), 1, 1e-12) {
		t.Fatalf("centuries from J2000: %f", e.CenturiesFromJ2000())
	}
	if !floats.EqualWithinAbs(J2000.CenturiesFrom(e), -1, 1e-12) {
		t.Fatal("centuries must be negative for an earlier epoch")
	}
}
