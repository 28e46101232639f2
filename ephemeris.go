// Package ephemeris computes the position and velocity of solar-system
// bodies from tabulated Keplerian orbital elements. Planets are propagated
// heliocentrically; moons are propagated relative to their parent and
// composed with the parent's heliocentric state.
package ephemeris

import (
	"fmt"
	"strings"
)

// Engine is the propagation engine. It holds a reference to an immutable
// catalog established at construction time, so a single shared instance is
// safe for any number of concurrent callers.
type Engine struct {
	cat   *Catalog
	sunGM float64
}

// NewEngine returns an engine backed by the provided catalog. Panics if the
// catalog has no Sun entry, since every heliocentric orbit needs its μ.
func NewEngine(cat *Catalog) *Engine {
	sun, err := cat.Lookup("Sun")
	if err != nil {
		panic("catalog has no Sun entry")
	}
	return &Engine{cat: cat, sunGM: sun.GM}
}

// StateOf returns the heliocentric state of the body at the given epoch, in
// the ecliptic J2000 frame. The Sun itself has no heliocentric element entry
// and reports ErrBodyNotFound.
func (e *Engine) StateOf(name string, epoch Epoch) (StateVector, error) {
	b, err := e.cat.Lookup(name)
	if err != nil {
		return StateVector{}, err
	}
	switch b.Kind() {
	case KindMoon:
		return e.moonHelioState(*b.Moon, epoch)
	case KindHeliocentric:
		return e.helioState(b, epoch), nil
	default:
		return StateVector{}, fmt.Errorf("%w: %s has no heliocentric elements", ErrBodyNotFound, b.Name)
	}
}

// StateOfRelative returns the state of the body relative to the reference
// body at the given epoch. When the reference is a moon's direct parent the
// parent-relative vector is returned directly; otherwise both heliocentric
// states are computed and subtracted.
func (e *Engine) StateOfRelative(name string, epoch Epoch, reference string) (StateVector, error) {
	b, err := e.cat.Lookup(name)
	if err != nil {
		return StateVector{}, err
	}
	ref, err := e.cat.Lookup(reference)
	if err != nil {
		return StateVector{}, err
	}
	if b.Kind() == KindMoon && strings.EqualFold(b.Moon.Parent, ref.Name) {
		return e.moonRelativeState(*b.Moon, ref.GM, epoch), nil
	}
	bState, err := e.stateOrOrigin(b, epoch)
	if err != nil {
		return StateVector{}, err
	}
	refState, err := e.stateOrOrigin(ref, epoch)
	if err != nil {
		return StateVector{}, err
	}
	return bState.Sub(refState), nil
}

// PropagateElements returns the elements extrapolated to the target epoch.
func PropagateElements(el Elements, epoch Epoch) Elements {
	return el.At(epoch)
}

// stateOrOrigin treats the central star as the frame origin so that
// relative queries against the Sun resolve to plain heliocentric states.
func (e *Engine) stateOrOrigin(b Body, epoch Epoch) (StateVector, error) {
	if b.Kind() == KindStar {
		return StateVector{Epoch: epoch, Frame: EclipticJ2000}, nil
	}
	return e.StateOf(b.Name, epoch)
}

// helioState propagates a heliocentric body: elements at epoch, Kepler
// solve, orbital-plane state, rotation into the ecliptic.
func (e *Engine) helioState(b Body, epoch Epoch) StateVector {
	el := b.Helio.At(epoch)
	E := SolveKepler(el.MeanAnomaly(), el.E)
	aM := el.A * AU
	x, y := PlanePosition(aM, el.E, E)
	vx, vy := PlaneVelocity(aM, el.E, E, e.sunGM)
	rot := newPerifocalRot(el.ArgPeriapsis(), el.LongNode, el.I)
	return NewStateVector(rot.Apply(x, y), rot.Apply(vx, vy), epoch, EclipticJ2000)
}

// moonHelioState composes the parent's heliocentric state with the moon's
// parent-relative state.
func (e *Engine) moonHelioState(md MoonData, epoch Epoch) (StateVector, error) {
	parent, err := e.cat.Lookup(md.Parent)
	if err != nil {
		return StateVector{}, fmt.Errorf("%w: %s", ErrParentNotFound, md.Parent)
	}
	if parent.Kind() != KindHeliocentric {
		return StateVector{}, fmt.Errorf("%w: %s has no heliocentric elements", ErrParentNotFound, md.Parent)
	}
	rel := e.moonRelativeState(md, parent.GM, epoch)
	return e.helioState(parent, epoch).Add(rel), nil
}

// moonRelativeState propagates a moon relative to its parent. The mean
// motion derives from the orbital period, not from element rates, and the
// mean longitude advances by elapsed seconds since the element epoch.
func (e *Engine) moonRelativeState(md MoonData, parentGM float64, epoch Epoch) StateVector {
	el := md.Elements
	elapsed := epoch.DaysFrom(el.Epoch) * SecondsPerDay
	n := 360 / (md.PeriodDays * SecondsPerDay) // deg/s
	M := NormalizeDeg180(el.L + n*elapsed - el.LongPeri)
	E := SolveKepler(M, el.E)
	aM := el.A * 1e3 // km to m
	x, y := PlanePosition(aM, el.E, E)
	vx, vy := PlaneVelocity(aM, el.E, E, parentGM)
	if md.Retrograde {
		vx, vy = -vx, -vy
	}
	rot := newPerifocalRot(el.ArgPeriapsis(), el.LongNode, el.I)
	return NewStateVector(rot.Apply(x, y), rot.Apply(vx, vy), epoch, EclipticJ2000)
}
