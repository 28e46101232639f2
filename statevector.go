package ephemeris

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnsupportedTransform is returned for frame pairs beyond the
// ecliptic/equatorial/ICRF family.
var ErrUnsupportedTransform = errors.New("unsupported frame transform")

// StateVector is the Cartesian position and velocity of a body at an epoch,
// in meters and meters per second, tagged with its reference frame. It is an
// immutable value type: freely copyable and safe for concurrent readers.
type StateVector struct {
	R     [3]float64
	V     [3]float64
	Epoch Epoch
	Frame Frame
}

// NewStateVector builds a state vector from position and velocity slices.
func NewStateVector(R, V []float64, epoch Epoch, frame Frame) StateVector {
	var s StateVector
	copy(s.R[:], R)
	copy(s.V[:], V)
	s.Epoch = epoch
	s.Frame = frame
	return s
}

// RNorm returns the distance from the frame origin in meters.
func (s StateVector) RNorm() float64 {
	return norm(s.R[:])
}

// VNorm returns the speed in meters per second.
func (s StateVector) VNorm() float64 {
	return norm(s.V[:])
}

// Unit returns the unit direction of the position vector.
func (s StateVector) Unit() []float64 {
	return unit(s.R[:])
}

// H returns the specific angular momentum vector in m²/s.
func (s StateVector) H() []float64 {
	return cross(s.R[:], s.V[:])
}

// RadialVelocity returns the velocity component along the position vector.
func (s StateVector) RadialVelocity() float64 {
	r := s.RNorm()
	if r == 0 {
		return 0
	}
	return dot(s.R[:], s.V[:]) / r
}

// TransverseVelocity returns the velocity component normal to the position
// vector, within the instantaneous orbit plane.
func (s StateVector) TransverseVelocity() float64 {
	r := s.RNorm()
	if r == 0 {
		return s.VNorm()
	}
	return norm(s.H()) / r
}

// Add returns the vector sum of both states. The receiver's epoch and frame
// are kept.
func (s StateVector) Add(o StateVector) StateVector {
	for i := 0; i < 3; i++ {
		s.R[i] += o.R[i]
		s.V[i] += o.V[i]
	}
	return s
}

// Sub returns the vector difference of both states.
func (s StateVector) Sub(o StateVector) StateVector {
	for i := 0; i < 3; i++ {
		s.R[i] -= o.R[i]
		s.V[i] -= o.V[i]
	}
	return s
}

// DistanceTo returns the distance in meters between both positions.
func (s StateVector) DistanceTo(o StateVector) float64 {
	dx := s.R[0] - o.R[0]
	dy := s.R[1] - o.R[1]
	dz := s.R[2] - o.R[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// InFrame returns this state expressed in the target frame. Same-frame (or
// numerically identical, e.g. ICRF and EquatorialJ2000) requests are no-ops;
// only the ecliptic/equatorial pair rotates. Any other pair returns
// ErrUnsupportedTransform rather than silently passing through.
func (s StateVector) InFrame(to Frame) (StateVector, error) {
	if !s.Frame.valid() || !to.valid() {
		return s, fmt.Errorf("%w: %s to %s", ErrUnsupportedTransform, s.Frame, to)
	}
	if s.Frame.equivalentTo(to) {
		s.Frame = to
		return s, nil
	}
	fromEcl := s.Frame.equivalentTo(EclipticJ2000)
	toEcl := to.equivalentTo(EclipticJ2000)
	switch {
	case fromEcl && !toEcl:
		return NewStateVector(EclipticToEquatorial(s.R[:]), EclipticToEquatorial(s.V[:]), s.Epoch, to), nil
	case !fromEcl && toEcl:
		return NewStateVector(EquatorialToEcliptic(s.R[:]), EquatorialToEcliptic(s.V[:]), s.Epoch, to), nil
	default:
		return s, fmt.Errorf("%w: %s to %s", ErrUnsupportedTransform, s.Frame, to)
	}
}

// String implements the Stringer interface.
func (s StateVector) String() string {
	return fmt.Sprintf("R=[%.3f %.3f %.3f] km V=[%.6f %.6f %.6f] km/s (%s)",
		s.R[0]/1e3, s.R[1]/1e3, s.R[2]/1e3, s.V[0]/1e3, s.V[1]/1e3, s.V[2]/1e3, s.Frame)
}
