package ephemeris

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/soniakeys/meeus/planetposition"
	"github.com/soniakeys/meeus/pluto"
)

// vsop87Index maps catalog names to the VSOP87 planet index.
var vsop87Index = map[string]int{
	"mercury": 0, "venus": 1, "earth": 2, "mars": 3,
	"jupiter": 4, "saturn": 5, "uranus": 6, "neptune": 7,
}

// VSOP87Source computes heliocentric states from the VSOP87 analytic theory
// as an independent cross-check of the element-based engine. The data files
// are loaded lazily, one per planet, and cached.
type VSOP87Source struct {
	dir string
	cat *Catalog

	mu      sync.Mutex
	planets map[int]*planetposition.V87Planet
}

// NewVSOP87Source returns a source reading VSOP87 data files from dir. The
// catalog supplies the semi-major axes used for the velocity magnitude.
func NewVSOP87Source(dir string, cat *Catalog) *VSOP87Source {
	return &VSOP87Source{dir: dir, cat: cat, planets: make(map[int]*planetposition.V87Planet)}
}

// HelioState returns the heliocentric ecliptic J2000 state of the planet at
// the given epoch. The position comes straight from the theory; the velocity
// magnitude is the vis-viva speed pointed along the orbit-normal cross
// product, which is plenty for a cross-check.
func (v *VSOP87Source) HelioState(name string, epoch Epoch) (StateVector, error) {
	sunGM, err := v.cat.GM("Sun")
	if err != nil {
		return StateVector{}, err
	}
	el, err := v.cat.Elements(name)
	if err != nil {
		return StateVector{}, err
	}
	var l, b, r float64
	if strings.EqualFold(name, "Pluto") {
		// Special case in Sonia Keys' Meeus.
		pl, pb, pr := pluto.Heliocentric(epoch.JD())
		l, b, r = pl.Rad(), pb.Rad(), pr
	} else {
		idx, found := vsop87Index[strings.ToLower(name)]
		if !found {
			return StateVector{}, fmt.Errorf("%w: %s has no VSOP87 theory", ErrBodyNotFound, name)
		}
		planet, err := v.planet(idx)
		if err != nil {
			return StateVector{}, err
		}
		pl, pb, pr := planet.Position2000(epoch.JD())
		l, b, r = pl.Rad(), pb.Rad(), pr
	}
	rM := r * AU
	speed := math.Sqrt(2*sunGM/rM - sunGM/(el.A*AU))
	R := make([]float64, 3)
	sb, cb := math.Sincos(b)
	sl, cl := math.Sincos(l)
	R[0] = rM * cb * cl
	R[1] = rM * cb * sl
	R[2] = rM * sb
	vDir := unit(cross(R, []float64{0, 0, -1}))
	V := make([]float64, 3)
	for i := 0; i < 3; i++ {
		V[i] = speed * vDir[i]
	}
	return NewStateVector(R, V, epoch, EclipticJ2000), nil
}

func (v *VSOP87Source) planet(idx int) (*planetposition.V87Planet, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if p, loaded := v.planets[idx]; loaded {
		return p, nil
	}
	p, err := planetposition.LoadPlanetPath(idx, v.dir)
	if err != nil {
		return nil, fmt.Errorf("could not load VSOP87 planet %d: %w", idx, err)
	}
	v.planets[idx] = p
	return p, nil
}
