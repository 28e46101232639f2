package ephemeris

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// AU is one astronomical unit in meters.
	AU = 1.495978707e11
	// SecondsPerDay converts day counts to seconds.
	SecondsPerDay = 86400.0
)

// Lookup failures. All missing-data conditions surface immediately to the
// caller and are never retried internally.
var (
	ErrBodyNotFound   = errors.New("body not found")
	ErrMoonNotFound   = errors.New("moon not found")
	ErrParentNotFound = errors.New("parent not found")
)

// BodyKind is the closed set of body classes the engine distinguishes.
type BodyKind uint8

// The kinds: the central star, bodies orbiting it, and bodies orbiting those.
const (
	KindStar BodyKind = iota
	KindHeliocentric
	KindMoon
)

// MoonData carries the orbit of a moon relative to its parent body. The
// semi-major axis is in km and the mean motion derives from PeriodDays, not
// from element rates.
type MoonData struct {
	Elements   Elements
	Parent     string
	PeriodDays float64
	Retrograde bool
}

// Body defines a celestial object and its orbit entry. Exactly one of Helio
// and Moon is set, except for the Sun which orbits nothing.
type Body struct {
	Name   string
	GM     float64 // m³/s²
	Radius float64 // m
	Mass   float64 // kg
	Helio  *Elements
	Moon   *MoonData
}

// Kind returns the class of this body.
func (b Body) Kind() BodyKind {
	switch {
	case b.Moon != nil:
		return KindMoon
	case b.Helio != nil:
		return KindHeliocentric
	default:
		return KindStar
	}
}

// String implements the Stringer interface.
func (b Body) String() string {
	return b.Name + " body"
}

// Catalog is the bundled read-only element store. It is built once and never
// mutated afterwards, so any number of goroutines may read it concurrently
// without locking.
type Catalog struct {
	bodies map[string]Body
}

// NewCatalog returns the bundled catalog: the eight planets and Pluto with
// the JPL approximate elements and per-century rates (valid 1800-2050 AD),
// plus the major moons.
func NewCatalog() *Catalog {
	c := &Catalog{bodies: make(map[string]Body, len(catalogBodies))}
	for _, b := range catalogBodies {
		c.bodies[strings.ToLower(b.Name)] = b
	}
	return c
}

// Lookup returns the body by name (case-insensitive).
func (c *Catalog) Lookup(name string) (Body, error) {
	b, found := c.bodies[strings.ToLower(name)]
	if !found {
		return Body{}, fmt.Errorf("%w: %s", ErrBodyNotFound, name)
	}
	return b, nil
}

// Elements returns the heliocentric element set of the body at its base
// epoch. The Sun and moons have no heliocentric entry.
func (c *Catalog) Elements(name string) (Elements, error) {
	b, err := c.Lookup(name)
	if err != nil {
		return Elements{}, err
	}
	if b.Helio == nil {
		return Elements{}, fmt.Errorf("%w: %s has no heliocentric elements", ErrBodyNotFound, name)
	}
	return *b.Helio, nil
}

// ElementsAt returns the heliocentric element set propagated to the epoch.
func (c *Catalog) ElementsAt(name string, epoch Epoch) (Elements, error) {
	el, err := c.Elements(name)
	if err != nil {
		return Elements{}, err
	}
	return el.At(epoch), nil
}

// GM returns the gravitational parameter of the body in m³/s².
func (c *Catalog) GM(name string) (float64, error) {
	b, err := c.Lookup(name)
	if err != nil {
		return 0, err
	}
	return b.GM, nil
}

// MoonData returns the parent-relative orbit data of a moon.
func (c *Catalog) MoonData(name string) (MoonData, error) {
	b, found := c.bodies[strings.ToLower(name)]
	if !found || b.Moon == nil {
		return MoonData{}, fmt.Errorf("%w: %s", ErrMoonNotFound, name)
	}
	return *b.Moon, nil
}

// Bodies returns the names of all catalogued bodies.
func (c *Catalog) Bodies() []string {
	names := make([]string, 0, len(c.bodies))
	for _, b := range c.bodies {
		names = append(names, b.Name)
	}
	return names
}

func helio(a, e, i, L, longPeri, longNode float64, r *ElementRates) *Elements {
	return &Elements{A: a, E: e, I: i, L: L, LongPeri: longPeri, LongNode: longNode, Epoch: J2000, Rates: r}
}

func moon(parent string, period float64, retro bool, a, e, i, L, longPeri, longNode float64) *MoonData {
	return &MoonData{
		Elements:   Elements{A: a, E: e, I: i, L: L, LongPeri: longPeri, LongNode: longNode, Epoch: J2000},
		Parent:     parent,
		PeriodDays: period,
		Retrograde: retro,
	}
}

// catalogBodies holds the bundled data. Planetary elements and rates are the
// JPL approximate elements referred to the mean ecliptic and equinox of
// J2000, Earth being the Earth-Moon barycenter entry.
var catalogBodies = []Body{
	{Name: "Sun", GM: 1.32712440018e20, Radius: 6.957e8, Mass: 1.989e30},

	{Name: "Mercury", GM: 2.2032e13, Radius: 2.4397e6, Mass: 3.3011e23,
		Helio: helio(0.38709927, 0.20563593, 7.00497902, 252.25032350, 77.45779628, 48.33076593,
			&ElementRates{0.00000037, 0.00001906, -0.00594749, 149472.67411175, 0.16047689, -0.12534081})},
	{Name: "Venus", GM: 3.24859e14, Radius: 6.0518e6, Mass: 4.8675e24,
		Helio: helio(0.72333566, 0.00677672, 3.39467605, 181.97909950, 131.60246718, 76.67984255,
			&ElementRates{0.00000390, -0.00004107, -0.00078890, 58517.81538729, 0.00268329, -0.27769418})},
	{Name: "Earth", GM: 3.986004418e14, Radius: 6.371e6, Mass: 5.9724e24,
		Helio: helio(1.00000261, 0.01671123, -0.00001531, 100.46457166, 102.93768193, 0,
			&ElementRates{0.00000562, -0.00004392, -0.01294668, 35999.37244981, 0.32327364, 0})},
	{Name: "Mars", GM: 4.282837e13, Radius: 3.3895e6, Mass: 6.4171e23,
		Helio: helio(1.52371034, 0.09339410, 1.84969142, -4.55343205, -23.94362959, 49.55953891,
			&ElementRates{0.00001847, 0.00007882, -0.00813131, 19140.30268499, 0.44441088, -0.29257343})},
	{Name: "Jupiter", GM: 1.26686534e17, Radius: 6.9911e7, Mass: 1.8982e27,
		Helio: helio(5.20288700, 0.04838624, 1.30439695, 34.39644051, 14.72847983, 100.47390909,
			&ElementRates{-0.00011607, -0.00013253, -0.00183714, 3034.74612775, 0.21252668, 0.20469106})},
	{Name: "Saturn", GM: 3.7931187e16, Radius: 5.8232e7, Mass: 5.6834e26,
		Helio: helio(9.53667594, 0.05386179, 2.48599187, 49.95424423, 92.59887831, 113.66242448,
			&ElementRates{-0.00125060, -0.00050991, 0.00193609, 1222.49362201, -0.41897216, -0.28867794})},
	{Name: "Uranus", GM: 5.793939e15, Radius: 2.5362e7, Mass: 8.6810e25,
		Helio: helio(19.18916464, 0.04725744, 0.77263783, 313.23810451, 170.95427630, 74.01692503,
			&ElementRates{-0.00196176, -0.00004397, -0.00242939, 428.48202785, 0.40805281, 0.04240589})},
	{Name: "Neptune", GM: 6.836529e15, Radius: 2.4622e7, Mass: 1.02413e26,
		Helio: helio(30.06992276, 0.00859048, 1.77004347, -55.12002969, 44.96476227, 131.78422574,
			&ElementRates{0.00026291, 0.00005105, 0.00035372, 218.45945325, -0.32241464, -0.00508664})},
	// Pluto is a dwarf planet but it kept its element entry.
	{Name: "Pluto", GM: 8.71e11, Radius: 1.1883e6, Mass: 1.303e22,
		Helio: helio(39.48211675, 0.24882730, 17.14001206, 238.92903833, 224.06891629, 110.30393684,
			&ElementRates{-0.00031596, 0.00005170, 0.00004818, 145.20780515, -0.04062942, -0.01183482})},

	{Name: "Moon", GM: 4.9028e12, Radius: 1.7374e6, Mass: 7.342e22,
		Moon: moon("Earth", 27.321661, false, 384400, 0.0554, 5.16, 218.316, 83.353, 125.08)},
	{Name: "Phobos", GM: 7.112e5, Radius: 1.1267e4, Mass: 1.0659e16,
		Moon: moon("Mars", 0.31891, false, 9376, 0.0151, 1.075, 92.474, 241.047, 169.198)},
	{Name: "Deimos", GM: 9.856e4, Radius: 6.2e3, Mass: 1.4762e15,
		Moon: moon("Mars", 1.26244, false, 23458, 0.0002, 1.788, 296.230, 214.924, 54.490)},
	{Name: "Io", GM: 5.959916e12, Radius: 1.8216e6, Mass: 8.9319e22,
		Moon: moon("Jupiter", 1.769138, false, 421800, 0.0041, 0.036, 342.021, 49.124, 43.977)},
	{Name: "Europa", GM: 3.202739e12, Radius: 1.5608e6, Mass: 4.7998e22,
		Moon: moon("Jupiter", 3.551181, false, 671100, 0.0094, 0.466, 171.016, 45.653, 219.106)},
	{Name: "Ganymede", GM: 9.887834e12, Radius: 2.6312e6, Mass: 1.4819e23,
		Moon: moon("Jupiter", 7.154553, false, 1070400, 0.0013, 0.177, 317.540, 198.336, 63.552)},
	{Name: "Callisto", GM: 7.179289e12, Radius: 2.4103e6, Mass: 1.0759e23,
		Moon: moon("Jupiter", 16.689017, false, 1882700, 0.0074, 0.192, 181.408, 43.868, 298.848)},
	{Name: "Titan", GM: 8.9781382e12, Radius: 2.5747e6, Mass: 1.3452e23,
		Moon: moon("Saturn", 15.945421, false, 1221870, 0.0288, 0.28, 163.310, 185.671, 24.502)},
	// Triton orbits backwards, likely a captured Kuiper belt object. The
	// retrograde flag carries the orbit direction, so the inclination is
	// stored as the prograde-equivalent 180°-156.865°.
	{Name: "Triton", GM: 1.428495e12, Radius: 1.3534e6, Mass: 2.1390e22,
		Moon: moon("Neptune", 5.876854, true, 354759, 0.000016, 23.135, 63.004, 66.142, 177.608)},
	{Name: "Charon", GM: 1.058e11, Radius: 6.06e5, Mass: 1.586e21,
		Moon: moon("Pluto", 6.387221, false, 19591, 0.0002, 0.080, 131.070, 71.255, 85.187)},
}
