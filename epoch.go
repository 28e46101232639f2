package ephemeris

import (
	"fmt"
	"time"

	"github.com/soniakeys/meeus/julian"
)

// J2000 is the reference epoch, 2000-01-01 12:00:00 TT.
const J2000 Epoch = 2451545.0

// DaysPerCentury is the number of days in a Julian century.
const DaysPerCentury = 36525.0

// Epoch is a point in time expressed as a Julian date.
type Epoch float64

// NewEpoch returns the epoch for the provided time.
func NewEpoch(dt time.Time) Epoch {
	return Epoch(julian.TimeToJD(dt))
}

// Time returns the civil time of this epoch.
func (e Epoch) Time() time.Time {
	return julian.JDToTime(float64(e))
}

// JD returns the Julian date as a float.
func (e Epoch) JD() float64 {
	return float64(e)
}

// Add returns a new epoch shifted by the provided number of days.
func (e Epoch) Add(days float64) Epoch {
	return e + Epoch(days)
}

// DaysFrom returns the number of days elapsed since the other epoch.
// The result is negative if this epoch precedes the other.
func (e Epoch) DaysFrom(o Epoch) float64 {
	return float64(e - o)
}

// CenturiesFrom returns the number of Julian centuries elapsed since the
// other epoch.
func (e Epoch) CenturiesFrom(o Epoch) float64 {
	return float64(e-o) / DaysPerCentury
}

// CenturiesFromJ2000 returns the number of Julian centuries since J2000.
func (e Epoch) CenturiesFromJ2000() float64 {
	return e.CenturiesFrom(J2000)
}

// String implements the Stringer interface.
func (e Epoch) String() string {
	return fmt.Sprintf("JD %.6f (%s)", float64(e), e.Time().Format("2006-01-02 15:04:05"))
}
