package ephemeris

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Trajectory samples the heliocentric state of the body from start to end
// inclusive, stepping by stepDays. Panics if the step is not positive.
func (e *Engine) Trajectory(name string, start, end Epoch, stepDays float64) ([]StateVector, error) {
	if stepDays <= 0 {
		panic("trajectory step must be positive")
	}
	var states []StateVector
	for epoch := start; epoch <= end; epoch = epoch.Add(stepDays) {
		s, err := e.StateOf(name, epoch)
		if err != nil {
			return nil, err
		}
		states = append(states, s)
	}
	return states, nil
}

// WriteTrajectoryCSV writes the sampled states as CSV: Julian date followed
// by position in km and velocity in km/s.
func WriteTrajectoryCSV(w io.Writer, states []StateVector) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"jd", "x_km", "y_km", "z_km", "vx_kms", "vy_kms", "vz_kms"}); err != nil {
		return err
	}
	for _, s := range states {
		rec := make([]string, 7)
		rec[0] = strconv.FormatFloat(s.Epoch.JD(), 'f', 6, 64)
		for i := 0; i < 3; i++ {
			rec[1+i] = fmt.Sprintf("%.6f", s.R[i]/1e3)
			rec[4+i] = fmt.Sprintf("%.9f", s.V[i]/1e3)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
