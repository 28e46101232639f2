package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Jramos57/ephemeris"
)

const dateFormat = "2006-01-02 15:04:05"

var (
	body      string
	reference string
	date      string
	jd        float64
	frameName string
	days      float64
	step      float64
)

func init() {
	flag.StringVar(&body, "body", "", "body to query (e.g. Earth, Io)")
	flag.StringVar(&reference, "relative", "", "reference body for a relative state")
	flag.StringVar(&date, "date", "", "UTC date as '"+dateFormat+"' (default: now)")
	flag.Float64Var(&jd, "jd", 0, "epoch as a Julian date (overrides -date)")
	flag.StringVar(&frameName, "frame", "ecliptic", "output frame: ecliptic, equatorial, icrf")
	flag.Float64Var(&days, "days", 0, "also sample a trajectory for this many days")
	flag.Float64Var(&step, "step", 1, "trajectory step in days")
}

func main() {
	flag.Parse()
	if body == "" {
		log.Fatal("no body provided")
	}
	epoch := ephemeris.NewEpoch(time.Now().UTC())
	if date != "" {
		dt, err := time.Parse(dateFormat, date)
		if err != nil {
			log.Fatalf("could not parse date: %s", err)
		}
		epoch = ephemeris.NewEpoch(dt)
	}
	if jd != 0 {
		epoch = ephemeris.Epoch(jd)
	}
	frame, err := ephemeris.ParseFrame(frameName)
	if err != nil {
		log.Fatal(err)
	}

	eng := ephemeris.NewEngine(ephemeris.NewCatalog())

	var state ephemeris.StateVector
	if reference != "" {
		state, err = eng.StateOfRelative(body, epoch, reference)
	} else {
		state, err = eng.StateOf(body, epoch)
	}
	if err != nil {
		log.Fatalf("could not compute state: %s", err)
	}
	state, err = state.InFrame(frame)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s @ %s\n%s\ndistance: %.6f AU\tspeed: %.3f km/s\n",
		body, epoch, state, state.RNorm()/ephemeris.AU, state.VNorm()/1e3)

	if days > 0 {
		states, err := eng.Trajectory(body, epoch, epoch.Add(days), step)
		if err != nil {
			log.Fatalf("could not sample trajectory: %s", err)
		}
		if err := ephemeris.WriteTrajectoryCSV(os.Stdout, states); err != nil {
			log.Fatal(err)
		}
	}
}
