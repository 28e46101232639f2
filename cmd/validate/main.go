// Command validate compares the element-based engine against the JPL
// Horizons service and, when configured, the VSOP87 analytic theory.
package main

import (
	"context"
	"flag"
	"os"
	"strings"
	"time"

	kitlog "github.com/go-kit/kit/log"

	"github.com/Jramos57/ephemeris"
)

var (
	bodies  string
	date    string
	timeout time.Duration
)

func init() {
	flag.StringVar(&bodies, "bodies", "Earth,Mars,Jupiter", "comma-separated bodies to validate")
	flag.StringVar(&date, "date", "", "UTC date as 2006-01-02 (default: now)")
	flag.DurationVar(&timeout, "timeout", 2*time.Minute, "overall timeout")
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)

	cfg := ephemeris.DefaultConfig()
	if dir := os.Getenv("EPHEMERIS_CONFIG"); dir != "" {
		loaded, err := ephemeris.LoadConfig(dir)
		if err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	epoch := ephemeris.NewEpoch(time.Now().UTC())
	if date != "" {
		dt, err := time.Parse("2006-01-02", date)
		if err != nil {
			logger.Log("err", err)
			os.Exit(1)
		}
		epoch = ephemeris.NewEpoch(dt)
	}

	cat := ephemeris.NewCatalog()
	eng := ephemeris.NewEngine(cat)
	horizons := ephemeris.NewHorizonsClient(cfg.Horizons, logger)
	var vsop *ephemeris.VSOP87Source
	if cfg.VSOP87.Enabled {
		vsop = ephemeris.NewVSOP87Source(cfg.VSOP87.Directory, cat)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	failed := false
	for _, body := range strings.Split(bodies, ",") {
		body = strings.TrimSpace(body)
		local, err := eng.StateOf(body, epoch)
		if err != nil {
			logger.Log("body", body, "err", err)
			failed = true
			continue
		}
		remote, err := horizons.StateOf(ctx, body, epoch)
		if err != nil {
			logger.Log("body", body, "err", err)
			failed = true
			continue
		}
		logComparison(logger, "horizons", body, local, remote)
		if vsop != nil {
			ref, err := vsop.HelioState(body, epoch)
			if err != nil {
				logger.Log("body", body, "err", err)
				continue
			}
			logComparison(logger, "vsop87", body, local, ref)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func logComparison(logger kitlog.Logger, source, body string, local, ref ephemeris.StateVector) {
	diff := local.DistanceTo(ref)
	logger.Log("source", source, "body", body,
		"r_au", local.RNorm()/ephemeris.AU,
		"diff_km", diff/1e3,
		"diff_rel", diff/ref.RNorm())
}
