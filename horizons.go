package ephemeris

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"golang.org/x/time/rate"
)

// naifIDs maps catalog names to NAIF identifiers for the Horizons API.
var naifIDs = map[string]string{
	"mercury": "199", "venus": "299", "earth": "399", "mars": "499",
	"jupiter": "599", "saturn": "699", "uranus": "799", "neptune": "899",
	"pluto": "999", "moon": "301", "phobos": "401", "deimos": "402",
	"io": "501", "europa": "502", "ganymede": "503", "callisto": "504",
	"titan": "606", "triton": "801", "charon": "901",
}

// HorizonsClient is a thin client for the JPL Horizons vector ephemeris,
// used to validate the engine against a high-precision source. The engine
// never calls it: validation stays outside the propagation core.
type HorizonsClient struct {
	endpoint string
	client   *http.Client
	limiter  *rate.Limiter
	logger   kitlog.Logger
}

// NewHorizonsClient returns a rate-limited client for the configured
// endpoint.
func NewHorizonsClient(cfg HorizonsConfig, logger kitlog.Logger) *HorizonsClient {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultHorizonsEndpoint
	}
	if cfg.RequestsPerSec <= 0 {
		cfg.RequestsPerSec = 1
	}
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	return &HorizonsClient{
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
		limiter:  rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), 1),
		logger:   kitlog.With(logger, "client", "horizons"),
	}
}

// StateOf returns the heliocentric ecliptic J2000 state of the body at the
// given epoch as reported by Horizons.
func (h *HorizonsClient) StateOf(ctx context.Context, name string, epoch Epoch) (StateVector, error) {
	id, found := naifIDs[strings.ToLower(name)]
	if !found {
		return StateVector{}, fmt.Errorf("%w: %s", ErrBodyNotFound, name)
	}
	if err := h.limiter.Wait(ctx); err != nil {
		return StateVector{}, err
	}
	q := url.Values{}
	q.Set("format", "text")
	q.Set("COMMAND", "'"+id+"'")
	q.Set("EPHEM_TYPE", "VECTORS")
	q.Set("VEC_TABLE", "2")
	q.Set("CENTER", "'500@10'") // Sun body center
	q.Set("REF_PLANE", "ECLIPTIC")
	q.Set("OUT_UNITS", "KM-S")
	q.Set("CSV_FORMAT", "YES")
	q.Set("TLIST", strconv.FormatFloat(epoch.JD(), 'f', 8, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return StateVector{}, err
	}
	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		return StateVector{}, fmt.Errorf("horizons request: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return StateVector{}, err
	}
	h.logger.Log("body", name, "jd", epoch.JD(), "status", resp.StatusCode, "dur", time.Since(start))
	if resp.StatusCode != http.StatusOK {
		return StateVector{}, fmt.Errorf("horizons status %d", resp.StatusCode)
	}
	s, err := parseHorizonsVectors(string(body))
	if err != nil {
		return StateVector{}, err
	}
	s.Epoch = epoch
	return s, nil
}

// parseHorizonsVectors extracts the first CSV record between the $$SOE and
// $$EOE markers of a VEC_TABLE=2 response: JDTDB, date, X, Y, Z, VX, VY, VZ
// in km and km/s.
func parseHorizonsVectors(text string) (StateVector, error) {
	soe := strings.Index(text, "$$SOE")
	eoe := strings.Index(text, "$$EOE")
	if soe < 0 || eoe < 0 || eoe < soe {
		return StateVector{}, fmt.Errorf("horizons response has no vector block")
	}
	block := strings.TrimSpace(text[soe+len("$$SOE") : eoe])
	line, _, _ := strings.Cut(block, "\n")
	fields := strings.Split(line, ",")
	if len(fields) < 8 {
		return StateVector{}, fmt.Errorf("horizons record has %d fields, expected 8", len(fields))
	}
	var vals [6]float64
	for i := 0; i < 6; i++ {
		f, err := strconv.ParseFloat(strings.TrimSpace(fields[i+2]), 64)
		if err != nil {
			return StateVector{}, fmt.Errorf("horizons field %d: %w", i+2, err)
		}
		vals[i] = f * 1e3 // km to m
	}
	return NewStateVector(vals[0:3], vals[3:6], 0, EclipticJ2000), nil
}
