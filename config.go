package ephemeris

import (
	"fmt"

	"github.com/spf13/viper"
)

// DefaultHorizonsEndpoint is the JPL Horizons API entry point.
const DefaultHorizonsEndpoint = "https://ssd.jpl.nasa.gov/api/horizons.api"

// Config carries the settings of the optional validation data sources. The
// propagation engine itself needs no configuration: the config object is
// built explicitly and passed to whoever needs it, never read from a hidden
// module-level singleton.
type Config struct {
	Horizons HorizonsConfig
	VSOP87   VSOP87Config
}

// HorizonsConfig configures the remote ephemeris client.
type HorizonsConfig struct {
	Endpoint       string
	RequestsPerSec float64
}

// VSOP87Config configures the local VSOP87 cross-check source.
type VSOP87Config struct {
	Enabled   bool
	Directory string
}

// DefaultConfig returns the configuration used when no conf.toml is found.
func DefaultConfig() Config {
	return Config{
		Horizons: HorizonsConfig{Endpoint: DefaultHorizonsEndpoint, RequestsPerSec: 1},
	}
}

// LoadConfig reads conf.toml from the provided directory.
func LoadConfig(dir string) (Config, error) {
	v := viper.New()
	v.SetConfigName("conf")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	v.SetDefault("horizons.endpoint", DefaultHorizonsEndpoint)
	v.SetDefault("horizons.requests_per_sec", 1.0)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("%s/conf.toml: %w", dir, err)
	}
	return Config{
		Horizons: HorizonsConfig{
			Endpoint:       v.GetString("horizons.endpoint"),
			RequestsPerSec: v.GetFloat64("horizons.requests_per_sec"),
		},
		VSOP87: VSOP87Config{
			Enabled:   v.GetBool("vsop87.enabled"),
			Directory: v.GetString("vsop87.directory"),
		},
	}, nil
}
