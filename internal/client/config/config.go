package config

// Config holds runtime settings for the BioVault operator CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - ScannerSeed: seed for the simulated biometric scanner. Zero means
//     time-seeded captures; a fixed seed makes capture sequences repeatable,
//     which is useful for demos and scripted enrollment.
type Config struct {
	ServerEndpointAddr string
	ScannerSeed        int64
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.ScannerSeed = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
