// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the BioVault server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - AuditLogPath: file the tamper-evident audit trail is appended to.
//   - KeyPassphrase: passphrase the template encryption key is derived from.
//     When empty the server prompts for it on startup.
//   - KeySalt: salt for the key derivation. Must stay stable across restarts
//     or previously enrolled templates become undecryptable.
type Config struct {
	EndpointAddrGRPC string
	AuditLogPath     string
	KeyPassphrase    string
	KeySalt          string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.AuditLogPath = "audit.log"
	c.KeyPassphrase = ""
	c.KeySalt = "biovault-dev-salt"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
