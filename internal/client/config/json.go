package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/biovault/internal/flagx"
)

// JsonConfig is the intermediate DTO for reading the optional JSON
// configuration file. After unmarshalling its fields are copied into the
// runtime Config struct.
type JsonConfig struct {
	ServerEndpointAddr string `json:"server_endpoint_addr"`
	ScannerSeed        int64  `json:"scanner_seed"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config flags; if
// neither is set, nothing is loaded. Unreadable or invalid files panic.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.ServerEndpointAddr = c.ServerEndpointAddr
	config.ScannerSeed = c.ScannerSeed
}
