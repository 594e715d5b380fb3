package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/biovault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string    address and port of the backend server (default from Config)
//	-seed int    fixed scanner seed, 0 means time-seeded (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-seed"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.Int64Var(&cfg.ScannerSeed, "seed", cfg.ScannerSeed, "scanner seed (0 = time-seeded)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
