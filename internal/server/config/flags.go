package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/biovault/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-l string   audit log file path
//	-p string   template key passphrase (prompted interactively when empty)
//	-s string   key derivation salt
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-l", "-p", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.AuditLogPath, "l", config.AuditLogPath, "audit log file path")
	fs.StringVar(&config.KeyPassphrase, "p", config.KeyPassphrase, "template key passphrase")
	fs.StringVar(&config.KeySalt, "s", config.KeySalt, "key derivation salt")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
