package config

import (
	"flag"
	"os"

	"cantina-pos/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   backend base URL
//	-f string   local session database path
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-f"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&config.ServerURL, "s", config.ServerURL, "backend base URL")
	fs.StringVar(&config.DatabasePath, "f", config.DatabasePath, "session database path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
