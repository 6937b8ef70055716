package config

import (
	"flag"
	"os"

	"pokedex/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-f string   path of the local JSON dataset (default from Config)
//	-s string   address of the catalog server; enables remote mode
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatasetPath, "f", cfg.DatasetPath, "path of the local JSON dataset")
	fs.StringVar(&cfg.ServerAddr, "s", cfg.ServerAddr, "address of the catalog server (remote mode)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
