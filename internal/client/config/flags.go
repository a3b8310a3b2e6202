package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/volunteer/internal/flagx"
)

// parseFlags overlays cfg with command-line flags. Only the flags handled
// here are passed to the FlagSet, so -c/-config does not trip it.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-l", "-f", "-t"})

	fs := flag.NewFlagSet("volunteer", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DataPath, "d", cfg.DataPath, "path of the SQLite data file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text, json)")
	fs.DurationVar(&cfg.StorageTimeout, "t", cfg.StorageTimeout, "storage operation timeout")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
