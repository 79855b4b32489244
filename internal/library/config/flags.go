package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/campusdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   pending requests state file
//	-l string   audit log file
//	-f string   diagnostics format (text, json, zap)
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-l", "-f"})

	fs := flag.NewFlagSet("library", flag.ContinueOnError)

	fs.StringVar(&cfg.StateFile, "s", cfg.StateFile, "pending requests state file")
	fs.StringVar(&cfg.AuditLog, "l", cfg.AuditLog, "audit log file")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "diagnostics format: text, json or zap")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
