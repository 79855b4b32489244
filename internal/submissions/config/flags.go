package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/dmitrijs2005/campusdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   destination directory (local backend)
//	-l string   audit log file
//	-x string   SQLite index DSN
//	-m string   storage backend: local or s3
//	-u string   S3 user (access key)
//	-p string   S3 password (secret key)
//	-b string   S3 bucket
//	-g string   S3 region
//	-e string   S3 endpoint
//	-k string   S3 key prefix
//	-f string   diagnostics format (text, json, zap)
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l", "-x", "-m", "-u", "-p", "-b", "-g", "-e", "-k", "-f"})

	fs := flag.NewFlagSet("submissions", flag.ContinueOnError)

	fs.StringVar(&cfg.Dir, "d", cfg.Dir, "destination directory")
	fs.StringVar(&cfg.AuditLog, "l", cfg.AuditLog, "audit log file")
	fs.StringVar(&cfg.IndexDSN, "x", cfg.IndexDSN, "SQLite index DSN")
	fs.StringVar(&cfg.Backend, "m", cfg.Backend, "storage backend: local or s3")
	fs.StringVar(&cfg.S3User, "u", cfg.S3User, "S3 user")
	fs.StringVar(&cfg.S3Password, "p", cfg.S3Password, "S3 password")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3Endpoint, "e", cfg.S3Endpoint, "S3 endpoint")
	fs.StringVar(&cfg.S3Prefix, "k", cfg.S3Prefix, "S3 key prefix")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "diagnostics format: text, json or zap")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if cfg.Backend != BackendLocal && cfg.Backend != BackendS3 {
		panic(fmt.Sprintf("unknown backend %q", cfg.Backend))
	}
}
