// Package buildinfo exposes build metadata injected with -ldflags, e.g.:
//
//	go build -ldflags "-X github.com/dmitrijs2005/campusdesk/internal/buildinfo.Version=v1.2.0" ./cmd/library
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// PrintBuildData writes the build banner to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", Date)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}
