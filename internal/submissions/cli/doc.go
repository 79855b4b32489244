// Package cli is the interactive menu of the submissions tool.
package cli
