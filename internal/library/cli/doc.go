// Package cli is the interactive menu of the library tool. It only renders
// prompts and forwards input to the scheduler; all rules live there.
package cli
