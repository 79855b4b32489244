// Package config loads runtime settings for the library tool.
//
// Values are resolved in three layers, later ones winning:
//
//  1. LoadDefaults
//  2. a JSON file named by -c / -config
//  3. command-line flags (-s, -l, -f)
package config
