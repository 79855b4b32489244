// Package config loads runtime settings for the submissions tool: defaults,
// then a JSON file named by -c / -config, then command-line flags.
package config
