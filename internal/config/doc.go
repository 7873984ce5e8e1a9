// Package config loads and merges the server configuration from environment
// variables, command-line flags, and an optional JSON file. Sources are
// merged in that order (earlier sources win for non-zero fields) and the
// result is validated before use.
package config
