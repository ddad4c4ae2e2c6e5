// Package config loads, normalizes and validates sheetsplit settings.
//
// Settings come from a TOML file, then SHEETSPLIT_* environment variables,
// then command-line flags applied by the caller.
package config
