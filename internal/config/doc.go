// Package config loads, normalizes, and validates the TOML
// configuration consumed by the mediaclean CLI.
package config
