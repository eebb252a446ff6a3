// Package config loads assort configuration with koanf, merging the
// embedded TOML defaults with an optional per-repository config file.
package config
