// Package config loads shkit settings from embedded defaults, an optional
// user file (TOML or YAML), SHKIT_ environment variables and command-line
// overrides, in that order of precedence.
package config
