// Package config loads duetodo settings from ~/.config/duetodo/config.toml.
//
// A missing file is not an error; defaults are used instead.
package config
