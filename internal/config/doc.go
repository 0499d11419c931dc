// Package config provides configuration management for the dotstore CLI.
//
// This package handles loading and validating the tool's own configuration
// file. The library itself is configuration-free; everything here only
// shapes CLI defaults.
//
// # Configuration File
//
// The configuration file lives in the directory the library provides for
// itself, <config dir>/.dotstore/config.toml, and uses TOML:
//
//	version = 1
//	default_kind = "data"   # kind used when `create` is given no kind
//	output = "text"         # text, json, or yaml
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load]. A missing config file is not an
// error; defaults apply. Values can be overridden through DOTSTORE_*
// environment variables.
package config
