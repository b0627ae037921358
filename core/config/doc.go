// Package config loads and validates the stdx tool configuration.
//
// Package: config
// Title: stdx Configuration Management
// Description: This package defines the typed configuration consumed by the
//              stdx command line tool and the helpers to obtain it: Default
//              for built-in values, Load for an explicit TOML or YAML file
//              (format chosen by extension), Discover for the conventional
//              search locations, and environment variable overrides applied
//              on top of whatever was loaded.
//
// Usage:
//
//	import "github.com/stdx-go/stdx/core/config"
//
//	cfg, err := config.Discover()
//	if err != nil {
//		return err
//	}
//	if err := cfg.Validate(); err != nil {
//		return err
//	}
//
//	logger, err := cfg.BuildLogger(os.Stderr)
package config
