// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

// ErrInvalidAvoidList is the sentinel error wrapped by InvalidAvoidListError.
var ErrInvalidAvoidList = errors.New("invalid avoid list")

type (
	// Config holds all licensegate settings.
	Config struct {
		// Avoid is the disallow list: license labels that fail the audit
		// when present anywhere in the resolved dependency graph.
		Avoid []string `mapstructure:"avoid" toml:"avoid"`

		// UI holds output settings.
		UI UIConfig `mapstructure:"ui" toml:"ui"`

		// TimeoutSeconds bounds each python/pip invocation.
		TimeoutSeconds int `mapstructure:"timeout_seconds" toml:"timeout_seconds"`
	}

	// UIConfig holds report output settings.
	UIConfig struct {
		// ByPackage groups the report alphabetically by package name
		// instead of by license label.
		ByPackage bool `mapstructure:"by_package" toml:"by_package"`
		// PrintFails limits the report to packages whose license is on
		// the disallow list.
		PrintFails bool `mapstructure:"print_fails" toml:"print_fails"`
		// Silent suppresses the report entirely; only the exit code
		// remains.
		Silent bool `mapstructure:"silent" toml:"silent"`
		// Verbose enables debug logging.
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
	}

	// InvalidAvoidListError is returned when the configured avoid value is
	// not a list of strings. It wraps ErrInvalidAvoidList for errors.Is()
	// compatibility and names the offending value's actual type, since the
	// usual mistake is `avoid = "GPL"` instead of `avoid = ["GPL"]`.
	InvalidAvoidListError struct {
		Value any
	}
)

// Error implements the error interface.
func (e *InvalidAvoidListError) Error() string {
	return fmt.Sprintf("%v: expected a list of strings, found %T", ErrInvalidAvoidList, e.Value)
}

// Unwrap supports errors.Is(err, ErrInvalidAvoidList).
func (e *InvalidAvoidListError) Unwrap() error {
	return ErrInvalidAvoidList
}

// DefaultConfig returns the built-in defaults: an empty disallow list and
// plain, non-silent output. The historical conservative default of avoiding
// MIT outright is deliberately not built in; disallowing is the caller's
// choice.
func DefaultConfig() *Config {
	return &Config{
		Avoid:          []string{},
		TimeoutSeconds: 30,
	}
}
