// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned by Source.Metadata when the named package is not
// installed in the environment. Optional or platform-specific transitive
// requirements commonly trigger it; callers treat it as non-fatal.
var ErrNotFound = errors.New("package not found")

type (
	// Metadata is the installed-package metadata the engine cares about:
	// the single-valued license field plus the repeated classifier and
	// requirement fields. Absent fields are empty; a package that is not
	// installed at all is represented by ErrNotFound, never by a zero
	// Metadata.
	Metadata struct {
		// Name is the package's declared name.
		Name string
		// License is the free-text license field. It may hold a short
		// identifier, a full license body, or nothing.
		License string
		// Classifiers are the package's trove classifier entries.
		Classifiers []string
		// Requires are the raw Requires-Dist strings, unparsed.
		Requires []string
	}

	// Source provides read-only access to the environment's installed
	// packages. Implementations must be safe to query repeatedly; metadata
	// is immutable for the lifetime of a run.
	Source interface {
		// ListInstalled returns the names of the currently installed
		// top-level packages. A failure here is fatal to the whole audit.
		ListInstalled(ctx context.Context) ([]string, error)

		// Metadata returns the metadata for one installed package, or an
		// error wrapping ErrNotFound when the package is not installed.
		Metadata(name string) (*Metadata, error)
	}
)

// NormalizeName canonicalizes a package name per the packaging ecosystem's
// convention: lowercase, with underscores and dots folded to hyphens.
// Registry keys and Source lookups both use the normalized form.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", "-")
	name = strings.ReplaceAll(name, ".", "-")
	return name
}
