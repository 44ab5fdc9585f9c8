// SPDX-License-Identifier: MPL-2.0

package engine

import "strings"

// pythonVersionMarker identifies the one environment-marker form the engine
// interprets. Requirements guarded by any other marker (extra,
// platform_system, ...) are excluded outright: they describe optional or
// platform-specific installs that the active environment did not
// necessarily materialize.
const pythonVersionMarker = "python_version"

// nameDelimiters are the characters that terminate the bare package name in
// a raw requirement string.
const nameDelimiters = "<>=~(;! "

// ExtractRequirements parses the metadata's raw requirement strings into
// bare package names, in declaration order.
//
// A requirement with no ";" marker separator applies unconditionally. A
// requirement guarded by a python_version marker is included only when the
// host version satisfies the constraint (see EvalConstraint). Everything
// else behind a marker is dropped.
func ExtractRequirements(md *Metadata, host Version) []string {
	if md == nil || len(md.Requires) == 0 {
		return nil
	}

	names := make([]string, 0, len(md.Requires))
	for _, raw := range md.Requires {
		spec, marker, hasMarker := strings.Cut(raw, ";")
		if hasMarker {
			if !strings.Contains(marker, pythonVersionMarker) {
				continue
			}
			constraint := marker[strings.Index(marker, pythonVersionMarker)+len(pythonVersionMarker):]
			if !EvalConstraint(constraint, host) {
				continue
			}
		}

		name := bareName(spec)
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	return names
}

// bareName strips the version, extras, and parenthesized qualifiers from a
// requirement specifier, leaving just the package name.
func bareName(spec string) string {
	if idx := strings.IndexAny(spec, nameDelimiters); idx >= 0 {
		spec = spec[:idx]
	}
	return strings.TrimSpace(spec)
}
