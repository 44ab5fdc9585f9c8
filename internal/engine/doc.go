// SPDX-License-Identifier: MPL-2.0

// Package engine implements the dependency resolution and license
// classification core: it discovers the direct dependencies of the active
// Python environment, walks the transitive requirement graph, normalizes each
// package's license metadata into a short label, and evaluates the result
// against a configured disallow list.
//
// The engine is environment-agnostic: all metadata access goes through the
// Source interface, implemented by internal/pyenv for real installations and
// by in-memory fakes in tests.
package engine
