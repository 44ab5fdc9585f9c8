// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"context"
	"fmt"

	"golang.org/x/exp/slices"
)

type (
	// Package is one resolved dependency. Its fields are fixed at
	// construction and never mutated afterwards.
	Package struct {
		// Name is the normalized package name.
		Name string
		// License is the normalized license label, or UnknownLicense.
		License string
		// Requirements are the normalized names of the packages this
		// package requires, after version-marker filtering.
		Requirements []string
	}

	// Registry maps normalized package names to resolved Packages. It is
	// both the result set and the traversal's visited set: membership
	// doubles as the dedup and cycle guard.
	Registry struct {
		packages map[string]*Package
		// order records insertion order so reports are stable.
		order []string
	}

	// Builder orchestrates dependency collection: direct discovery via the
	// Source, then optional transitive expansion over the requirement
	// graph.
	Builder struct {
		src    Source
		host   Version
		reg    *Registry
		direct []string
	}
)

// String formats the package as "name (license)".
func (p *Package) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.License)
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{packages: make(map[string]*Package)}
}

// Has reports whether the named package is already registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.packages[name]
	return ok
}

// Lookup returns the registered package, or nil.
func (r *Registry) Lookup(name string) *Package {
	return r.packages[name]
}

// insert registers a package under its name. Inserting an already-present
// name is a no-op: a package is constructed at most once per run.
func (r *Registry) insert(p *Package) {
	if _, ok := r.packages[p.Name]; ok {
		return
	}
	r.packages[p.Name] = p
	r.order = append(r.order, p.Name)
}

// Len returns the number of registered packages.
func (r *Registry) Len() int {
	return len(r.packages)
}

// Packages returns the registered packages in insertion order.
func (r *Registry) Packages() []*Package {
	out := make([]*Package, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.packages[name])
	}
	return out
}

// Licenses returns the distinct license labels present in the registry.
func (r *Registry) Licenses() []string {
	var labels []string
	for _, p := range r.packages {
		if !slices.Contains(labels, p.License) {
			labels = append(labels, p.License)
		}
	}
	slices.Sort(labels)
	return labels
}

// NewBuilder returns a Builder reading from src, evaluating version-guarded
// requirements against the host interpreter version.
func NewBuilder(src Source, host Version) *Builder {
	return &Builder{src: src, host: host, reg: NewRegistry()}
}

// Registry exposes the builder's registry for policy checks and rendering.
func (b *Builder) Registry() *Registry {
	return b.reg
}

// Direct returns the direct-dependency names in discovery order.
func (b *Builder) Direct() []string {
	return slices.Clone(b.direct)
}

// Host returns the interpreter version the builder filters against.
func (b *Builder) Host() Version {
	return b.host
}

// CollectDirect discovers the environment's installed top-level packages and
// registers each as a direct dependency. A Source.ListInstalled failure is
// fatal and aborts the audit; a package that pip reports but whose metadata
// cannot be found is still registered with an unknown license.
func (b *Builder) CollectDirect(ctx context.Context) error {
	installed, err := b.src.ListInstalled(ctx)
	if err != nil {
		return fmt.Errorf("list installed packages: %w", err)
	}

	for _, raw := range installed {
		name := NormalizeName(raw)
		if name == "" {
			continue
		}
		if !b.reg.Has(name) {
			b.reg.insert(b.resolve(name))
		}
		if !slices.Contains(b.direct, name) {
			b.direct = append(b.direct, name)
		}
	}
	return nil
}

// ExpandTransitive walks the requirement graph from the direct-dependency
// set, registering every reachable package exactly once. Traversal is a
// LIFO work stack: names are popped from the end and newly discovered
// requirements pushed. Registry membership is checked before resolving, so
// cyclic requirement graphs terminate and no package's metadata is fetched
// twice. Calling it again after the graph is fully expanded is a no-op.
func (b *Builder) ExpandTransitive(ctx context.Context) error {
	stack := slices.Clone(b.direct)

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("transitive expansion canceled: %w", err)
		}

		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		pkg := b.reg.Lookup(name)
		if pkg == nil {
			pkg = b.resolve(name)
			b.reg.insert(pkg)
		}

		for _, req := range pkg.Requirements {
			if !b.reg.Has(req) {
				stack = append(stack, req)
			}
		}
	}
	return nil
}

// resolve fetches metadata for one package and constructs its Package.
// Missing metadata is non-fatal: the package is recorded with an unknown
// license and no requirements.
func (b *Builder) resolve(name string) *Package {
	md, err := b.src.Metadata(name)
	if err != nil || md == nil {
		// ErrNotFound and unreadable metadata alike surface as "?" in the
		// report; neither aborts the traversal.
		return &Package{Name: name, License: UnknownLicense}
	}

	reqs := ExtractRequirements(md, b.host)
	for i, req := range reqs {
		reqs[i] = NormalizeName(req)
	}

	return &Package{
		Name:         name,
		License:      ClassifyLicense(md),
		Requirements: reqs,
	}
}
