// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"licensegate-cli/internal/engine"

	"golang.org/x/exp/slices"
)

// reportOptions controls the shape of the human-readable report.
type reportOptions struct {
	// ByPackage groups output alphabetically by package name instead of
	// by license label.
	ByPackage bool
	// PrintFails limits the report to disallowed entries.
	PrintFails bool
	// Recursive annotates each package with its immediate requirements.
	Recursive bool
}

// passMark and failMark annotate each license group or package line.
const (
	passMark = "✓"
	failMark = "x"
)

// renderReport writes the audit report for the registry. The default
// grouping is by license label with a per-label count; --by-package lists
// packages alphabetically instead. In recursive mode each package line
// carries its immediate requirements, individually colored by whether the
// requirement's own license is disallowed.
func renderReport(w io.Writer, reg *engine.Registry, avoid []string, opts reportOptions) {
	if opts.ByPackage {
		renderByPackage(w, reg, avoid, opts)
	} else {
		renderByLicense(w, reg, avoid, opts)
	}

	flagged := engine.Flagged(reg, avoid)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Found %s total dependencies.\n", CountStyle.Render(fmt.Sprintf("%d", reg.Len())))
	fmt.Fprintf(w, "Found %s dependencies with licenses to avoid.\n", CountStyle.Render(fmt.Sprintf("%d", len(flagged))))
}

// renderByLicense groups packages under a per-license header line.
func renderByLicense(w io.Writer, reg *engine.Registry, avoid []string, opts reportOptions) {
	pkgs := reg.Packages()
	slices.SortStableFunc(pkgs, func(a, b *engine.Package) int {
		return strings.Compare(a.License, b.License)
	})

	counts := make(map[string]int)
	for _, p := range pkgs {
		counts[p.License]++
	}

	lastLicense := ""
	seenAny := false
	for _, p := range pkgs {
		disallowed := slices.Contains(avoid, p.License)
		if opts.PrintFails && !disallowed {
			continue
		}

		if !seenAny || p.License != lastLicense {
			mark := SuccessStyle.Render(passMark)
			if disallowed {
				mark = ErrorStyle.Render(failMark)
			}
			fmt.Fprintf(w, "\n---%s [%d]---  %s\n", p.License, counts[p.License], mark)
			lastLicense = p.License
			seenAny = true
		}

		fmt.Fprintf(w, "\t%s%s\n", p.Name, requirementsSuffix(reg, p, avoid, opts))
	}
}

// renderByPackage lists every package alphabetically with its own mark.
func renderByPackage(w io.Writer, reg *engine.Registry, avoid []string, opts reportOptions) {
	pkgs := reg.Packages()
	slices.SortStableFunc(pkgs, func(a, b *engine.Package) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	for _, p := range pkgs {
		disallowed := slices.Contains(avoid, p.License)
		if opts.PrintFails && !disallowed {
			continue
		}

		mark := SuccessStyle.Render(passMark)
		if disallowed {
			mark = ErrorStyle.Render(failMark)
		}
		fmt.Fprintf(w, "%s  %s%s\n", mark, p, requirementsSuffix(reg, p, avoid, opts))
	}
}

// requirementsSuffix renders the " [req, req, ...]" annotation in recursive
// mode, coloring each requirement by its own license verdict.
func requirementsSuffix(reg *engine.Registry, p *engine.Package, avoid []string, opts reportOptions) string {
	if !opts.Recursive || len(p.Requirements) == 0 {
		return ""
	}

	parts := make([]string, 0, len(p.Requirements))
	for _, req := range p.Requirements {
		style := SuccessStyle
		if dep := reg.Lookup(req); dep != nil && slices.Contains(avoid, dep.License) {
			style = ErrorStyle
		}
		parts = append(parts, style.Render(req))
	}
	return " [" + strings.Join(parts, ", ") + "]"
}
