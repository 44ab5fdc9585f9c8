// SPDX-License-Identifier: MPL-2.0

package engine

import "golang.org/x/exp/slices"

// Exit signals for the policy check. The process exit code for fatal
// environment or configuration errors is distinct (see cmd).
const (
	// CheckPass means no registered package carries a disallowed license.
	CheckPass = 0
	// CheckFail means at least one disallowed license label was found.
	CheckFail = 1
)

// Check scans the distinct license labels in the registry against the
// disallow list and returns CheckFail when the two intersect. An empty
// registry always passes, whatever the disallow list. Only what is actually
// registered is checked: a non-recursive run gates on direct dependencies
// alone.
func Check(reg *Registry, avoid []string) int {
	for _, label := range reg.Licenses() {
		if slices.Contains(avoid, label) {
			return CheckFail
		}
	}
	return CheckPass
}

// Flagged returns the names of registered packages whose license is on the
// disallow list, sorted for stable reporting.
func Flagged(reg *Registry, avoid []string) []string {
	var names []string
	for _, p := range reg.Packages() {
		if slices.Contains(avoid, p.License) {
			names = append(names, p.Name)
		}
	}
	slices.Sort(names)
	return names
}
