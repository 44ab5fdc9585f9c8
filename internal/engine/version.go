// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"fmt"
	"strconv"
	"strings"
)

type (
	// Version is the host interpreter version as a (major, minor, patch) tuple.
	Version [3]int
)

// String formats the version in dotted form, e.g. "3.12.1".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
}

// ParseVersion parses a dotted version literal of two or three components
// into a Version. A missing patch component is zero.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, fmt.Errorf("invalid version %q: expected 2 or 3 components", s)
	}

	var v Version
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Version{}, fmt.Errorf("invalid version %q: component %q is not an integer", s, part)
		}
		if n < 0 {
			return Version{}, fmt.Errorf("invalid version %q: negative component", s)
		}
		v[i] = n
	}
	return v, nil
}

// operators lists the recognized comparison operators. Two-character
// operators come before their one-character prefixes so that "<=" is never
// misread as "<".
var operators = []string{"==", "<=", ">=", "!=", "<", ">"}

// EvalConstraint reports whether the host version satisfies a python_version
// constraint expression such as `<'3.10'` or `>=3.8`. Quotes and whitespace
// are ignored. An expression with no recognized operator is treated as
// satisfied, so unknown constraint forms never block metadata retrieval.
// A malformed version literal fails closed: the constraint is reported as
// not satisfied rather than aborting the traversal.
func EvalConstraint(expr string, host Version) bool {
	cleaned := strings.NewReplacer("'", "", `"`, "", " ", "").Replace(expr)

	op := ""
	rest := ""
	for _, candidate := range operators {
		if idx := strings.Index(cleaned, candidate); idx >= 0 {
			op = candidate
			rest = cleaned[idx+len(candidate):]
			break
		}
	}
	if op == "" {
		return true
	}

	parts := strings.Split(rest, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return false
	}

	lit := make([]int, 0, 3)
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return false
		}
		lit = append(lit, n)
	}
	// An omitted patch means "any patch at that minor": compare using the
	// host's own patch so equality holds at that level.
	if len(lit) == 2 {
		lit = append(lit, host[2])
	}

	var diff [3]int
	for i := range diff {
		diff[i] = lit[i] - host[i]
	}

	switch op {
	case "<=":
		return diff[0] > 0 || (diff[0] == 0 && diff[1] >= 0)
	case "<":
		return diff[0] > 0 || (diff[0] == 0 && diff[1] > 0)
	case ">=":
		return diff[0] < 0 || (diff[0] == 0 && diff[1] <= 0)
	case ">":
		return diff[0] < 0 || (diff[0] == 0 && diff[1] > 0)
	case "==":
		return diff[0] == 0 && diff[1] == 0 && diff[2] == 0
	case "!=":
		return diff[0] != 0 || diff[1] != 0 || diff[2] != 0
	}
	return true
}
