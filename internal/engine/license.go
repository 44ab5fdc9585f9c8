// SPDX-License-Identifier: MPL-2.0

package engine

import "strings"

// UnknownLicense is the sentinel label for packages whose license could not
// be determined from metadata.
const UnknownLicense = "?"

// shortLicenseMax is the longest license field value still treated as a
// short identifier. Longer values are assumed to be a full license text dump
// and are resolved through the classifier entries instead.
const shortLicenseMax = 10

// ClassifyLicense derives a normalized license label from package metadata.
//
// The decision table, in order:
//  1. nil metadata (package not installed): UnknownLicense.
//  2. license field present and at most shortLicenseMax characters: the
//     field with the literal "License" removed, trimmed.
//  3. otherwise scan the classifier entries for one containing "License";
//     take the segment after the last " :: " separator, again with
//     "License" removed and trimmed.
//  4. no classifier matched: UnknownLicense.
//
// The length heuristic is intentionally lossy; it distinguishes "MIT" from a
// pasted license body without attempting to parse license text.
func ClassifyLicense(md *Metadata) string {
	if md == nil {
		return UnknownLicense
	}

	if md.License != "" && len(md.License) <= shortLicenseMax {
		return cleanLabel(md.License)
	}

	for _, entry := range md.Classifiers {
		if !strings.Contains(entry, "License") {
			continue
		}
		segments := strings.Split(entry, " :: ")
		return cleanLabel(segments[len(segments)-1])
	}

	return UnknownLicense
}

// cleanLabel strips the literal "License" substring and surrounding
// whitespace, turning values like "MIT License" into "MIT".
func cleanLabel(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "License", ""))
}
