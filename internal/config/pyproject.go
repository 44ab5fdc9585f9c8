// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"

	"licensegate-cli/internal/issue"

	"github.com/pelletier/go-toml/v2"
)

// pyprojectAvoid reads the disallow list from the [tool.licensegate] table
// of the given pyproject.toml, if the file and the table exist. The second
// return value reports whether an avoid setting was found at all.
//
// The value is decoded generically rather than into a typed struct so that
// a wrong shape can be reported with the offending value's actual type.
func pyprojectAvoid(path string) ([]string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, issue.NewErrorContext().
			WithOperation("read pyproject.toml").
			WithResource(path).
			Wrap(err).
			BuildError()
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, false, issue.NewErrorContext().
			WithOperation("parse pyproject.toml").
			WithResource(path).
			WithSuggestion("Check that the file contains valid TOML syntax").
			Wrap(err).
			BuildError()
	}

	raw, ok := lookupAvoid(doc)
	if !ok {
		return nil, false, nil
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, false, avoidTypeError(path, raw)
	}

	avoid := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, false, avoidTypeError(path, item)
		}
		avoid = append(avoid, s)
	}
	return avoid, true, nil
}

// lookupAvoid digs tool.licensegate.avoid out of the decoded document,
// also accepting a legacy top-level [licensegate] table.
func lookupAvoid(doc map[string]any) (any, bool) {
	tables := []map[string]any{doc}
	if tool, ok := doc["tool"].(map[string]any); ok {
		tables = append(tables, tool)
	}

	for _, table := range tables {
		section, ok := table[AppName].(map[string]any)
		if !ok {
			continue
		}
		if raw, ok := section["avoid"]; ok {
			return raw, true
		}
	}
	return nil, false
}

// avoidTypeError builds the fatal bad-configuration error, naming the
// offending value's concrete type.
func avoidTypeError(path string, value any) error {
	return issue.NewErrorContext().
		WithOperation("validate configuration").
		WithResource(path).
		WithSuggestion(`Use a list of license label strings, e.g. avoid = ["GPL", "AGPL"]`).
		Wrap(&InvalidAvoidListError{Value: value}).
		BuildError()
}
