// SPDX-License-Identifier: MPL-2.0

package pyenv

import (
	"context"
	"fmt"
	"sync"

	"licensegate-cli/internal/engine"

	"github.com/charmbracelet/log"
)

// Environment is the engine.Source backed by the local Python
// installation. The metadata index is built lazily on first lookup and
// reused for the rest of the run; installed-package metadata does not
// change within a process lifetime.
type Environment struct {
	py *Interpreter

	indexOnce sync.Once
	index     map[string]*engine.Metadata
	indexErr  error
}

var _ engine.Source = (*Environment)(nil)

// NewEnvironment wraps an interpreter as a metadata source.
func NewEnvironment(py *Interpreter) *Environment {
	return &Environment{py: py}
}

// ListInstalled returns the names of the installed top-level packages via
// pip freeze. Failure here means the package-manager integration itself is
// unavailable and the audit cannot proceed.
func (e *Environment) ListInstalled(ctx context.Context) ([]string, error) {
	return e.py.Freeze(ctx)
}

// Metadata looks up one package's metadata in the site-directory index,
// returning engine.ErrNotFound for packages that were never installed.
func (e *Environment) Metadata(name string) (*engine.Metadata, error) {
	e.indexOnce.Do(func() {
		e.index, e.indexErr = e.buildIndex()
	})
	if e.indexErr != nil {
		return nil, e.indexErr
	}

	md, ok := e.index[engine.NormalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, engine.ErrNotFound)
	}
	return md, nil
}

// buildIndex scans every site directory once and merges their metadata
// records. The first record wins for a name that appears in more than one
// directory, matching the interpreter's own resolution order.
func (e *Environment) buildIndex() (map[string]*engine.Metadata, error) {
	dirs, err := e.py.SiteDirs(context.Background())
	if err != nil {
		return nil, fmt.Errorf("discover site directories: %w", err)
	}

	index := make(map[string]*engine.Metadata)
	for _, dir := range dirs {
		scanSiteDir(dir, index)
	}
	log.Debug("metadata index built", "packages", len(index))
	return index, nil
}
