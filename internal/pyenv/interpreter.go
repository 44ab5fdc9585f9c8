// SPDX-License-Identifier: MPL-2.0

package pyenv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"licensegate-cli/internal/engine"

	"github.com/charmbracelet/log"
)

// ErrPythonNotFound is returned when no python interpreter can be located
// on PATH. It is the environment-unavailable fatal error: nothing can be
// audited without an interpreter.
var ErrPythonNotFound = errors.New("python interpreter not found")

// ErrPipUnavailable is returned when the pip freeze invocation fails.
// Direct-dependency discovery cannot proceed without it.
var ErrPipUnavailable = errors.New("pip unavailable")

// DefaultTimeout bounds each interpreter invocation. pip in particular can
// hang on broken environments, and the audit should fail loudly instead.
const DefaultTimeout = 30 * time.Second

// Interpreter runs short queries against the host python installation.
type Interpreter struct {
	path    string
	timeout time.Duration
}

// NewInterpreter locates python3 (falling back to python) on PATH. The
// returned interpreter applies timeout to every invocation; a zero timeout
// selects DefaultTimeout.
func NewInterpreter(timeout time.Duration) (*Interpreter, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	for _, candidate := range []string{"python3", "python"} {
		if path, err := exec.LookPath(candidate); err == nil {
			log.Debug("located python interpreter", "path", path)
			return &Interpreter{path: path, timeout: timeout}, nil
		}
	}
	return nil, fmt.Errorf("%w: neither python3 nor python is on PATH", ErrPythonNotFound)
}

// Path returns the resolved interpreter executable path.
func (i *Interpreter) Path() string {
	return i.path
}

// run executes the interpreter with the given arguments and returns its
// stdout. Stderr is folded into the error on failure.
func (i *Interpreter) run(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, i.path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s %s: %w: %s", i.path, strings.Join(args, " "), err, msg)
		}
		return "", fmt.Errorf("%s %s: %w", i.path, strings.Join(args, " "), err)
	}
	return stdout.String(), nil
}

// Version queries the interpreter for its own version tuple.
func (i *Interpreter) Version(ctx context.Context) (engine.Version, error) {
	out, err := i.run(ctx, "-c", "import platform; print(platform.python_version())")
	if err != nil {
		return engine.Version{}, fmt.Errorf("query python version: %w", err)
	}
	v, err := engine.ParseVersion(out)
	if err != nil {
		return engine.Version{}, fmt.Errorf("query python version: %w", err)
	}
	log.Debug("host python version", "version", v)
	return v, nil
}

// Freeze returns the names of the installed top-level packages, one per
// `pip freeze` line. Editable installs are excluded; each name is the
// segment before the first "==" or "@".
func (i *Interpreter) Freeze(ctx context.Context) ([]string, error) {
	out, err := i.run(ctx, "-m", "pip", "freeze", "--exclude-editable")
	if err != nil {
		return nil, fmt.Errorf("pip freeze: %w: %w", ErrPipUnavailable, err)
	}

	var names []string
	for _, line := range strings.Split(out, "\n") {
		name := freezeLineName(line)
		if name != "" {
			names = append(names, name)
		}
	}
	log.Debug("pip freeze", "packages", len(names))
	return names, nil
}

// freezeLineName extracts the bare package name from one pip freeze line,
// which is either "name==version" or "name @ location".
func freezeLineName(line string) string {
	if idx := strings.Index(line, "=="); idx >= 0 {
		line = line[:idx]
	}
	if idx := strings.Index(line, "@"); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}

// SiteDirs returns the package directories reported by `python -m site`,
// filtered to site-packages and dist-packages entries.
func (i *Interpreter) SiteDirs(ctx context.Context) ([]string, error) {
	out, err := i.run(ctx, "-m", "site")
	if err != nil {
		return nil, fmt.Errorf("python -m site: %w", err)
	}

	var dirs []string
	fields := strings.FieldsFunc(out, func(r rune) bool {
		return r == '\n' || r == ',' || r == '\''
	})
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if strings.Contains(field, "site-packages") || strings.Contains(field, "dist-packages") {
			dirs = append(dirs, field)
		}
	}
	log.Debug("site directories", "dirs", dirs)
	return dirs, nil
}
