// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"licensegate-cli/internal/config"
	"licensegate-cli/internal/engine"
	"licensegate-cli/internal/issue"
	"licensegate-cli/internal/pyenv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// runAudit is the root command: collect dependencies, classify licenses,
// render the report, and gate on the disallow list.
func runAudit(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fatal(err)
	}
	applyFlagOverrides(cmd, cfg)
	if cfg.UI.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	log.Debug("starting audit", "avoid", cfg.Avoid, "recursive", recursive)

	py, err := pyenv.NewInterpreter(time.Duration(cfg.TimeoutSeconds) * time.Second)
	if err != nil {
		return fatal(err)
	}

	ctx := cmd.Context()
	host, err := py.Version(ctx)
	if err != nil {
		return fatal(err)
	}

	builder := engine.NewBuilder(pyenv.NewEnvironment(py), host)
	if err := builder.CollectDirect(ctx); err != nil {
		return fatal(err)
	}
	if recursive {
		if err := builder.ExpandTransitive(ctx); err != nil {
			return fatal(err)
		}
	}

	reg := builder.Registry()
	if !cfg.UI.Silent {
		renderReport(cmd.OutOrStdout(), reg, cfg.Avoid, reportOptions{
			ByPackage:  cfg.UI.ByPackage,
			PrintFails: cfg.UI.PrintFails,
			Recursive:  recursive,
		})
	}

	if engine.Check(reg, cfg.Avoid) == engine.CheckFail {
		return &ExitError{
			Code: ExitPolicyFail,
			Err:  fmt.Errorf("found dependencies with disallowed licenses: %v", engine.Flagged(reg, cfg.Avoid)),
		}
	}
	return nil
}

// applyFlagOverrides merges command-line flags over the loaded config.
// A flag the user actually set wins; otherwise the config value stands.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("silent") {
		cfg.UI.Silent = silent
	}
	if flags.Changed("by-package") {
		cfg.UI.ByPackage = byPackage
	}
	if flags.Changed("print-fails") {
		cfg.UI.PrintFails = printFails
	}
	if flags.Changed("timeout") && timeoutSeconds > 0 {
		cfg.TimeoutSeconds = timeoutSeconds
	}
	if verbose {
		cfg.UI.Verbose = true
	}
}

// fatal maps an error to the fatal exit code, rendering the matching issue
// card for the known failure classes first.
func fatal(err error) error {
	switch {
	case errors.Is(err, pyenv.ErrPythonNotFound):
		renderIssue(issue.PythonNotFoundId)
	case errors.Is(err, config.ErrInvalidAvoidList):
		renderIssue(issue.BadAvoidConfigId)
	case errors.Is(err, pyenv.ErrPipUnavailable):
		renderIssue(issue.PipUnavailableId)
	}
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
	return &ExitError{Code: ExitFatal, Err: err}
}

// renderIssue prints an issue card to stderr. Rendering problems are
// swallowed: the plain error line that follows is always printed.
func renderIssue(id issue.Id) {
	card := issue.Get(id)
	if card == nil {
		return
	}
	if out, err := card.Render("dark"); err == nil {
		fmt.Fprintln(os.Stderr, out)
	}
}
