// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for licensegate.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"licensegate-cli/internal/config"
	"licensegate-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug logging
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// recursive walks the full transitive dependency graph
	recursive bool
	// silent suppresses the report; the exit code is the only output
	silent bool
	// byPackage groups the report alphabetically by package name
	byPackage bool
	// printFails limits the report to disallowed packages
	printFails bool
	// timeoutSeconds bounds each python/pip invocation
	timeoutSeconds int

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "licensegate",
		Short: "Audit the licenses of your Python dependencies",
		Long: TitleStyle.Render("licensegate") + SubtitleStyle.Render(" - dependency license auditing for Python projects") + `

licensegate inspects the packages installed in the active Python
environment, classifies each one's license from its metadata, and fails
with a non-zero exit code when a license on your disallow list shows up
anywhere in the dependency graph. Point your CI at it and gate merges on
the exit code.

The disallow list lives in your project's pyproject.toml:

  [tool.licensegate]
  avoid = ["GPL", "AGPL"]

` + SubtitleStyle.Render("Examples:") + `
  licensegate                 Audit direct dependencies
  licensegate -r              Audit the full transitive graph
  licensegate -r -f           Show only the flagged packages
  licensegate --by-package    Group the report by package name
  licensegate config show     Show the effective configuration`,
		RunE: runAudit,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/licensegate/config.toml)")

	// Audit flags
	rootCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "recursively resolve all transitive dependencies")
	rootCmd.Flags().BoolVarP(&silent, "silent", "s", false, "don't print the report, only set the exit code")
	rootCmd.Flags().BoolVar(&byPackage, "by-package", false, "group output alphabetically by package name")
	rootCmd.Flags().BoolVarP(&printFails, "print-fails", "f", false, "only print packages whose licenses are disallowed")
	rootCmd.Flags().IntVar(&timeoutSeconds, "timeout", 0, "timeout in seconds for python/pip invocations")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
//
// Exit codes: 0 when the audit passes, 1 when a disallowed license was
// found, 2 for fatal environment or configuration errors. CI can tell a
// policy failure from a broken setup.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(ExitFatal)
	}
}

// initRootConfig applies the --config and --verbose flags before any
// command runs.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
