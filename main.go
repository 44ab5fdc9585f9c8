// SPDX-License-Identifier: MPL-2.0

// licensegate audits the licenses of the Python packages installed in the
// active environment and fails CI when a disallowed license appears in the
// dependency graph.
package main

import cmd "licensegate-cli/cmd/licensegate"

func main() {
	cmd.Execute()
}
