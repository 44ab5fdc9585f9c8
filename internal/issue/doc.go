// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// Fatal audit failures (a missing python interpreter, an invalid disallow
// list) carry remediation steps and Markdown-formatted guidance rendered to
// the terminal, instead of surfacing raw low-level errors.
package issue
