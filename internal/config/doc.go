// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper.
//
// Settings are loaded from ~/.config/licensegate/config.toml (or the XDG
// equivalent on Linux, ~/Library/Application Support/licensegate/config.toml
// on macOS, %APPDATA%\licensegate\config.toml on Windows). When the audited
// project carries a pyproject.toml, its [tool.licensegate] table overrides
// the config file: the disallow list belongs to the project being audited,
// not to the machine running the audit.
package config
