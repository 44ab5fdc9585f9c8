// SPDX-License-Identifier: MPL-2.0

// Package pyenv adapts the active Python installation to the engine's
// Source interface. Direct dependencies come from `pip freeze`; per-package
// metadata comes from scanning the environment's site-packages and
// dist-packages directories for .dist-info and .egg-info records, the same
// files importlib.metadata reads.
package pyenv
