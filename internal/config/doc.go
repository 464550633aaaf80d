// Package config loads, normalizes, and validates sublink configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the SUBLINK_STATE_DIR and XDG_STATE_HOME environment
// fallbacks. Configuration only covers ambient concerns: where state lives,
// how link targets are written, parallelism, and logging. The linking policy
// itself is fixed and has no knobs.
package config
