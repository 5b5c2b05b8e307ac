// Package file provides a TOML file-backed implementation of the
// ConfigStore port. Configuration lives in ~/.shannon/config.toml and
// nested tables are flattened to dot-notation keys (scan.block_size,
// chart.width, edges.high).
package file
