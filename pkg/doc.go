// Package pkg provides shared utilities for the fsdev hardware-access
// layer.
//
// This package contains common functionality used across the pma,
// btable, and epreg packages, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error types for configuration and mapping failures
//   - Component identifiers for log filtering
//
// The package is designed to have zero external dependencies, relying
// only on the Go standard library.
package pkg
