// Package app wires the launcher together: it owns the run configuration,
// the logger, the loaded defaults, and the resolved backend, and sequences
// one backend invocation per run.
package app
