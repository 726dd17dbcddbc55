// Package cli constructs the branch-vacuum command-line interface, wiring the
// vacuum command, the configuration loader, and structured logging.
package cli
