// Package vacuum implements the interactive removal of local branches that no
// longer exist on the default remote.
//
// Service validates the repository, refreshes remote-tracking references with
// pruning, computes the local-only candidates, and asks the operator about each
// candidate in turn. CommandBuilder exposes the workflow as a cobra command.
package vacuum
