// Package gitrepo contains helpers for interrogating and manipulating Git repositories.
//
// RepositoryManager runs git scoped to a repository path in one of two modes:
// capturing, which returns trimmed output lines, and streaming, which passes
// git's own output through to the operator. Branch listing, remote refresh,
// and branch deletion are built on those two modes.
package gitrepo
