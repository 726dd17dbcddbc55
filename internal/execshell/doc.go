// Package execshell provides structured helpers for invoking external tools.
//
// It wraps os/exec with logging via ShellExecutor, exposes OSCommandRunner for
// default process execution, and defines the abstractions branch-vacuum uses to
// run git either with captured output or with output streamed to the operator.
package execshell
