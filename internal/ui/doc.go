// Package ui provides helpers for formatting human-readable console output.
//
// StatusPrinter renders the operator-facing status lines with lipgloss styles,
// while ConsoleCommandEventLogger translates command lifecycle events into
// concise log messages when console logging is selected.
package ui
