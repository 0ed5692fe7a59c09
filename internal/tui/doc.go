// Package tui provides the terminal user interface for deltav.
//
// It handles:
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
//   - TTY detection for choosing between interactive and plain output
//
// The interactive calculator form lives in components/calculator.
package tui
