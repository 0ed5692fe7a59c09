// Package runtime provides the execution context for deltav commands.
//
// It encapsulates shared dependencies needed by commands, such as the
// loaded configuration, the logger and the calculator session.
package runtime
