// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured
// JSON or text logging with configurable log levels. Output goes to stderr so
// that stdout stays reserved for the study material shown to the user.
package logger
