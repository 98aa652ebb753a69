// Package logging builds the slog loggers used across mediaclean.
//
// Two output formats are supported: a compact console format for interactive
// use and JSON for log files or machine consumption. Attr helpers mirror the
// slog constructors so call sites stay terse, and component loggers tag every
// record with the subsystem that emitted it.
package logging
