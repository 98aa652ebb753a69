// Package history persists organize runs and their per-file operation
// logs in a local SQLite database.
package history
