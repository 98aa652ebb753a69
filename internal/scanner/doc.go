// Package scanner walks a download tree and produces the batch of episode
// files the rest of the pipeline operates on.
//
// Every subdirectory is visited. Video files are identified from their
// filename (falling back to the parent folder name); a directory holding a
// first-volume RAR but no playable video contributes one synthetic record
// flagged for extraction, with the contained video extension peeked
// best-effort from the archive. After traversal the batch-level season
// inference runs, so no record ever leaves this package without a season.
package scanner
