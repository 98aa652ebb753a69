// Package episodeid extracts season and episode numbers from the file and
// folder names found in television download trees.
//
// Identification is an ordered cascade: explicit season+episode markers
// (S01E02, 1x02, T01E02, verbose English and Spanish forms) are tried first
// and win immediately; episode-only markers (Cap.401, Ep 05, E05, dash- or
// separator-bounded bare numbers) are tried only afterwards, in decreasing
// order of confidence. Bare numbers pass through a false-positive filter
// (calendar years, resolution heights, codec identifiers) and a digit-width
// heuristic that splits 3-4 digit values into season+episode when plausible.
//
// The rule lists are literal ordered data. Every branch has a defined
// fallback, so parsing never returns an error: an unmatchable name simply
// yields nil season and episode, to be resolved by the batch-level season
// inference in internal/scanner.
package episodeid
