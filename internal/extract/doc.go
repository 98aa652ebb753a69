// Package extract recovers the video file inside a RAR archive through an
// ordered chain of independent methods.
//
// The chain tries a pure-library extraction first, then external tools
// (unrar, then 7-Zip), each probed across several well-known install
// locations and run as a bounded-time subprocess with suppressed output.
// A missing binary, a timeout, or a failed invocation simply advances the
// chain; only exhausting every method yields ErrNoVideoFound. One archive is
// never extracted by two methods concurrently, and a failed item never
// aborts the batch it belongs to.
package extract
