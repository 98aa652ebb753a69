// Package organizer builds Plex-compatible target names for identified
// episode files and carries out the resulting copy, move, and extract
// operations.
//
// Naming convention:
//
//	Show Name - S01E01 - Episode Title.mkv
//
// Output structure:
//
//	<output base>/Show Name/Season 01/...
package organizer
