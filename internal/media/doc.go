// Package media classifies files found in download trees by extension.
//
// Two categories matter to the pipeline: playable video files, and
// first-volume RAR archives that stand in for a not-yet-extracted episode.
// Multi-part archives are recognized purely by naming convention
// (file.partN.rar); only the first part is treated as an entry point, and
// old-style continuation volumes (.r00, .r01, ...) are never entry points.
package media
