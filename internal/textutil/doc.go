// Package textutil provides filename sanitization and title helpers shared
// by the planner and the metadata layer.
package textutil
