// Package metadata defines the provider-neutral series and episode model
// shared by the TMDB and OMDB clients.
package metadata
