// Package cache persists scraped NBA game results as a two-level
// season -> team -> games mapping in a single JSON file.
//
// The updater overwrites one (season, team) cell at a time and saves the
// whole cache after each cell, so an interrupted run loses at most the
// cell in flight. Store.Games is the read-back entry for library use: it
// loads the file and returns every cached game flattened and sorted by
// date.
package cache
