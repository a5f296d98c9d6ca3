// Package updater orchestrates cache refreshes: it walks every
// (season, team) pair in the scrape range, fetches that team's schedule,
// and persists the cache after each cell so an interrupted run loses at
// most the cell in flight.
package updater
