// Package team maps free-text NBA team name variants to canonical
// abbreviations.
//
// The package holds a fixed alias table covering all 30 teams (standard
// abbreviation, ESPN URL abbreviation, ESPN city name) and resolves any
// variant of any of those, including misspellings and partial strings,
// with fuzzy string matching against the flattened table.
package team
