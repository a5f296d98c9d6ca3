// Package cli wires the scoreboard commands: the root command refreshes
// the game cache (incrementally by default, fully with --rebuild) and the
// list subcommand prints the cached, date-sorted games as text or JSON.
package cli
