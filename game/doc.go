// Package game defines the immutable record for one finished NBA game.
//
// A Game carries both sides of the result symmetrically: home/away teams,
// team/opponent scores, home/away scores, and winner/loser are all derived
// once at construction so consumers never re-derive them.
package game
