// Package game implements the Acey Ducey table logic: a four-state engine
// owning the player's balance and the dealer for one sitting.
//
// # Core Types
//
// Engine: holds the balance, the current state and the pending round, and
// settles bets against the dealer's draws.
//
// Result: reports how a single bet was settled (declined, over the limit,
// won, lost, or lost down to a broke bankroll).
//
// History: the in-memory log of settled rounds for the sitting, tagged with
// a session ID. Nothing is persisted across runs.
//
// # Game Flow
//
// A sitting moves Initializing → Playing, then loops through Playing and
// BetNothing rounds (deal two bounds, take a bet, draw the third card)
// until the player goes broke and declines to continue, which is GameOver.
// All terminal I/O lives in cmd; this package only transitions state.
package game
