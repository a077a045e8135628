package game

import (
	"github.com/google/uuid"

	"aceyducey/deal"
)

// RoundRecord is one settled round. Declined and over-limit bets change
// nothing and are not recorded.
type RoundRecord struct {
	Round   int
	Sitting int
	First   deal.Rank
	Second  deal.Rank
	Third   deal.Rank
	Bet     int
	Outcome Outcome
	Balance int
}

// History is the in-memory log of one sitting at the table, tagged with a
// session ID. Nothing is persisted across runs.
type History struct {
	SessionID string
	rounds    []RoundRecord
	sitting   int
	wins      int
	losses    int
	peak      int
}

// NewHistory creates an empty log for a fresh sitting.
func NewHistory() *History {
	return &History{
		SessionID: uuid.NewString(),
		sitting:   1,
		peak:      StartingBalance,
	}
}

// Record appends a settled round and updates the aggregates.
func (h *History) Record(first, second, third deal.Rank, bet int, outcome Outcome, balance int) {
	h.rounds = append(h.rounds, RoundRecord{
		Round:   len(h.rounds) + 1,
		Sitting: h.sitting,
		First:   first,
		Second:  second,
		Third:   third,
		Bet:     bet,
		Outcome: outcome,
		Balance: balance,
	})
	if outcome == OutcomeWin {
		h.wins++
	} else {
		h.losses++
	}
	if balance > h.peak {
		h.peak = balance
	}
}

// NewSitting marks a bankroll reset after going broke.
func (h *History) NewSitting() {
	h.sitting++
}

// Rounds returns the settled rounds in play order.
func (h *History) Rounds() []RoundRecord {
	return h.rounds
}

// Wins returns the number of rounds won.
func (h *History) Wins() int {
	return h.wins
}

// Losses returns the number of rounds lost, broke rounds included.
func (h *History) Losses() int {
	return h.losses
}

// Peak returns the highest balance seen after any settlement, never below
// the starting balance.
func (h *History) Peak() int {
	return h.peak
}

// Sittings returns how many bankrolls the player has gone through.
func (h *History) Sittings() int {
	return h.sitting
}
