package game

import (
	"aceyducey/deal"
)

// State is the engine's position in the game loop.
type State int

const (
	StateInitializing State = iota
	StatePlaying
	StateBetNothing
	StateGameOver
)

// String returns a short name for logging.
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StatePlaying:
		return "playing"
	case StateBetNothing:
		return "bet-nothing"
	case StateGameOver:
		return "game-over"
	}
	return "unknown"
}

// StartingBalance is the bankroll a player begins with, and returns to when
// continuing after going broke.
const StartingBalance = 100

// Dealer supplies card draws. *deal.Dealer satisfies it; tests substitute
// scripted draws.
type Dealer interface {
	Draw() deal.Rank
}

// Outcome classifies how a bet was settled.
type Outcome int

const (
	// OutcomeChicken means the player declined to bet: zero, negative or
	// unparseable input.
	OutcomeChicken Outcome = iota
	// OutcomeOverBet means the bet exceeded the current balance. The round
	// ends with no third card and no balance change.
	OutcomeOverBet
	// OutcomeWin means the third card fell strictly between the bounds.
	OutcomeWin
	// OutcomeLose means the third card fell on or outside the bounds.
	OutcomeLose
	// OutcomeBroke means the loss emptied the bankroll; Replay decides
	// whether the sitting continues.
	OutcomeBroke
)

// String returns the outcome name used in the history table.
func (o Outcome) String() string {
	switch o {
	case OutcomeChicken:
		return "CHICKEN"
	case OutcomeOverBet:
		return "OVER BET"
	case OutcomeWin:
		return "WIN"
	case OutcomeLose:
		return "LOSS"
	case OutcomeBroke:
		return "BROKE"
	}
	return "?"
}

// Result reports a settled call to PlaceBet. Third is meaningful only when
// a third card was drawn (Win, Lose, Broke).
type Result struct {
	Outcome Outcome
	Bet     int
	Third   deal.Rank
	Balance int
}

// Engine owns the balance, the state machine and the dealer for one sitting
// at the table.
type Engine struct {
	state   State
	balance int
	dealer  Dealer
	history *History

	first  deal.Rank
	second deal.Rank
}

// New builds an engine in the Initializing state with the starting balance.
func New(dealer Dealer) *Engine {
	return &Engine{
		state:   StateInitializing,
		balance: StartingBalance,
		dealer:  dealer,
		history: NewHistory(),
	}
}

// State returns the current game state.
func (e *Engine) State() State {
	return e.state
}

// Balance returns the current bankroll.
func (e *Engine) Balance() int {
	return e.balance
}

// History returns the sitting's round log.
func (e *Engine) History() *History {
	return e.history
}

// Start leaves Initializing once the caller has shown the intro.
func (e *Engine) Start() {
	if e.state == StateInitializing {
		e.state = StatePlaying
	}
}

// Deal opens a round: it draws the two bound cards and reports whether the
// balance line should be shown. The line is suppressed when the round is
// entered right after a declined bet.
func (e *Engine) Deal() (first, second deal.Rank, showBalance bool) {
	showBalance = e.state == StatePlaying
	e.first = e.dealer.Draw()
	e.second = e.dealer.Draw()
	return e.first, e.second, showBalance
}

// PlaceBet settles the round opened by Deal against the raw prompt line.
//
// A declined bet (zero, negative or non-numeric input) ends the round with
// nothing drawn and nothing changed. A bet over the balance does the same
// but leaves the state at Playing; there is no re-prompt within the round.
// A playable bet draws the third card and moves the balance by exactly the
// bet. A loss that empties the bankroll returns OutcomeBroke, and the
// engine then waits on Replay before the next round.
func (e *Engine) PlaceBet(raw string) Result {
	bet := ParseBet(raw)
	switch {
	case bet <= 0:
		e.state = StateBetNothing
		return Result{Outcome: OutcomeChicken, Bet: bet, Balance: e.balance}
	case bet > e.balance:
		e.state = StatePlaying
		return Result{Outcome: OutcomeOverBet, Bet: bet, Balance: e.balance}
	}

	third := e.dealer.Draw()
	outcome := OutcomeLose
	if deal.Between(e.first, e.second, third) {
		outcome = OutcomeWin
		e.balance += bet
	} else {
		e.balance -= bet
		if e.balance <= 0 {
			outcome = OutcomeBroke
		}
	}
	e.history.Record(e.first, e.second, third, bet, outcome, e.balance)

	if outcome != OutcomeBroke {
		e.state = StatePlaying
	}
	return Result{Outcome: outcome, Bet: bet, Third: third, Balance: e.balance}
}

// Replay answers the broke prompt. A normalized "YES" resets the bankroll
// and keeps playing; any other answer ends the game.
func (e *Engine) Replay(answer string) {
	if Normalize(answer) == "YES" {
		e.balance = StartingBalance
		e.state = StatePlaying
		e.history.NewSitting()
		return
	}
	e.state = StateGameOver
}

// Finish forces the terminal state. The front end calls it when input ends.
func (e *Engine) Finish() {
	e.state = StateGameOver
}
