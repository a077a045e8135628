package game

import (
	"testing"

	"github.com/google/uuid"

	"aceyducey/deal"
)

func TestNewHistorySessionID(t *testing.T) {
	h := NewHistory()
	if _, err := uuid.Parse(h.SessionID); err != nil {
		t.Fatalf("session ID %q is not a uuid: %v", h.SessionID, err)
	}
	if h.Sittings() != 1 {
		t.Fatalf("expected 1 sitting, got %d", h.Sittings())
	}
	if h.Peak() != StartingBalance {
		t.Fatalf("expected peak %d, got %d", StartingBalance, h.Peak())
	}
}

func TestHistoryAggregates(t *testing.T) {
	h := NewHistory()
	h.Record(0, deal.Ace, 5, 50, OutcomeWin, 150)
	h.Record(0, deal.Ace, 0, 150, OutcomeBroke, 0)
	h.NewSitting()
	h.Record(2, 8, 5, 20, OutcomeWin, 120)

	if h.Wins() != 2 || h.Losses() != 1 {
		t.Fatalf("expected 2 wins and 1 loss, got %d and %d", h.Wins(), h.Losses())
	}
	if h.Peak() != 150 {
		t.Fatalf("expected peak 150, got %d", h.Peak())
	}
	if h.Sittings() != 2 {
		t.Fatalf("expected 2 sittings, got %d", h.Sittings())
	}
	rounds := h.Rounds()
	if len(rounds) != 3 {
		t.Fatalf("expected 3 rounds, got %d", len(rounds))
	}
	if rounds[1].Sitting != 1 || rounds[2].Sitting != 2 {
		t.Fatalf("sitting tags wrong: %d then %d", rounds[1].Sitting, rounds[2].Sitting)
	}
	if rounds[2].Round != 3 {
		t.Fatalf("round numbering broke: got %d", rounds[2].Round)
	}
}
