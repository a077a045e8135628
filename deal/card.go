package deal

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Rank is the ordinal position of a card face value in the fixed table,
// 0 ("2") through 12 ("A"). There are no suits in this game.
type Rank uint8

// Size is the number of distinct ranks.
const Size = 13

// Ordinals of the face cards and the ace.
const (
	Jack  Rank = 9
	Queen Rank = 10
	King  Rank = 11
	Ace   Rank = 12
)

// FaceDown is the display glyph for a card that cannot be shown.
const FaceDown = "▓"

// labels maps ordinals to face values, ordered lowest to highest.
var labels = [Size]string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// NewRank validates an ordinal and returns it as a Rank. Returns an error
// for ordinals outside 0..12.
func NewRank(ordinal uint8) (Rank, error) {
	if ordinal >= Size {
		return 0, fmt.Errorf("invalid rank ordinal %d", ordinal)
	}
	return Rank(ordinal), nil
}

// Valid reports whether the rank is inside the table.
func (r Rank) Valid() bool {
	return r < Size
}

// Label returns the plain face value ("2".."10", "J", "Q", "K", "A"), or
// FaceDown for an out-of-range rank.
func (r Rank) Label() string {
	if !r.Valid() {
		return FaceDown
	}
	return labels[r]
}

// String returns the face value for terminal display, with court cards and
// the ace highlighted.
func (r Rank) String() string {
	if !r.Valid() {
		return FaceDown
	}
	switch r {
	case Jack, Queen, King, Ace:
		return pterm.LightRed(labels[r])
	default:
		return labels[r]
	}
}

// Sorted returns the pair in ascending rank order.
func Sorted(a, b Rank) (low, high Rank) {
	if a > b {
		return b, a
	}
	return a, b
}

// Between reports whether test falls strictly inside the open interval
// spanned by a and b. The bounds may arrive in either order; equality to
// either bound is false, as is any out-of-range rank.
func Between(a, b, test Rank) bool {
	if !a.Valid() || !b.Valid() || !test.Valid() {
		return false
	}
	low, high := Sorted(a, b)
	return test > low && test < high
}
