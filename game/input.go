package game

import (
	"math"
	"strconv"
	"strings"
)

// Normalize trims surrounding whitespace from a raw input line and folds it
// to upper case.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// ParseBet maps a raw prompt line to a bet amount. A line counts as a bet
// iff, after normalization, it is non-empty and all decimal digits;
// anything else returns -1, which the engine treats exactly like an
// explicit zero.
func ParseBet(raw string) int {
	s := Normalize(raw)
	if s == "" {
		return -1
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return -1
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// digits only but out of int range; any balance is below this
		return math.MaxInt
	}
	return n
}
