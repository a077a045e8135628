package deal

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// Seeds key the deal stream. The server seed stays hidden until the game is
// over; the client seed is chosen by the player before the first deal.
type Seeds struct {
	Server string
	Client string
}

// NewServerSeed returns 32 bytes of OS entropy, hex encoded.
func NewServerSeed() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate server seed: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Dealer draws ranks with replacement from an HMAC-SHA256 stream keyed by
// its seeds. The same seed pair always yields the same sequence of draws,
// so every deal can be re-derived once the server seed is revealed.
type Dealer struct {
	seeds Seeds
	nonce uint64
}

// NewDealer creates a dealer positioned at the start of the stream.
func NewDealer(seeds Seeds) *Dealer {
	return &Dealer{seeds: seeds}
}

// Seeds returns the seed pair so the front end can reveal the server seed
// at game over.
func (d *Dealer) Seeds() Seeds {
	return d.seeds
}

// Draw returns the next rank in the stream. Draws are uniform over the 13
// ranks and independent; duplicates across draws are expected.
func (d *Dealer) Draw() Rank {
	f := floatAt(d.seeds, d.nonce)
	d.nonce++
	idx := int(f * Size)
	if idx >= Size {
		idx = Size - 1
	}
	return Rank(idx)
}

// floatAt maps draw number nonce to a float in [0,1) using the leading four
// bytes of HMAC-SHA256(server, "client:nonce").
func floatAt(seeds Seeds, nonce uint64) float64 {
	mac := hmac.New(sha256.New, []byte(seeds.Server))
	fmt.Fprintf(mac, "%s:%d", seeds.Client, nonce)
	sum := mac.Sum(nil)
	return float64(binary.BigEndian.Uint32(sum[:4])) / (1 << 32)
}
