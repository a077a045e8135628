package deal

import (
	"encoding/hex"
	"testing"
)

func TestNewServerSeed(t *testing.T) {
	s1, err := NewServerSeed()
	if err != nil {
		t.Fatal(err)
	}
	if len(s1) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(s1))
	}
	if _, err := hex.DecodeString(s1); err != nil {
		t.Fatalf("seed is not hex: %v", err)
	}
	s2, err := NewServerSeed()
	if err != nil {
		t.Fatal(err)
	}
	if s1 == s2 {
		t.Fatal("two server seeds came out identical")
	}
}

func TestDealerDeterminism(t *testing.T) {
	seeds := Seeds{Server: "abc123", Client: "def456"}
	d1 := NewDealer(seeds)
	d2 := NewDealer(seeds)
	for i := 0; i < 100; i++ {
		r1, r2 := d1.Draw(), d2.Draw()
		if r1 != r2 {
			t.Fatalf("draw %d diverged: %s vs %s", i, r1.Label(), r2.Label())
		}
	}
}

func TestDealerSeedSensitivity(t *testing.T) {
	d1 := NewDealer(Seeds{Server: "server-a", Client: "client"})
	d2 := NewDealer(Seeds{Server: "server-b", Client: "client"})
	for i := 0; i < 20; i++ {
		if d1.Draw() != d2.Draw() {
			return
		}
	}
	t.Fatal("twenty identical draws under different server seeds")
}

func TestDrawInRange(t *testing.T) {
	d := NewDealer(Seeds{Server: "range", Client: "check"})
	for i := 0; i < 1000; i++ {
		if r := d.Draw(); !r.Valid() {
			t.Fatalf("draw %d produced invalid rank %d", i, r)
		}
	}
}

func TestDrawCoversAllRanks(t *testing.T) {
	d := NewDealer(Seeds{Server: "coverage", Client: "check"})
	seen := map[Rank]bool{}
	for i := 0; i < 5000; i++ {
		seen[d.Draw()] = true
	}
	for r := Rank(0); r < Size; r++ {
		if !seen[r] {
			t.Errorf("rank %s never drawn in 5000 draws", r.Label())
		}
	}
}

func TestFloatAtRange(t *testing.T) {
	seeds := Seeds{Server: "float", Client: "range"}
	for nonce := uint64(0); nonce < 1000; nonce++ {
		f := floatAt(seeds, nonce)
		if f < 0 || f >= 1 {
			t.Fatalf("nonce %d: float %f outside [0,1)", nonce, f)
		}
	}
}
