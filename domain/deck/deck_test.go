package deck

import (
	"math/rand"
	"testing"
)

func TestNewDeckHas52DistinctCards(t *testing.T) {
	d := New()
	if d.Remaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Remaining())
	}
	seen := make(map[Card]bool)
	for {
		c, err := d.Draw()
		if err != nil {
			break
		}
		if seen[c] {
			t.Fatalf("duplicate card %s", c.Code())
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Fatalf("expected 52 distinct cards, got %d", len(seen))
	}
}

func TestWithJokers(t *testing.T) {
	d := New(WithJokers(2))
	if d.Remaining() != 54 {
		t.Fatalf("expected 54 cards, got %d", d.Remaining())
	}
	jokers := 0
	for {
		c, err := d.Draw()
		if err != nil {
			break
		}
		if c.IsJoker() {
			jokers++
		}
	}
	if jokers != 2 {
		t.Fatalf("expected 2 jokers, got %d", jokers)
	}
}

func TestShuffleIsSeedDeterministic(t *testing.T) {
	a := New(WithRand(rand.New(rand.NewSource(7))))
	b := New(WithRand(rand.New(rand.NewSource(7))))
	a.Shuffle()
	b.Shuffle()
	for i := 0; i < 52; i++ {
		ca, _ := a.Draw()
		cb, _ := b.Draw()
		if ca != cb {
			t.Fatalf("decks diverge at card %d: %s vs %s", i, ca.Code(), cb.Code())
		}
	}
}

func TestDrawNExhaustion(t *testing.T) {
	d := New()
	if _, err := d.DrawN(53); err != ErrExhausted {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
	if d.Remaining() != 52 {
		t.Fatalf("failed DrawN must not consume cards, %d remain", d.Remaining())
	}
	cards, err := d.DrawN(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(cards) != 5 || d.Remaining() != 47 {
		t.Fatalf("expected 5 drawn and 47 remaining, got %d and %d", len(cards), d.Remaining())
	}
}

func TestRecycleReturnsCardsToTheDeck(t *testing.T) {
	d := New(WithRand(rand.New(rand.NewSource(3))))
	d.Shuffle()
	taken, err := d.DrawN(50)
	if err != nil {
		t.Fatal(err)
	}
	d.Recycle(taken[:10])
	if d.Remaining() != 12 {
		t.Fatalf("expected 12 cards after recycle, got %d", d.Remaining())
	}
	if _, err := d.DrawN(12); err != nil {
		t.Fatalf("recycled cards must be drawable: %v", err)
	}
}

func TestBurn(t *testing.T) {
	d := New()
	if err := d.Burn(); err != nil {
		t.Fatal(err)
	}
	if d.Remaining() != 51 {
		t.Fatalf("expected 51 after burn, got %d", d.Remaining())
	}
	if _, err := d.DrawN(51); err != nil {
		t.Fatal(err)
	}
	if err := d.Burn(); err != ErrExhausted {
		t.Fatalf("expected ErrExhausted on empty burn, got %v", err)
	}
}
