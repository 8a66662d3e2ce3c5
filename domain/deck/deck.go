package deck

import (
	"errors"
	"math/rand"
)

// ErrExhausted is returned when more cards are requested than remain in the
// deck. A single hand never needs more than one deck, so hitting this is a
// hand-aborting failure for the caller, not something to retry.
var ErrExhausted = errors.New("deck: not enough cards remaining")

// Deck is an ordered card multiset dealt from the top.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// Option configures a Deck.
type Option func(*Deck)

// WithJokers adds n jokers to the deck.
func WithJokers(n int) Option {
	return func(d *Deck) {
		for i := 0; i < n; i++ {
			d.cards = append(d.cards, NewJoker())
		}
	}
}

// WithRand sets the random source used for shuffling. Callers that need
// reproducible deals (tests, replays) pass a seeded source here.
func WithRand(rng *rand.Rand) Option {
	return func(d *Deck) { d.rng = rng }
}

// New builds a standard 52-card deck in suit-then-rank order.
// The deck is not shuffled until Shuffle is called.
func New(opts ...Option) *Deck {
	d := &Deck{cards: make([]Card, 0, 54)}
	for suit := uint8(Club); suit <= Spade; suit++ {
		for rank := uint8(Ace); rank <= King; rank++ {
			c, _ := NewCard(suit, rank)
			d.cards = append(d.cards, c)
		}
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Shuffle applies a uniform random permutation to the remaining cards.
func (d *Deck) Shuffle() {
	swap := func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] }
	if d.rng != nil {
		d.rng.Shuffle(len(d.cards), swap)
		return
	}
	rand.Shuffle(len(d.cards), swap)
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int { return len(d.cards) }

// Draw removes and returns the top card.
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrExhausted
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, nil
}

// DrawN removes and returns the top n cards. If fewer than n remain it
// returns ErrExhausted and leaves the deck untouched.
func (d *Deck) DrawN(n int) ([]Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, ErrExhausted
	}
	out := make([]Card, n)
	copy(out, d.cards[:n])
	d.cards = d.cards[n:]
	return out, nil
}

// Recycle returns previously dealt cards to the deck and reshuffles the
// remainder, so a long draw phase can keep dealing replacements.
func (d *Deck) Recycle(cards []Card) {
	d.cards = append(d.cards, cards...)
	d.Shuffle()
}

// Burn discards the top card, as before dealing hold'em community cards.
func (d *Deck) Burn() error {
	_, err := d.Draw()
	return err
}
