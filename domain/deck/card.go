package deck

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Card suit constants (0-3). Joker is a marker suit outside the normal range.
const (
	Club    = 0 // ♣ (black)
	Diamond = 1 // ♦ (red)
	Heart   = 2 // ♥ (red)
	Spade   = 3 // ♠ (black)
	Joker   = 4 // ✪ (wild marker suit, rank is always 0)
)

// Card rank constants for face cards and ace
const (
	Ace   = 1  // A (low in rank value, high in play)
	Jack  = 11 // J
	Queen = 12 // Q
	King  = 13 // K
)

// FaceDownGlyph is the display character for hidden cards
const FaceDownGlyph = "▓"

// Card represents a playing card with suit and rank.
// Rank 0 with a normal suit indicates a redacted/uninitialized card;
// a Joker suit always carries rank 0.
// The faceUp flag tracks whether the card was dealt exposed (stud streets,
// community cards); it never affects equality or evaluation.
type Card struct {
	suit   uint8
	rank   uint8
	faceUp bool
}

// NewCard creates a new Card with validation.
// Suit must be 0-3 and rank 1-13 (Ace=1, Jack=11, Queen=12, King=13).
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit > Spade || rank == 0 || rank > King {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}
	return Card{suit: suit, rank: rank}, nil
}

// NewJoker creates a joker. Jokers have no rank and only appear in the deck
// when the active wildcard rules call for them.
func NewJoker() Card {
	return Card{suit: Joker}
}

// Hidden returns the opaque placeholder used when another seat's concealed
// card is redacted out of a snapshot.
func Hidden() Card {
	return Card{}
}

// Suit returns the suit value of the Card.
func (c Card) Suit() uint8 { return c.suit }

// Rank returns the rank value of the Card (1-13, or 0 for jokers and hidden cards).
func (c Card) Rank() uint8 { return c.rank }

// IsJoker reports whether the card is a joker.
func (c Card) IsJoker() bool { return c.suit == Joker }

// IsHidden reports whether the card is the redaction placeholder.
func (c Card) IsHidden() bool { return c.suit != Joker && c.rank == 0 }

// FaceUp reports whether the card was dealt exposed.
func (c Card) FaceUp() bool { return c.faceUp }

// AsFaceUp returns a copy of the card marked as dealt exposed.
func (c Card) AsFaceUp() Card {
	c.faceUp = true
	return c
}

// AsFaceDown returns a copy of the card marked as concealed.
func (c Card) AsFaceDown() Card {
	c.faceUp = false
	return c
}

// Value returns the play value of the card with aces high (2-14).
// Jokers and hidden cards have value 0.
func (c Card) Value() int {
	if c.rank == Ace {
		return 14
	}
	return int(c.rank)
}

// Same reports whether two cards are the same physical card, ignoring
// the face-up flag.
func (c Card) Same(o Card) bool {
	return c.suit == o.suit && c.rank == o.rank
}

// Code returns a compact plain-text code like "As" or "Td" ("jk" for
// jokers, "??" for hidden cards), suitable for wire formats and logs.
func (c Card) Code() string {
	if c.IsJoker() {
		return "jk"
	}
	if c.rank == 0 {
		return "??"
	}
	ranks := "?A23456789TJQK"
	suits := "cdhs"
	return string(ranks[c.rank]) + string(suits[c.suit])
}

// MarshalJSON encodes the card as its plain-text code.
func (c Card) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.Code() + `"`), nil
}

// String returns a human-readable representation of the Card using suit
// symbols (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number).
func (c Card) String() string {
	if c.IsJoker() {
		return pterm.LightMagenta("✪")
	}
	if c.rank == 0 {
		return FaceDownGlyph
	}

	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}

	var rankStr string
	switch c.rank {
	case Ace:
		rankStr = "A"
	case Jack:
		rankStr = "J"
	case Queen:
		rankStr = "Q"
	case King:
		rankStr = "K"
	default:
		rankStr = fmt.Sprintf("%d", c.rank)
	}
	return rankStr + suit
}
