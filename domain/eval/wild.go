package eval

import (
	"strings"

	"github.com/parlorgames/poker/domain/deck"
)

// RuleKind identifies one wildcard rule variant.
type RuleKind int

// Wildcard rule variants.
const (
	JokersWild     RuleKind = iota // every joker in the deck
	BlackJacksWild                 // jack of spades and jack of clubs
	RankWild                       // a fixed rank chosen before the deal
	FollowQueen                    // the rank dealt face-up after the last queen
)

// Rule is one wildcard rule. Rank is only meaningful for RankWild and
// FollowQueen; a FollowQueen rule with Rank 0 means no queen has been
// followed yet this hand, so nothing matches.
type Rule struct {
	Kind RuleKind
	Rank uint8
}

// Matches reports whether the card substitutes for any rank/suit under
// this rule.
func (r Rule) Matches(c deck.Card) bool {
	switch r.Kind {
	case JokersWild:
		return c.IsJoker()
	case BlackJacksWild:
		return c.Rank() == deck.Jack && (c.Suit() == deck.Spade || c.Suit() == deck.Club)
	case RankWild, FollowQueen:
		return r.Rank != 0 && c.Rank() == r.Rank
	}
	return false
}

func (r Rule) String() string {
	switch r.Kind {
	case JokersWild:
		return "jokers wild"
	case BlackJacksWild:
		return "black jacks wild"
	case RankWild:
		return rankName(r.Rank) + "s wild"
	case FollowQueen:
		if r.Rank == 0 {
			return "follow the queen"
		}
		return "follow the queen (" + rankName(r.Rank) + "s wild)"
	}
	return "no wilds"
}

// Wildness is the active wildcard set for a hand. It is chosen once during
// wild selection and frozen, except that a FollowQueen rule's rank is
// re-derived by the engine when face-up queens appear mid-hand.
type Wildness []Rule

// IsWild reports whether any active rule makes the card wild.
func (w Wildness) IsWild(c deck.Card) bool {
	for _, r := range w {
		if r.Matches(c) {
			return true
		}
	}
	return false
}

// HasJokers reports whether the set calls for jokers in the deck.
func (w Wildness) HasJokers() bool {
	for _, r := range w {
		if r.Kind == JokersWild {
			return true
		}
	}
	return false
}

func (w Wildness) String() string {
	if len(w) == 0 {
		return "no wilds"
	}
	parts := make([]string, len(w))
	for i, r := range w {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}

func rankName(rank uint8) string {
	switch rank {
	case deck.Ace:
		return "ace"
	case deck.Jack:
		return "jack"
	case deck.Queen:
		return "queen"
	case deck.King:
		return "king"
	case 0:
		return "nothing"
	default:
		names := [...]string{2: "two", 3: "three", 4: "four", 5: "five", 6: "six", 7: "seven", 8: "eight", 9: "nine", 10: "ten"}
		return names[rank]
	}
}
