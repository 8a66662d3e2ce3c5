package eval

// Category is the ordinal rank class of a 5-card hand, low to high.
// FiveOfAKind is only reachable when wild cards are in play.
type Category int

// Hand categories in ascending strength.
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
	FiveOfAKind
)

// String returns the readable name of the category.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	case FiveOfAKind:
		return "Five of a Kind"
	}
	return "Unknown"
}

// Result is a ranked hand: the category plus an ordered tiebreak vector of
// card values (aces high, 2-14) compared entry by entry between hands of
// the same category.
type Result struct {
	Category Category `json:"category"`
	Tiebreak []int    `json:"tiebreak"`
}

// Compare returns 1 if r beats o, -1 if o beats r, and 0 on an exact tie
// (split pot). Comparison is lexicographic: category first, then the
// tiebreak vectors entry by entry.
func (r Result) Compare(o Result) int {
	if r.Category != o.Category {
		if r.Category > o.Category {
			return 1
		}
		return -1
	}
	n := len(r.Tiebreak)
	if len(o.Tiebreak) < n {
		n = len(o.Tiebreak)
	}
	for i := 0; i < n; i++ {
		if r.Tiebreak[i] != o.Tiebreak[i] {
			if r.Tiebreak[i] > o.Tiebreak[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Beats reports whether r strictly beats o.
func (r Result) Beats(o Result) bool { return r.Compare(o) > 0 }

func (r Result) String() string { return r.Category.String() }
