package eval

import (
	"sort"

	"github.com/parlorgames/poker/domain/deck"
)

// VisibleRank ranks a partial hand of exposed stud cards to decide which
// seat opens the betting. With fewer than five cards there is no straight
// or flush to find: the rank-count signature decides the category
// (quads > trips > two pair > pair > high card) and the tiebreak vector
// lists group values before loose card values, high to low. Wild cards
// count at face value here so hole information does not leak into the
// betting order; jokers count as nothing.
func VisibleRank(cards []deck.Card) Result {
	counts := make(map[int]int, len(cards))
	for _, c := range cards {
		if c.IsJoker() || c.IsHidden() {
			continue
		}
		counts[c.Value()]++
	}

	var quads, trips, pairs, singles []int
	for v, n := range counts {
		switch {
		case n >= 4:
			quads = append(quads, v)
		case n == 3:
			trips = append(trips, v)
		case n == 2:
			pairs = append(pairs, v)
		default:
			singles = append(singles, v)
		}
	}
	desc := func(s []int) { sort.Sort(sort.Reverse(sort.IntSlice(s))) }
	desc(quads)
	desc(trips)
	desc(pairs)
	desc(singles)

	tb := make([]int, 0, len(counts))
	tb = append(tb, quads...)
	tb = append(tb, trips...)
	tb = append(tb, pairs...)
	tb = append(tb, singles...)

	switch {
	case len(quads) > 0:
		return Result{Category: FourOfAKind, Tiebreak: tb}
	case len(trips) > 0:
		return Result{Category: ThreeOfAKind, Tiebreak: tb}
	case len(pairs) >= 2:
		return Result{Category: TwoPair, Tiebreak: tb}
	case len(pairs) == 1:
		return Result{Category: OnePair, Tiebreak: tb}
	}
	return Result{Category: HighCard, Tiebreak: tb}
}
