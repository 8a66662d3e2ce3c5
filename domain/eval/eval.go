package eval

import (
	"fmt"
	"sort"

	"github.com/parlorgames/poker/domain/deck"
)

// Eval5 ranks exactly five cards under the active wildcard set.
//
// Wild cards are classified apart from natural cards and assigned the
// completion that maximizes the final rank: categories are tried high to
// low (five of a kind, straight flush, quads, ...) and the first one the
// naturals plus wilds can realize wins. Jokers are always wild; they have
// no natural rank to fall back to.
func Eval5(cards []deck.Card, wilds Wildness) (Result, error) {
	if len(cards) != 5 {
		return Result{}, fmt.Errorf("eval: want 5 cards, got %d", len(cards))
	}
	naturals := make([]deck.Card, 0, 5)
	wild := 0
	for _, c := range cards {
		if c.IsJoker() || wilds.IsWild(c) {
			wild++
		} else {
			naturals = append(naturals, c)
		}
	}
	return rank5(naturals, wild), nil
}

// Best5 picks the strongest 5-card hand from a pool of 5-7 cards by
// evaluating every 5-card subset and keeping the maximum.
func Best5(pool []deck.Card, wilds Wildness) (Result, error) {
	n := len(pool)
	if n < 5 || n > 7 {
		return Result{}, fmt.Errorf("eval: want 5-7 cards, got %d", n)
	}
	if n == 5 {
		return Eval5(pool, wilds)
	}
	var best Result
	first := true
	hand := make([]deck.Card, 5)
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						hand[0], hand[1], hand[2], hand[3], hand[4] = pool[a], pool[b], pool[c], pool[d], pool[e]
						r, err := Eval5(hand, wilds)
						if err != nil {
							return Result{}, err
						}
						if first || r.Compare(best) > 0 {
							best = r
							first = false
						}
					}
				}
			}
		}
	}
	return best, nil
}

func rank5(naturals []deck.Card, wild int) Result {
	values := make([]int, len(naturals))
	counts := make(map[int]int, len(naturals))
	for i, c := range naturals {
		values[i] = c.Value()
		counts[values[i]]++
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	// Five of a kind, only reachable with wilds. All wilds make five aces.
	if wild >= 5 {
		return Result{Category: FiveOfAKind, Tiebreak: []int{14}}
	}
	if v := bestGroup(counts, wild, 5); v > 0 {
		return Result{Category: FiveOfAKind, Tiebreak: []int{v}}
	}

	// Straight flush: every natural shares a suit and lands on a distinct
	// slot of one straight window; wilds fill the gaps.
	if sameSuit(naturals) {
		if h := straightHigh(counts); h > 0 {
			if h == 14 {
				return Result{Category: RoyalFlush, Tiebreak: []int{14}}
			}
			return Result{Category: StraightFlush, Tiebreak: []int{h}}
		}
	}

	if v := bestGroup(counts, wild, 4); v > 0 {
		kicker := 14
		if wild <= 4-counts[v] {
			// no spare wild for the kicker slot
			kicker = highestExcluding(values, v)
		}
		return Result{Category: FourOfAKind, Tiebreak: []int{v, kicker}}
	}

	if hi, lo := bestFullHouse(counts, wild); hi > 0 {
		return Result{Category: FullHouse, Tiebreak: []int{hi, lo}}
	}

	if sameSuit(naturals) {
		return Result{Category: Flush, Tiebreak: flushValues(values, wild)}
	}

	if h := straightHigh(counts); h > 0 {
		return Result{Category: Straight, Tiebreak: []int{h}}
	}

	if v := bestGroup(counts, wild, 3); v > 0 {
		return Result{Category: ThreeOfAKind, Tiebreak: append([]int{v}, kickersExcluding(values, v, 2)...)}
	}

	// Two pair is only reachable without wilds: a wild always upgrades a
	// pair to trips instead.
	pairs := make([]int, 0, 2)
	for v, n := range counts {
		if n == 2 {
			pairs = append(pairs, v)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(pairs)))
	if len(pairs) >= 2 {
		kicker := 0
		for _, v := range values {
			if v != pairs[0] && v != pairs[1] {
				kicker = v
				break
			}
		}
		return Result{Category: TwoPair, Tiebreak: []int{pairs[0], pairs[1], kicker}}
	}

	if v := bestGroup(counts, wild, 2); v > 0 {
		return Result{Category: OnePair, Tiebreak: append([]int{v}, kickersExcluding(values, v, 3)...)}
	}

	return Result{Category: HighCard, Tiebreak: values}
}

// bestGroup returns the highest natural value whose count plus the wild
// budget reaches size, or 0 if none does.
func bestGroup(counts map[int]int, wild, size int) int {
	best := 0
	for v, n := range counts {
		if n+wild >= size && v > best {
			best = v
		}
	}
	return best
}

// bestFullHouse returns the best (trips, pair) value assignment or (0, 0).
// All five cards must be used: the naturals outside the two groups would
// have nowhere to go, so the group counts plus wilds must total exactly 5.
func bestFullHouse(counts map[int]int, wild int) (int, int) {
	bestHi, bestLo := 0, 0
	for hi, ch := range counts {
		if ch > 3 {
			continue
		}
		for lo, cl := range counts {
			if lo == hi || cl > 2 || ch+cl+wild != 5 {
				continue
			}
			if hi > bestHi || (hi == bestHi && lo > bestLo) {
				bestHi, bestLo = hi, lo
			}
		}
	}
	return bestHi, bestLo
}

// straightHigh returns the highest straight top card the naturals can
// belong to with wilds filling the gaps, or 0. The wheel (A-2-3-4-5)
// counts the ace low.
func straightHigh(counts map[int]int) int {
	for _, n := range counts {
		if n > 1 {
			return 0
		}
	}
	for h := 14; h >= 5; h-- {
		ok := true
		for v := range counts {
			if !inWindow(v, h) {
				ok = false
				break
			}
		}
		if ok {
			return h
		}
	}
	return 0
}

func inWindow(v, h int) bool {
	if h == 5 && v == 14 {
		return true
	}
	return v <= h && v > h-5
}

func sameSuit(naturals []deck.Card) bool {
	for i := 1; i < len(naturals); i++ {
		if naturals[i].Suit() != naturals[0].Suit() {
			return false
		}
	}
	return true
}

// flushValues assigns wilds the highest values the flush does not already
// hold and returns all five values in descending order.
func flushValues(values []int, wild int) []int {
	have := make(map[int]bool, len(values))
	for _, v := range values {
		have[v] = true
	}
	out := append(make([]int, 0, 5), values...)
	for v := 14; v >= 2 && wild > 0; v-- {
		if !have[v] {
			out = append(out, v)
			wild--
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

func highestExcluding(values []int, exclude int) int {
	for _, v := range values {
		if v != exclude {
			return v
		}
	}
	return 0
}

func kickersExcluding(values []int, exclude, n int) []int {
	out := make([]int, 0, n)
	for _, v := range values {
		if v == exclude {
			continue
		}
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}
