package ai

import (
	"sort"

	"github.com/parlorgames/poker/domain/deck"
	"github.com/parlorgames/poker/domain/eval"
)

// Discard selects which cards to throw away during the draw phase.
// limit is the cap the engine will enforce (3, or 4 when the seat keeps
// an ace or a wild card). Returns hand indices in ascending order; an
// empty result means stand pat.
//
// Every tier keeps wilds and made groups. Medium and hard additionally
// hold one-card flush and straight draws instead of breaking them, and
// hard keeps a high kicker when drawing to a pair.
func (b *Brain) Discard(hand []deck.Card, wilds eval.Wildness, limit int) []int {
	if limit <= 0 || len(hand) == 0 {
		return nil
	}
	if r, err := eval.Eval5(hand, wilds); err == nil && r.Category >= eval.Straight {
		return nil
	}

	keep := make([]bool, len(hand))
	counts := make(map[int]int, len(hand))
	wildCount := 0
	for i, c := range hand {
		if c.IsJoker() || wilds.IsWild(c) {
			keep[i] = true
			wildCount++
			continue
		}
		counts[c.Value()]++
	}
	pairedRanks := 0
	for i, c := range hand {
		if keep[i] {
			continue
		}
		if counts[c.Value()] >= 2 {
			keep[i] = true
			if counts[c.Value()] == 2 {
				pairedRanks++ // counted twice per pair; only used as a zero check
			}
		}
	}

	if b.tier != Easy && pairedRanks == 0 && wildCount < 5 {
		if i, ok := flushDrawOutlier(hand, keep, wildCount); ok {
			return []int{i}
		}
		if i, ok := straightDrawOutlier(hand, keep, wildCount); ok {
			return []int{i}
		}
	}

	loose := make([]int, 0, len(hand))
	for i := range hand {
		if !keep[i] {
			loose = append(loose, i)
		}
	}
	// throw the low cards first
	sort.Slice(loose, func(a, c int) bool {
		return hand[loose[a]].Value() < hand[loose[c]].Value()
	})

	if b.tier == Hard && len(loose) > 0 && pairedRanks > 0 {
		// drawing to a pair: hold the best kicker when it is an ace
		last := loose[len(loose)-1]
		if hand[last].Value() == 14 {
			loose = loose[:len(loose)-1]
		}
	}

	if len(loose) > limit {
		loose = loose[:limit]
	}
	sort.Ints(loose)
	return loose
}

// flushDrawOutlier finds the single natural card spoiling a four-to-flush.
func flushDrawOutlier(hand []deck.Card, keep []bool, wildCount int) (int, bool) {
	suitCount := make(map[uint8]int)
	for i, c := range hand {
		if keep[i] {
			continue
		}
		suitCount[c.Suit()]++
	}
	for suit, n := range suitCount {
		if n+wildCount != 4 {
			continue
		}
		for i, c := range hand {
			if !keep[i] && c.Suit() != suit {
				return i, true
			}
		}
	}
	return 0, false
}

// straightDrawOutlier finds the single card outside a four-to-straight
// window (wilds count toward the window).
func straightDrawOutlier(hand []deck.Card, keep []bool, wildCount int) (int, bool) {
	for h := 14; h >= 5; h-- {
		inside := 0
		outlier := -1
		seen := make(map[int]bool)
		ok := true
		for i, c := range hand {
			if keep[i] {
				continue
			}
			v := c.Value()
			if windowHolds(v, h) && !seen[v] {
				seen[v] = true
				inside++
			} else if outlier == -1 {
				outlier = i
			} else {
				ok = false
				break
			}
		}
		if ok && outlier >= 0 && inside+wildCount == 4 {
			return outlier, true
		}
	}
	return 0, false
}

func windowHolds(v, h int) bool {
	if h == 5 && v == 14 {
		return true
	}
	return v <= h && v > h-5
}
