package eval

import (
	"math/rand"
	"strings"
	"testing"

	ph "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parlorgames/poker/domain/deck"
)

// hand parses space-separated card codes like "As Td jk" into cards.
func hand(t *testing.T, codes string) []deck.Card {
	t.Helper()
	var out []deck.Card
	for _, code := range strings.Fields(codes) {
		if code == "jk" {
			out = append(out, deck.NewJoker())
			continue
		}
		require.Len(t, code, 2, "bad card code %q", code)
		rank := strings.IndexByte("?A23456789TJQK", code[0])
		suit := strings.IndexByte("cdhs", code[1])
		require.True(t, rank > 0 && suit >= 0, "bad card code %q", code)
		c, err := deck.NewCard(uint8(suit), uint8(rank))
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func TestEval5Categories(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		category Category
		tiebreak []int
	}{
		{"high card", "Ah Kd 9s 5c 3h", HighCard, []int{14, 13, 9, 5, 3}},
		{"one pair", "9c 9d Kh 4s 2h", OnePair, []int{9, 13, 4, 2}},
		{"two pair", "Ac Ad Kc Kd 2h", TwoPair, []int{14, 13, 2}},
		{"three of a kind", "Qc Qd Qh 9s 8c", ThreeOfAKind, []int{12, 9, 8}},
		{"wheel straight", "Ah 2c 3d 4s 5h", Straight, []int{5}},
		{"broadway straight", "Ah Kc Qd Js Th", Straight, []int{14}},
		{"flush", "Kh 9h 7h 4h 2h", Flush, []int{13, 9, 7, 4, 2}},
		{"full house", "8c 8d 8h 3s 3c", FullHouse, []int{8, 3}},
		{"four of a kind", "6c 6d 6h 6s Ah", FourOfAKind, []int{6, 14}},
		{"straight flush", "9s 8s 7s 6s 5s", StraightFlush, []int{9}},
		{"steel wheel", "As 2s 3s 4s 5s", StraightFlush, []int{5}},
		{"royal flush", "As Ks Qs Js Ts", RoyalFlush, []int{14}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Eval5(hand(t, tc.cards), nil)
			require.NoError(t, err)
			assert.Equal(t, tc.category, r.Category)
			assert.Equal(t, tc.tiebreak, r.Tiebreak)
		})
	}
}

func TestEval5WrongSize(t *testing.T) {
	_, err := Eval5(hand(t, "Ah Kd"), nil)
	assert.Error(t, err)
}

func TestTripsBeatTwoPair(t *testing.T) {
	trips, err := Eval5(hand(t, "Qc Qd Qh 9s 8c"), nil)
	require.NoError(t, err)
	twoPair, err := Eval5(hand(t, "Ac Ad Kc Kd 2h"), nil)
	require.NoError(t, err)
	assert.True(t, trips.Beats(twoPair))
	assert.False(t, twoPair.Beats(trips))
}

func TestEval5Wilds(t *testing.T) {
	jokers := Wildness{{Kind: JokersWild}}
	deuces := Wildness{{Kind: RankWild, Rank: 2}}
	blackJacks := Wildness{{Kind: BlackJacksWild}}

	tests := []struct {
		name     string
		cards    string
		wilds    Wildness
		category Category
		tiebreak []int
	}{
		{"joker upgrades pair to trips", "9c 9d Kh 4s jk", jokers, ThreeOfAKind, []int{9, 13, 4}},
		{"joker turns two pair into full house", "Ac Ad Kc Kd jk", jokers, FullHouse, []int{14, 13}},
		{"joker completes five of a kind", "6c 6d 6h 6s jk", jokers, FiveOfAKind, []int{6}},
		{"four aces and a joker", "Ac Ad Ah As jk", jokers, FiveOfAKind, []int{14}},
		{"wild fills straight flush gap", "2h 5s 6s 7s 8s", deuces, StraightFlush, []int{9}},
		{"wild joins a flush as an ace", "Kh 9h 7h 4h jk", jokers, Flush, []int{14, 13, 9, 7, 4}},
		{"black jack substitutes", "Js Jh 5c 5d 9h", blackJacks, ThreeOfAKind, []int{5, 11, 9}},
		{"red jack stays natural", "Jh Jd 5c 5d 9h", blackJacks, TwoPair, []int{11, 5, 9}},
		{"followed queen rank is wild", "7c 9c 9d Kh 4s", Wildness{{Kind: FollowQueen, Rank: 7}}, ThreeOfAKind, []int{9, 13, 4}},
		{"unfollowed queen matches nothing", "7c 9c 9d Kh 4s", Wildness{{Kind: FollowQueen}}, OnePair, []int{9, 13, 7, 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Eval5(hand(t, tc.cards), tc.wilds)
			require.NoError(t, err)
			assert.Equal(t, tc.category, r.Category)
			assert.Equal(t, tc.tiebreak, r.Tiebreak)
		})
	}
}

// A card turning wild must never make the hand worse.
func TestWildNeverWeakens(t *testing.T) {
	cards := hand(t, "2c 9h 9d Kc 4s")
	plain, err := Eval5(cards, nil)
	require.NoError(t, err)
	wild, err := Eval5(cards, Wildness{{Kind: RankWild, Rank: 2}})
	require.NoError(t, err)
	assert.True(t, wild.Beats(plain))
}

func TestBest5(t *testing.T) {
	r, err := Best5(hand(t, "As Ks Qs Js 2h 3d Ts"), nil)
	require.NoError(t, err)
	assert.Equal(t, RoyalFlush, r.Category)

	r, err = Best5(hand(t, "9c 9d Kh 4s 2h 9h"), nil)
	require.NoError(t, err)
	assert.Equal(t, ThreeOfAKind, r.Category)
	assert.Equal(t, []int{9, 13, 4}, r.Tiebreak)

	_, err = Best5(hand(t, "9c 9d Kh 4s"), nil)
	assert.Error(t, err)
}

func TestCompareSymmetry(t *testing.T) {
	a, err := Eval5(hand(t, "Qc Qd Qh 9s 8c"), nil)
	require.NoError(t, err)
	b, err := Eval5(hand(t, "Qs Qh Qd 9c 7c"), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestVisibleRank(t *testing.T) {
	kings := VisibleRank(hand(t, "Kc Kd"))
	aceHigh := VisibleRank(hand(t, "Ah 9c"))
	assert.Equal(t, OnePair, kings.Category)
	assert.Equal(t, HighCard, aceHigh.Category)
	assert.True(t, kings.Beats(aceHigh))

	twoPair := VisibleRank(hand(t, "Qc Qd 9h 9s 3c"))
	assert.Equal(t, TwoPair, twoPair.Category)
	assert.Equal(t, []int{12, 9, 3}, twoPair.Tiebreak)

	// Jokers and redacted cards carry no visible rank.
	r := VisibleRank(append(hand(t, "jk 7c"), deck.Hidden()))
	assert.Equal(t, HighCard, r.Category)
	assert.Equal(t, []int{7}, r.Tiebreak)
}

// Without wilds the ranking must agree with a reference evaluator on
// every sampled pair of hands.
func TestRankingAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	full := deck.New(deck.WithRand(rng))
	full.Shuffle()
	cards, err := full.DrawN(52)
	require.NoError(t, err)

	toRef := func(seven []deck.Card) int16 {
		var h [7]ph.Card
		for i, c := range seven {
			rc, err := ph.MakeCard(ph.Suit(c.Suit()), ph.Rank(c.Rank()))
			require.NoError(t, err)
			h[i] = rc
		}
		return ph.Eval7(&h)
	}

	for trial := 0; trial < 500; trial++ {
		rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
		a, b := cards[:7], cards[7:14]

		ra, err := Best5(a, nil)
		require.NoError(t, err)
		rb, err := Best5(b, nil)
		require.NoError(t, err)

		refA, refB := toRef(a), toRef(b)
		switch {
		case refA > refB:
			assert.Equal(t, 1, ra.Compare(rb), "hands %v vs %v", a, b)
		case refA < refB:
			assert.Equal(t, -1, ra.Compare(rb), "hands %v vs %v", a, b)
		default:
			assert.Equal(t, 0, ra.Compare(rb), "hands %v vs %v", a, b)
		}
	}
}
