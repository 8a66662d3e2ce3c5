package ai

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parlorgames/poker/domain/deck"
	"github.com/parlorgames/poker/domain/eval"
)

func cards(t *testing.T, codes string) []deck.Card {
	t.Helper()
	var out []deck.Card
	for _, code := range strings.Fields(codes) {
		if code == "jk" {
			out = append(out, deck.NewJoker())
			continue
		}
		rank := strings.IndexByte("?A23456789TJQK", code[0])
		suit := strings.IndexByte("cdhs", code[1])
		require.True(t, rank > 0 && suit >= 0, "bad card code %q", code)
		c, err := deck.NewCard(uint8(suit), uint8(rank))
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func newTestBrain(tier Tier) *Brain {
	return New(tier, rand.New(rand.NewSource(1)))
}

func TestDiscardStandsPatOnMadeHands(t *testing.T) {
	b := newTestBrain(Easy)
	assert.Empty(t, b.Discard(cards(t, "Ah Kc Qd Js Th"), nil, 3))
	assert.Empty(t, b.Discard(cards(t, "Kh 9h 7h 4h 2h"), nil, 3))
	assert.Empty(t, b.Discard(cards(t, "8c 8d 8h 3s 3c"), nil, 3))
}

func TestDiscardKeepsPairs(t *testing.T) {
	b := newTestBrain(Easy)
	toss := b.Discard(cards(t, "9c 9d Kh 4s 2h"), nil, 3)
	assert.Equal(t, []int{2, 3, 4}, toss)

	toss = b.Discard(cards(t, "9c 9d Kh Kd 2h"), nil, 3)
	assert.Equal(t, []int{4}, toss)
}

func TestDiscardKeepsWilds(t *testing.T) {
	b := newTestBrain(Easy)
	toss := b.Discard(cards(t, "jk 9c 4d 7h 2s"), nil, 4)
	assert.NotContains(t, toss, 0, "the joker must never be thrown")
	assert.LessOrEqual(t, len(toss), 4)

	deuces := eval.Wildness{{Kind: eval.RankWild, Rank: 2}}
	toss = b.Discard(cards(t, "2s 9c 9d Kh 4s"), deuces, 3)
	assert.NotContains(t, toss, 0, "wild cards must never be thrown")
}

func TestDiscardHonorsLimit(t *testing.T) {
	b := newTestBrain(Easy)
	toss := b.Discard(cards(t, "Ac 9c 4d 7h 2s"), nil, 3)
	assert.LessOrEqual(t, len(toss), 3)
	assert.Empty(t, b.Discard(cards(t, "Ac 9c 4d 7h 2s"), nil, 0))
}

func TestMediumHoldsFlushDraw(t *testing.T) {
	b := newTestBrain(Medium)
	toss := b.Discard(cards(t, "2h 7h 9h Kh 3c"), nil, 3)
	assert.Equal(t, []int{4}, toss)
}

func TestMediumHoldsStraightDraw(t *testing.T) {
	b := newTestBrain(Medium)
	toss := b.Discard(cards(t, "5c 6d 7h 8s Kd"), nil, 3)
	assert.Equal(t, []int{4}, toss)
}

func TestEasyBreaksDraws(t *testing.T) {
	// Easy plays card-by-card and redraws instead of chasing.
	b := newTestBrain(Easy)
	toss := b.Discard(cards(t, "2h 7h 9h Kh 3c"), nil, 3)
	assert.Len(t, toss, 3)
}

func TestHardKeepsAceKickerWithPair(t *testing.T) {
	b := newTestBrain(Hard)
	toss := b.Discard(cards(t, "9c 9d Ah 4s 2h"), nil, 3)
	assert.Equal(t, []int{3, 4}, toss)
}
